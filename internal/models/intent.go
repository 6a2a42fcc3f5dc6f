package models

// Match outcome constants
const (
	OutcomeMatched = "matched"
	OutcomeDefault = "default"
	OutcomeInvalid = "invalid"
)

// Confidence values returned by the matcher. Binary by design: a keyword
// either matched or it did not.
const (
	ConfidenceMatched = 0.95
	ConfidenceDefault = 0.3
)

// Intent is one knowledge-base record: trigger keywords paired with a
// canned response. Entries are immutable once loaded and their order in
// the knowledge base is significant (first match wins).
type Intent struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Response string   `json:"response" yaml:"response"`
}

// MatchResult is the outcome of matching one user message.
type MatchResult struct {
	Response   string
	Confidence float64
}

// Matched reports whether the result came from a keyword match rather
// than the default response.
func (r MatchResult) Matched() bool {
	return r.Confidence == ConfidenceMatched
}
