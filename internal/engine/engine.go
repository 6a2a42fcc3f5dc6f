// Package engine implements the keyword-matching core: knowledge-base
// loading, text normalization, and first-match-wins response lookup.
package engine

import (
	"strings"

	"healthbot/internal/models"
)

// DefaultResponse is returned when no knowledge-base keyword matches.
const DefaultResponse = `I'm not sure about that specific topic. I can help you with:

<strong>Common Health Topics:</strong>
• Fever, Cold, Flu, Headache
• Diabetes, Blood Pressure, Heart Disease
• Burns, Cuts, Wounds, Sprains
• CPR, Choking, First Aid
• Asthma, Allergies, COVID-19
• Nutrition, Exercise, Sleep
• Mental Health, Stress, Anxiety
• Pregnancy, Women's Health
• Child Health, Vaccinations

Please ask about any of these topics, and I'll provide detailed information!

<em>Tip: Try to be specific, like "What are fever symptoms?" or "How to treat burns?"</em>`

// Engine answers free-text health questions by substring-matching
// normalized user input against an ordered list of intents. It is
// immutable after New, so concurrent GetResponse calls are safe
// without locking.
type Engine struct {
	intents []models.Intent
}

// New constructs an engine, eagerly loading the knowledge base at path.
// It never fails: a missing or malformed source yields an engine with
// zero topics, and the LoadResult tells the caller why.
func New(path string) (*Engine, LoadResult) {
	intents, result := loadIntents(path)
	return &Engine{intents: intents}, result
}

// TopicCount returns the number of loaded knowledge-base entries.
func (e *Engine) TopicCount() int {
	return len(e.intents)
}

// Normalize lower-cases text and collapses all runs of whitespace into
// single spaces with no leading or trailing whitespace. Idempotent.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// matchesAny reports whether any keyword occurs as a contiguous
// substring of the normalized message. Matching is deliberately
// substring containment, not word-boundary matching: "cut" matches
// "scuttle". Keywords that normalize to the empty string never match,
// so a blank keyword cannot shadow every later entry.
func matchesAny(normalizedMessage string, keywords []string) bool {
	for _, keyword := range keywords {
		keyword = Normalize(keyword)
		if keyword == "" {
			continue
		}
		if strings.Contains(normalizedMessage, keyword) {
			return true
		}
	}
	return false
}

// GetResponse maps one user message to exactly one MatchResult. It scans
// intents in declaration order and returns the first entry whose
// keywords match, with high confidence; if nothing matches it returns
// DefaultResponse with low confidence. Ties are resolved by knowledge-base
// order: first entry wins.
func (e *Engine) GetResponse(userMessage string) models.MatchResult {
	message := Normalize(userMessage)

	for _, intent := range e.intents {
		if matchesAny(message, intent.Keywords) {
			return models.MatchResult{
				Response:   intent.Response,
				Confidence: models.ConfidenceMatched,
			}
		}
	}

	return models.MatchResult{
		Response:   DefaultResponse,
		Confidence: models.ConfidenceDefault,
	}
}
