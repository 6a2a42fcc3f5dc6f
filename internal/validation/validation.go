package validation

import "strings"

// MaxMessageLength caps chat messages to keep match scans bounded.
const MaxMessageLength = 2000

// ValidateMessage checks a chat message before it reaches the matcher.
// Returns false with a reason for blank or oversized input.
func ValidateMessage(message string) (bool, string) {
	if strings.TrimSpace(message) == "" {
		return false, "Empty message"
	}
	if len(message) > MaxMessageLength {
		return false, "Message too long"
	}
	return true, ""
}
