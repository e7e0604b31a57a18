// Package safety validates raw change bullets before they are sent to
// the model. It also owns the PatchSmith system prompt, since the
// injection patterns and the prompt's rules are maintained together.
package safety

import (
	"fmt"
	"strings"
)

// MaxInputChars bounds the accepted input length.
const MaxInputChars = 2000

// injectionPatterns are matched as case-insensitive substrings over the
// whole input.
var injectionPatterns = []string{
	"ignore previous instructions",
	"forget the above",
	"you are now",
	"change your rules",
	"reveal the system prompt",
	"act as the system",
}

// ValidationError is a user-visible rejection of the input. Its message
// is shown to the caller verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Validate screens raw input text. It returns nil when the text may be
// processed, otherwise a ValidationError describing the first failed
// check, in the order: empty, too long, prompt injection.
func Validate(text string) *ValidationError {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{msg: "Please paste your bullet-point changes."}
	}
	if len([]rune(text)) > MaxInputChars {
		return &ValidationError{msg: fmt.Sprintf("Input too long (> %d characters). Please shorten it.", MaxInputChars)}
	}
	if IsPromptInjection(text) {
		return &ValidationError{msg: "Your input looks like prompt injection. I must follow my safety rules and cannot process this."}
	}
	return nil
}

// IsPromptInjection reports whether the input contains any known
// injection phrase.
func IsPromptInjection(text string) bool {
	lowered := strings.ToLower(text)
	for _, p := range injectionPatterns {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
