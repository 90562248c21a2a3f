// Package validate checks request payloads against the two input contracts
// and reports per-field violations rather than a single opaque error.
package validate

import (
	"fmt"
	"regexp"

	"github.com/songwish/apiserver/types"
)

const (
	minNameLen  = 2
	maxNameLen  = 60
	minGenreLen = 3
	maxGenreLen = 20
)

// 10-digit mobile pattern starting 6-9.
var phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Issue describes a single field violation.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Registration validates the registration contract: name, phone and email
// required; gender and genre optional but constrained when present.
func Registration(name, phone, email, gender, genre string) []Issue {
	var issues []Issue

	issues = appendLenIssue(issues, "name", name, minNameLen, maxNameLen)
	if !phoneRe.MatchString(phone) {
		issues = append(issues, Issue{Field: "phone", Message: "must be a 10-digit mobile number starting with 6-9"})
	}
	if !emailRe.MatchString(email) {
		issues = append(issues, Issue{Field: "email", Message: "must be a valid email address"})
	}
	if gender != "" && !types.ValidGender(gender) {
		issues = append(issues, Issue{Field: "gender", Message: "must be one of male, female, other"})
	}
	if genre != "" {
		issues = appendLenIssue(issues, "genre", genre, minGenreLen, maxGenreLen)
	}

	return issues
}

// Preferences validates the lyrics-preferences contract: all fields required.
func Preferences(userID, gender, genre, receiverName string) []Issue {
	var issues []Issue

	if userID == "" {
		issues = append(issues, Issue{Field: "userId", Message: "is required"})
	}
	if !types.ValidGender(gender) {
		issues = append(issues, Issue{Field: "gender", Message: "must be one of male, female, other"})
	}
	issues = appendLenIssue(issues, "genre", genre, minGenreLen, maxGenreLen)
	issues = appendLenIssue(issues, "receiverName", receiverName, minNameLen, maxNameLen)

	return issues
}

func appendLenIssue(issues []Issue, field, value string, min, max int) []Issue {
	n := len([]rune(value))
	if n < min {
		return append(issues, Issue{Field: field, Message: fmt.Sprintf("must be at least %d characters", min)})
	}
	if n > max {
		return append(issues, Issue{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)})
	}
	return issues
}
