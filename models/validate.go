package models

import (
	"strings"
	"unicode"
)

// ValidStudentID reports whether the id is alphanumeric and 4-10 characters.
func ValidStudentID(id string) bool {
	if len(id) < 4 || len(id) > 10 {
		return false
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidStudentName reports whether the name is letters and spaces only, at
// least 2 characters long.
func ValidStudentName(name string) bool {
	stripped := strings.ReplaceAll(name, " ", "")
	if len(stripped) < 2 {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
