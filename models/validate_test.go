package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStudentID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"1001", true},
		{"abc123", true},
		{"ABCDEFGHIJ", true},
		{"123", false},
		{"12345678901", false},
		{"10 01", false},
		{"10-01", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidStudentID(tt.id), "id %q", tt.id)
	}
}

func TestValidStudentName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"Ann", true},
		{"Mary Jane", true},
		{"A", false},
		{"Ann1", false},
		{"", false},
		{"  ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidStudentName(tt.name), "name %q", tt.name)
	}
}
