package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-01-15", true},
		{"2024-12-31", true},
		{"2024-02-29", true},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-01-32", false},
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"01-01-2024", false},
		{"2024-1-15", false},
		{"2024-01-5", false},
		{"2024/01/15", false},
		{"2024-01-15T10:00:00", false},
		{"2024-01-15 ", false},
		{" 2024-01-15", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateDate(tt.input))
		})
	}
}

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		dueDate     string
		wantErr     error
	}{
		{name: "valid", title: "t", description: "d", dueDate: "2024-01-15"},
		{name: "empty title", title: "", description: "d", dueDate: "2024-01-15", wantErr: ErrEmptyTitle},
		{name: "empty description", title: "t", description: "", dueDate: "2024-01-15", wantErr: ErrEmptyDescription},
		{name: "bad date", title: "t", description: "d", dueDate: "15/01/2024", wantErr: ErrInvalidDate},
		{name: "title checked first", title: "", description: "", dueDate: "", wantErr: ErrEmptyTitle},
		{name: "whitespace title is not empty", title: " ", description: "d", dueDate: "2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFields(tt.title, tt.description, tt.dueDate)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
