package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionValidate(t *testing.T) {
	tests := []struct {
		name       string
		submission Submission
		wantErr    bool
	}{
		{
			name:       "valid submission",
			submission: Submission{Name: "Jane Doe", Email: "jane@example.com", Message: "Found my next role, thanks!"},
			wantErr:    false,
		},
		{
			name:       "name with digits rejected",
			submission: Submission{Name: "Jane 2", Email: "jane@example.com", Message: "Hello"},
			wantErr:    true,
		},
		{
			name:       "whitespace only name rejected",
			submission: Submission{Name: "   ", Email: "jane@example.com", Message: "Hello"},
			wantErr:    true,
		},
		{
			name:       "empty name rejected",
			submission: Submission{Name: "", Email: "jane@example.com", Message: "Hello"},
			wantErr:    true,
		},
		{
			name:       "invalid email rejected",
			submission: Submission{Name: "Jane", Email: "not-an-email", Message: "Hello"},
			wantErr:    true,
		},
		{
			name:       "message with allowed punctuation",
			submission: Submission{Name: "Jane", Email: "jane@example.com", Message: "Great tool, really. Any plans for filters?"},
			wantErr:    false,
		},
		{
			name:       "message with angle brackets rejected",
			submission: Submission{Name: "Jane", Email: "jane@example.com", Message: "<script>alert(1)</script>"},
			wantErr:    true,
		},
		{
			name:       "empty message rejected",
			submission: Submission{Name: "Jane", Email: "jane@example.com", Message: ""},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.submission.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
