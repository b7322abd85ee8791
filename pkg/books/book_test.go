package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfctl/shelf/pkg/errors"
)

func TestBookValidate(t *testing.T) {
	tests := []struct {
		name    string
		book    Book
		wantErr bool
	}{
		{
			name: "valid book",
			book: Book{Title: "Dune", Author: "Frank Herbert", Genre: "SciFi", Year: 1965},
		},
		{
			name: "no optional fields",
			book: Book{Title: "Dune", Author: "Frank Herbert"},
		},
		{
			name:    "empty title",
			book:    Book{Author: "Frank Herbert"},
			wantErr: true,
		},
		{
			name:    "whitespace title",
			book:    Book{Title: "   ", Author: "Frank Herbert"},
			wantErr: true,
		},
		{
			name:    "empty author",
			book:    Book{Title: "Dune"},
			wantErr: true,
		},
		{
			name:    "implausible year",
			book:    Book{Title: "Dune", Author: "Frank Herbert", Year: 65},
			wantErr: true,
		},
		{
			name:    "five digit year",
			book:    Book{Title: "Dune", Author: "Frank Herbert", Year: 19650},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.book.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err), "want a validation error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"", StatusUnread, false},
		{"unread", StatusUnread, false},
		{"Reading", StatusReading, false},
		{"  READ  ", StatusRead, false},
		{"finished", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseStatus(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseStatus(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseStatus(%q)", tt.in)
	}
}

func TestBookString(t *testing.T) {
	full := Book{Title: "Dune", Author: "Frank Herbert", Genre: "SciFi", Year: 1965}
	assert.Equal(t, "Dune by Frank Herbert (SciFi, 1965)", full.String())

	bare := Book{Title: "Dune", Author: "Frank Herbert"}
	assert.Equal(t, "Dune by Frank Herbert", bare.String())

	genreOnly := Book{Title: "Dune", Author: "Frank Herbert", Genre: "SciFi"}
	assert.Equal(t, "Dune by Frank Herbert (SciFi)", genreOnly.String())
}
