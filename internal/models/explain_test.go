package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ExplainRequest
		wantErr error
	}{
		{"valid", ExplainRequest{Code: `console.log("Hello, World!");`, Language: "javascript"}, nil},
		{"empty code", ExplainRequest{Code: "", Language: "go"}, ErrEmptyCode},
		{"whitespace code", ExplainRequest{Code: " \n\t ", Language: "go"}, ErrEmptyCode},
		{"exactly max", ExplainRequest{Code: strings.Repeat("a", MaxCodeLength), Language: "go"}, nil},
		{"too long", ExplainRequest{Code: strings.Repeat("a", MaxCodeLength+1), Language: "go"}, ErrCodeTooLong},
		{"missing language", ExplainRequest{Code: "x := 1", Language: ""}, ErrMissingLanguage},
		{"blank language", ExplainRequest{Code: "x := 1", Language: "  "}, ErrMissingLanguage},
		{"empty code wins over language", ExplainRequest{}, ErrEmptyCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
		})
	}
}

func TestValidateCountsRunes(t *testing.T) {
	// multi-byte runes must not be counted as bytes
	code := strings.Repeat("ж", MaxCodeLength)
	assert.NoError(t, ExplainRequest{Code: code, Language: "text"}.Validate())
	assert.ErrorIs(t, ExplainRequest{Code: code + "ж", Language: "text"}.Validate(), ErrCodeTooLong)
}

func TestValidateDoesNotMutate(t *testing.T) {
	req := ExplainRequest{Code: "  x := 1  \n", Language: " go "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "  x := 1  \n", req.Code)
	assert.Equal(t, " go ", req.Language)
}

func TestValidationErrorMessages(t *testing.T) {
	assert.Equal(t, "code", ErrEmptyCode.Field)
	assert.Equal(t, "Code is required", ErrEmptyCode.Error())
	assert.Contains(t, ErrCodeTooLong.Error(), "less than 10,000 characters")
	assert.Equal(t, "language", ErrMissingLanguage.Field)
}
