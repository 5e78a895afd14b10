package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{name: "Empty", code: "", wantErr: true},
		{name: "Whitespace only", code: " \n\t  ", wantErr: true},
		{name: "Code", code: "print(1)", wantErr: false},
		{name: "Code with padding", code: "\n  x = 1\n", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ReviewRequest{Language: LanguagePython, Code: tt.code}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyCode)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseReviewResult(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantHasReview bool
		wantText      string
		wantErr       bool
	}{
		{
			name:          "Review field",
			body:          `{"review":"Looks fine."}`,
			wantHasReview: true,
			wantText:      "Looks fine.",
		},
		{
			name:          "Review with extra fields",
			body:          `{"review":"Score: 8 / 10","model":"mistral"}`,
			wantHasReview: true,
			wantText:      "Score: 8 / 10",
		},
		{
			name:     "Missing review field dumps the object",
			body:     `{"summary":"ok","issues":[]}`,
			wantText: "{\n  \"summary\": \"ok\",\n  \"issues\": []\n}",
		},
		{
			name:          "Empty review dumps the object",
			body:          `{"review":""}`,
			wantHasReview: true,
			wantText:      "{\n  \"review\": \"\"\n}",
		},
		{
			name:     "Non-string review dumps the object",
			body:     `{"review":42}`,
			wantText: "{\n  \"review\": 42\n}",
		},
		{
			name:     "Array body",
			body:     `["a","b"]`,
			wantText: "[\n  \"a\",\n  \"b\"\n]",
		},
		{
			name:    "Invalid JSON",
			body:    `<html>oops</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseReviewResult([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHasReview, res.HasReview)
			assert.Equal(t, tt.wantText, res.Text())
			assert.JSONEq(t, tt.body, string(res.Raw()))
		})
	}
}

func TestParseReviewResult_KeepsFields(t *testing.T) {
	res, err := ParseReviewResult([]byte(`{"review":"ok","tokens":12}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Fields["review"])
	assert.Equal(t, float64(12), res.Fields["tokens"])
}
