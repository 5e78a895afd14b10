package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-review-agent/internal/core"
	"github.com/sevigo/code-review-agent/internal/form"
	"github.com/sevigo/code-review-agent/internal/gateway"
	"github.com/sevigo/code-review-agent/mocks"
)

func reviewResult(t *testing.T, review string) *core.ReviewResult {
	t.Helper()
	body, err := json.Marshal(map[string]string{"review": review})
	require.NoError(t, err)
	res, err := core.ParseReviewResult(body)
	require.NoError(t, err)
	return res
}

func TestParseReviewOptions(t *testing.T) {
	opts, err := parseReviewOptions("Java", "yaml")
	require.NoError(t, err)
	assert.Equal(t, core.Language("java"), opts.language)
	assert.Equal(t, outputYAML, opts.output)

	_, err = parseReviewOptions("rust", "text")
	require.ErrorIs(t, err, core.ErrUnsupportedLanguage)

	_, err = parseReviewOptions("python", "xml")
	require.Error(t, err)
}

func TestReadCode(t *testing.T) {
	stdin := strings.NewReader("print(1)\n")

	code, err := readCode(stdin, nil)
	require.NoError(t, err)
	assert.Equal(t, "print(1)\n", code)

	code, err = readCode(strings.NewReader("x = 1"), []string{"-"})
	require.NoError(t, err)
	assert.Equal(t, "x = 1", code)

	path := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(path, []byte("def f():\n    pass\n"), 0o600))
	code, err = readCode(strings.NewReader("ignored"), []string{path})
	require.NoError(t, err)
	assert.Equal(t, "def f():\n    pass\n", code)

	_, err = readCode(nil, []string{filepath.Join(t.TempDir(), "missing.py")})
	require.Error(t, err)
}

func TestRunReview_Text(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockReviewGateway(ctrl)
	gw.EXPECT().
		Send(gomock.Any(), core.ReviewRequest{Language: "python", Code: "print(1)"}).
		Return(reviewResult(t, "Looks fine."), nil)

	var out, errOut bytes.Buffer
	err := runReview(context.Background(), gw, "print(1)", reviewOptions{language: "python", output: outputText}, &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, "Looks fine.\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunReview_BlankCodeSkipsGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockReviewGateway(ctrl)
	gw.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	var out, errOut bytes.Buffer
	err := runReview(context.Background(), gw, "  \n\t", reviewOptions{language: "python", output: outputText}, &out, &errOut)

	require.ErrorIs(t, err, form.ErrEmptyCode)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), form.EmptyCodeMessage)
}

func TestRunReview_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockReviewGateway(ctrl)
	gw.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(nil, &gateway.APIError{StatusCode: 500, Detail: "model overloaded"})

	var out, errOut bytes.Buffer
	err := runReview(context.Background(), gw, "x", reviewOptions{language: "java", output: outputText}, &out, &errOut)

	require.EqualError(t, err, "model overloaded")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "model overloaded")
}

func TestRunReview_StructuredOutput(t *testing.T) {
	body := []byte(`{"review":"ok","score":7}`)

	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{name: "json", output: outputJSON, want: []string{"{\n  \"review\": \"ok\",\n  \"score\": 7\n}\n"}},
		{name: "yaml", output: outputYAML, want: []string{"review: ok\n", "score: 7\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := mocks.NewMockReviewGateway(ctrl)
			result, err := core.ParseReviewResult(body)
			require.NoError(t, err)
			gw.EXPECT().Send(gomock.Any(), gomock.Any()).Return(result, nil)

			var out, errOut bytes.Buffer
			err = runReview(context.Background(), gw, "x", reviewOptions{language: "python", output: tt.output}, &out, &errOut)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRunReview_TextDumpsResponseWithoutReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockReviewGateway(ctrl)
	result, err := core.ParseReviewResult([]byte(`{"issues":[]}`))
	require.NoError(t, err)
	gw.EXPECT().Send(gomock.Any(), gomock.Any()).Return(result, nil)

	var out, errOut bytes.Buffer
	err = runReview(context.Background(), gw, "x", reviewOptions{language: "python", output: outputText}, &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"issues\": []\n}\n", out.String())
}

func TestLanguagesCommand(t *testing.T) {
	var out bytes.Buffer
	languagesCmd.SetOut(&out)
	require.NoError(t, languagesCmd.RunE(languagesCmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(core.SupportedLanguages()))
	assert.Equal(t, "python\tPython (default)", lines[0])
	assert.Equal(t, "c++\tC++", lines[4])
}
