package coach

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func textResp(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, s := range texts {
		parts = append(parts, &genai.Part{Text: s})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestParseExample(t *testing.T) {
	resp := textResp(`{"sentence":"મને પાણી જોઈએ છે.","roman":"Mane paani joiye chhe.","english":"I need water."}`)
	ex, ok := parseExample(resp)
	require.True(t, ok)
	assert.Equal(t, "મને પાણી જોઈએ છે.", ex.Sentence)
	assert.Equal(t, "Mane paani joiye chhe.", ex.Roman)
	assert.Equal(t, "I need water.", ex.English)
}

func TestParseExampleInlineData(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{
			InlineData: &genai.Blob{
				MIMEType: "application/json",
				Data:     []byte(`{"sentence":"હા","roman":"Haa","english":"Yes"}`),
			},
		}}}}},
	}
	ex, ok := parseExample(resp)
	require.True(t, ok)
	assert.Equal(t, "હા", ex.Sentence)
}

func TestParseExampleRejectsOverlongSentence(t *testing.T) {
	long := strings.Repeat("ક", 201)
	_, ok := parseExample(textResp(`{"sentence":"` + long + `","roman":"r","english":"e"}`))
	assert.False(t, ok, "sentences over the synthesis limit are unusable")

	atLimit := strings.Repeat("ક", 200)
	_, ok = parseExample(textResp(`{"sentence":"` + atLimit + `","roman":"r","english":"e"}`))
	assert.True(t, ok)
}

func TestParseExampleSkipsBadCandidates(t *testing.T) {
	// Garbage and empty sentences are skipped; a later good part still wins.
	resp := textResp(
		"not json at all",
		`{"sentence":"","roman":"r","english":"e"}`,
		`{"sentence":"ના","roman":"Naa","english":"No"}`,
	)
	ex, ok := parseExample(resp)
	require.True(t, ok)
	assert.Equal(t, "ના", ex.Sentence)

	_, ok = parseExample(&genai.GenerateContentResponse{})
	assert.False(t, ok)
}
