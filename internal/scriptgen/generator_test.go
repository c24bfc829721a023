package scriptgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goat-dashboard/internal/scriptgen"
)

func TestGenerate_Defaults(t *testing.T) {
	got, err := scriptgen.Generate(scriptgen.Request{Prompt: "launch our new camera line"})

	require.NoError(t, err)
	assert.Equal(t, "commercial", got.Metadata.Type)
	assert.Equal(t, "60s", got.Metadata.Duration)
	assert.Equal(t, "professional", got.Metadata.Tone)
	assert.Contains(t, got.Script, "launch our new camera line")
	assert.Contains(t, got.Script, "our revolutionary product")
	assert.Equal(t, len(strings.Fields(got.Script)), got.Metadata.WordCount)
}

func TestGenerate_BrandName(t *testing.T) {
	got, err := scriptgen.Generate(scriptgen.Request{
		Prompt:    "premium coffee for creators",
		Type:      "commercial",
		Tone:      "casual",
		BrandName: "GOAT Media",
	})

	require.NoError(t, err)
	assert.Contains(t, got.Script, "GOAT Media")
	assert.NotContains(t, got.Script, "this amazing product")
}

func TestGenerate_FallbackToCommercialProfessional(t *testing.T) {
	// social/humorous has no dedicated body; the metadata still reports the
	// requested options.
	got, err := scriptgen.Generate(scriptgen.Request{
		Prompt: "behind the scenes of a studio shoot",
		Type:   "social",
		Tone:   "humorous",
	})

	require.NoError(t, err)
	assert.Equal(t, "social", got.Metadata.Type)
	assert.Equal(t, "humorous", got.Metadata.Tone)
	assert.Contains(t, got.Script, "behind the scenes of a studio shoot")
}

func TestGenerate_DocumentaryEmotional(t *testing.T) {
	got, err := scriptgen.Generate(scriptgen.Request{
		Prompt: "a small town choir",
		Type:   "documentary",
		Tone:   "emotional",
	})

	require.NoError(t, err)
	assert.Contains(t, got.Script, "Every story has a beginning")
	assert.Contains(t, got.Script, "a small town choir")
}

func TestGenerate_InvalidOptions(t *testing.T) {
	type testCase struct {
		name string
		req  scriptgen.Request
	}

	tests := []testCase{
		{name: "MissingPrompt", req: scriptgen.Request{}},
		{name: "BadType", req: scriptgen.Request{Prompt: "x", Type: "podcast"}},
		{name: "BadDuration", req: scriptgen.Request{Prompt: "x", Duration: "10min"}},
		{name: "BadTone", req: scriptgen.Request{Prompt: "x", Tone: "sarcastic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scriptgen.Generate(tt.req)
			assert.ErrorIs(t, err, scriptgen.ErrInvalidOption)
			assert.Nil(t, got)
		})
	}
}
