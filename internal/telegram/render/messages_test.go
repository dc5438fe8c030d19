package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/futig/edututor/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestChunks(t *testing.T) {
	assert.Equal(t, []string{"short"}, Chunks("short", 10))
	assert.Equal(t, []string{""}, Chunks("", 10))

	text := "line one\nline two\nline three"
	assert.Equal(t, []string{"line one", "line two", "line three"}, Chunks(text, 12))

	long := strings.Repeat("x", 25)
	assert.Equal(t, []string{strings.Repeat("x", 10), strings.Repeat("x", 10), strings.Repeat("x", 5)}, Chunks(long, 10))

	hindi := strings.Repeat("क", 15)
	for _, c := range Chunks(hindi, 10) {
		assert.LessOrEqual(t, len([]rune(c)), 10)
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "✅ Explanations will be in Hindi.", LanguageSet(entity.LanguageHindi))
	assert.Equal(t, "❌ PDF error: bad\n\n📄 Send a PDF document to get a quiz.", InvalidDocument(errors.New("bad")))
}
