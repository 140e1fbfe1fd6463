package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextShortInput(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("A short job description.", 1000, 200)
	require.Len(t, chunks, 1)
	assert.Equal(t, "A short job description.", chunks[0])
}

func TestChunkTextEmptyInput(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000, 200))
	assert.Empty(t, chunker.ChunkText("\n\n\n\n", 1000, 200))
}

func TestChunkTextSplitsParagraphs(t *testing.T) {
	chunker := NewTextChunker()

	para := strings.Repeat("word ", 30) // ~150 chars
	text := para + "\n\n" + para + "\n\n" + para

	chunks := chunker.ChunkText(text, 200, 0)
	require.Greater(t, len(chunks), 1)

	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 200)
	}
}

func TestChunkTextLongParagraphFallsBackToSentences(t *testing.T) {
	chunker := NewTextChunker()

	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("This sentence pads out a very long single paragraph. ")
	}

	chunks := chunker.ChunkText(sb.String(), 200, 0)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}

func TestChunkTextOverlapCarriedForward(t *testing.T) {
	chunker := NewTextChunker()

	para := strings.Repeat("alpha ", 30)
	text := para + "\n\n" + para

	chunks := chunker.ChunkText(text, 180, 40)
	require.Greater(t, len(chunks), 1)

	// Each follow-up chunk starts with the tail of its predecessor.
	tail := getLastNChars(chunks[0], 40)
	assert.True(t, strings.HasPrefix(chunks[1], tail))
}

func TestChunkTextDefaultsOnBadParams(t *testing.T) {
	chunker := NewTextChunker()

	// Zero max size falls back to the default instead of looping forever.
	chunks := chunker.ChunkText("some text", 0, -5)
	require.Len(t, chunks, 1)
	assert.Equal(t, "some text", chunks[0])
}

func TestGetLastNChars(t *testing.T) {
	assert.Equal(t, "", getLastNChars("hello", 0))
	assert.Equal(t, "llo", getLastNChars("hello", 3))
	assert.Equal(t, "hello", getLastNChars("hello", 10))
}

func TestSplitIntoSentences(t *testing.T) {
	sentences := splitIntoSentences("One. Two! Three? ")
	assert.Equal(t, []string{"One", "Two", "Three"}, sentences)
}
