package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
)

// 对数概率到置信度的映射为 logprob+1，不做截断
func TestConfidenceFromLogProb(t *testing.T) {
	assert.InDelta(t, 0.9, confidenceFromLogProb(-0.1), 1e-9)
	assert.InDelta(t, 1.0, confidenceFromLogProb(0), 1e-9)
	// 足够小的对数概率会产生[0,1]之外的值，保持原样
	assert.InDelta(t, -0.5, confidenceFromLogProb(-1.5), 1e-9)
}

func TestNormalizeWhisperResponse(t *testing.T) {
	segments := []whisperSegment{
		{Start: 0, End: 2.5, Text: " Hello there. ", AvgLogprob: -0.1},
		{Start: 2.5, End: 5, Text: "Second segment.", AvgLogprob: -0.3},
	}

	result := normalizeWhisperResponse(segments, nil, "en", 5.0, "Hello there. Second segment.")

	assert.Len(t, result.Segments, 2)
	assert.Equal(t, "Hello there.", result.Segments[0].Text)
	assert.InDelta(t, 0.9, result.Segments[0].Confidence, 1e-9)
	assert.Equal(t, "en", result.Segments[0].Language)
	assert.Equal(t, 5.0, result.Duration)
	assert.Equal(t, "Hello there. Second segment.", result.FullText)
}

// 没有段落但有整篇文本时合成单个段落
func TestNormalizeWhisperResponseNoSegments(t *testing.T) {
	result := normalizeWhisperResponse(nil, nil, "en", 12.0, "Only whole text.")

	assert.Len(t, result.Segments, 1)
	assert.Equal(t, 0.0, result.Segments[0].Start)
	assert.Equal(t, 12.0, result.Segments[0].End)
	assert.Equal(t, "Only whole text.", result.Segments[0].Text)
}

// 词级时间信息按开始时间归入覆盖它的段落
func TestNormalizeWhisperResponseWordAttachment(t *testing.T) {
	segments := []whisperSegment{
		{Start: 0, End: 2, Text: "one two", AvgLogprob: -0.1},
		{Start: 2, End: 4, Text: "three", AvgLogprob: -0.1},
	}
	words := []models.WordTiming{
		{Word: "one", Start: 0.1, End: 0.5},
		{Word: "two", Start: 1.2, End: 1.6},
		{Word: "three", Start: 2.2, End: 2.8},
	}

	result := normalizeWhisperResponse(segments, words, "en", 4, "one two three")

	assert.Len(t, result.Segments[0].Words, 2)
	assert.Len(t, result.Segments[1].Words, 1)
	assert.Equal(t, "three", result.Segments[1].Words[0].Word)
}
