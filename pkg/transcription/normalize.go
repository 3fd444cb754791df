package transcription

import (
	"strings"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
)

// whisperSegment Whisper verbose_json响应中的段落字段
type whisperSegment struct {
	Start      float64
	End        float64
	Text       string
	AvgLogprob float64
}

// confidenceFromLogProb 将Whisper的平均对数概率映射为置信度
// 映射为 logprob + 1，这是兼容性保留的近似换算，不是概率校准，
// 对数概率足够小时结果会落在[0,1]之外，不做截断
func confidenceFromLogProb(logprob float64) float64 {
	return logprob + 1
}

// normalizeWhisperResponse 将Whisper原始响应数据归一化为转写结果
func normalizeWhisperResponse(segments []whisperSegment, words []models.WordTiming, language string, duration float64, text string) *models.TranscriptionResult {
	normalized := make([]models.Segment, 0, len(segments))
	for _, seg := range segments {
		normalized = append(normalized, models.Segment{
			Start:      seg.Start,
			End:        seg.End,
			Text:       strings.TrimSpace(seg.Text),
			Confidence: confidenceFromLogProb(seg.AvgLogprob),
			Language:   language,
			Words:      wordsInRange(words, seg.Start, seg.End),
		})
	}

	return models.NewTranscriptionResult(normalized, language, duration, text)
}

// wordsInRange 返回开始时间落在段落时间范围内的词
func wordsInRange(words []models.WordTiming, start, end float64) []models.WordTiming {
	var matched []models.WordTiming
	for _, w := range words {
		if w.Start >= start && w.Start < end {
			matched = append(matched, w)
		}
	}
	return matched
}
