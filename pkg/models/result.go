package models

import "strings"

// TranscriptionResult 表示一次完整的转写结果
//
// FullText 在构建时确定，之后不再从段落重新推导，序列化时原样返回。
type TranscriptionResult struct {
	Segments []Segment              `json:"segments"` // 按开始时间排列的段落
	Language string                 `json:"language"` // 文档级语言代码
	Duration float64                `json:"duration"` // 音频总时长（秒）
	FullText string                 `json:"text"`     // 完整转写文本
	Metadata map[string]interface{} `json:"metadata"` // 附加元数据
}

// NewTranscriptionResult 根据服务返回的原始数据构建转写结果，并应用归一化规则：
//  1. 没有段落但有整篇文本时，合成一个覆盖 [0, duration] 的段落
//  2. 未提供时长时，回退为最后一个段落的结束时间（无段落则为0）
//  3. 未提供整篇文本时，用单个空格拼接各段落文本
func NewTranscriptionResult(segments []Segment, language string, duration float64, fullText string) *TranscriptionResult {
	if len(segments) == 0 && fullText != "" {
		segments = []Segment{{
			Start:      0,
			End:        duration,
			Text:       strings.TrimSpace(fullText),
			Confidence: 1.0,
			Language:   language,
		}}
	}

	if duration == 0 && len(segments) > 0 {
		duration = segments[len(segments)-1].End
	}

	if fullText == "" {
		texts := make([]string, 0, len(segments))
		for _, seg := range segments {
			texts = append(texts, seg.Text)
		}
		fullText = strings.Join(texts, " ")
	}

	return &TranscriptionResult{
		Segments: segments,
		Language: language,
		Duration: duration,
		FullText: fullText,
		Metadata: make(map[string]interface{}),
	}
}

// ToPlainText 返回完整转写文本
// 注意：直接返回构建时保存的字段，不会从段落重新计算
func (r *TranscriptionResult) ToPlainText() string {
	return r.FullText
}
