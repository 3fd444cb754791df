package models

// WordTiming 表示单个词的时间信息
type WordTiming struct {
	Word  string  `json:"word"`  // 词文本
	Start float64 `json:"start"` // 开始时间（秒）
	End   float64 `json:"end"`   // 结束时间（秒）
}

// Segment 表示一个语音识别结果段落，对应单个说话人的一段连续语音
type Segment struct {
	Start      float64      `json:"start"`             // 开始时间（秒）
	End        float64      `json:"end"`               // 结束时间（秒）
	Text       string       `json:"text"`              // 识别出的文本内容
	Speaker    string       `json:"speaker,omitempty"` // 说话人标签（可选）
	Confidence float64      `json:"confidence"`        // 置信度（通常为0-1，不做强制）
	Language   string       `json:"language"`          // 语言代码（如 "en"）
	Words      []WordTiming `json:"words,omitempty"`   // 词级时间信息
}
