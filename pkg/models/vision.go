package models

// SceneAnalysis 表示对单帧画面的分析结果
type SceneAnalysis struct {
	Timestamp    float64  `json:"timestamp"`     // 帧在视频中的时间点（秒）
	Description  string   `json:"description"`   // 画面内容描述
	Emotions     []string `json:"emotions"`      // 检测到的情绪
	Objects      []string `json:"objects"`       // 画面中的关键物体
	PeopleCount  int      `json:"people_count"`  // 画面中的人数
	TextDetected []string `json:"text_detected"` // 画面中识别出的文字
	Confidence   float64  `json:"confidence"`    // 置信度
	Tags         []string `json:"tags"`          // 内容标签
}

// ViralMoment 表示一个检测出的高传播潜力片段
type ViralMoment struct {
	StartTime   float64  `json:"start"`       // 片段开始时间（秒）
	EndTime     float64  `json:"end"`         // 片段结束时间（秒）
	Title       string   `json:"title"`       // 片段标题
	Description string   `json:"description"` // 片段描述
	ViralScore  float64  `json:"viral_score"` // 传播潜力评分（0-1）
	Emotion     string   `json:"emotion"`     // 主要情绪
	Reasoning   string   `json:"reasoning"`   // 评分理由
	Hashtags    []string `json:"hashtags"`    // 建议话题标签
	Platforms   []string `json:"platforms"`   // 建议发布平台
}

// ComplianceIssue 表示一个播出合规问题
type ComplianceIssue struct {
	Timestamp      float64 `json:"timestamp"`      // 问题出现的时间点（秒）
	IssueType      string  `json:"type"`           // 问题类型（profanity/violence等）
	Severity       string  `json:"severity"`       // 严重程度（low/medium/high/critical）
	Description    string  `json:"description"`    // 问题描述
	Confidence     float64 `json:"confidence"`     // 置信度
	Recommendation string  `json:"recommendation"` // 处理建议
}
