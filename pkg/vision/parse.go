package vision

import (
	"encoding/json"
	"strings"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
)

// scenePayload 场景分析响应的JSON结构
type scenePayload struct {
	Description string   `json:"description"`
	Emotions    []string `json:"emotions"`
	Objects     []string `json:"objects"`
	PeopleCount int      `json:"people_count"`
	Text        []string `json:"text"`
	Tags        []string `json:"tags"`
}

// parseSceneContent 解析模型返回的场景分析内容
// 内容不是合法JSON时退化为仅包含描述的结果，而不是让整个操作失败
func parseSceneContent(content string, timestamp float64) *models.SceneAnalysis {
	var payload scenePayload
	if err := json.Unmarshal([]byte(extractJSONBlock(content)), &payload); err != nil {
		payload = scenePayload{Description: content}
	}

	return &models.SceneAnalysis{
		Timestamp:    timestamp,
		Description:  payload.Description,
		Emotions:     payload.Emotions,
		Objects:      payload.Objects,
		PeopleCount:  payload.PeopleCount,
		TextDetected: payload.Text,
		Confidence:   1.0,
		Tags:         payload.Tags,
	}
}

// viralPayload 传播潜力片段响应的JSON结构
type viralPayload struct {
	StartTime   float64  `json:"start_time"`
	EndTime     float64  `json:"end_time"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ViralScore  *float64 `json:"viral_score"`
	Emotion     string   `json:"emotion"`
	Reasoning   string   `json:"reasoning"`
	Why         string   `json:"why"`
	Hashtags    []string `json:"hashtags"`
	Platforms   []string `json:"platforms"`
}

// parseViralContent 解析模型返回的传播潜力片段列表
// 解析失败返回空列表而不报错
func parseViralContent(content string) []models.ViralMoment {
	var payloads []viralPayload
	if err := json.Unmarshal([]byte(extractJSONBlock(content)), &payloads); err != nil {
		return nil
	}

	moments := make([]models.ViralMoment, 0, len(payloads))
	for _, p := range payloads {
		score := 0.5
		if p.ViralScore != nil {
			score = *p.ViralScore
		}

		reasoning := p.Reasoning
		if reasoning == "" {
			reasoning = p.Why
		}

		moments = append(moments, models.ViralMoment{
			StartTime:   p.StartTime,
			EndTime:     p.EndTime,
			Title:       p.Title,
			Description: p.Description,
			ViralScore:  score,
			Emotion:     p.Emotion,
			Reasoning:   reasoning,
			Hashtags:    p.Hashtags,
			Platforms:   p.Platforms,
		})
	}

	return moments
}

// extractJSONBlock 提取被```json围栏包裹的内容，没有围栏时原样返回
func extractJSONBlock(content string) string {
	if !strings.Contains(content, "```json") {
		return content
	}

	after := strings.SplitN(content, "```json", 2)[1]
	return strings.SplitN(after, "```", 2)[0]
}
