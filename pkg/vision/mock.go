package vision

import (
	"context"
	"time"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
)

// MockVisionService 演示模式的视觉分析实现
type MockVisionService struct {
	// Delay 模拟远程调用耗时，测试中可设为0
	Delay time.Duration
}

// NewMockVisionService 创建Mock视觉分析服务
func NewMockVisionService() *MockVisionService {
	return &MockVisionService{Delay: 300 * time.Millisecond}
}

// AnalyzeImage 实现Service接口，返回固定的场景分析
func (s *MockVisionService) AnalyzeImage(ctx context.Context, imagePath string, prompt string, timestamp float64) (*models.SceneAnalysis, error) {
	time.Sleep(s.Delay) // 模拟处理耗时

	return &models.SceneAnalysis{
		Timestamp:    timestamp,
		Description:  "News anchor at desk delivering breaking news about warehouse fire",
		Emotions:     []string{"concerned", "professional"},
		Objects:      []string{"desk", "microphone", "monitor", "graphics"},
		PeopleCount:  1,
		TextDetected: []string{"BREAKING NEWS", "WAREHOUSE FIRE"},
		Confidence:   0.95,
		Tags:         []string{"news", "broadcast", "breaking", "fire"},
	}, nil
}

// AnalyzeVideoFrames 实现Service接口，按固定场景循环生成帧分析
func (s *MockVisionService) AnalyzeVideoFrames(ctx context.Context, framePaths []string, prompt string, frameInterval float64) ([]models.SceneAnalysis, error) {
	scenes := []struct {
		description string
		emotions    []string
	}{
		{"Anchor introduces breaking news", []string{"serious"}},
		{"Cut to live reporter at scene", []string{"urgent"}},
		{"Wide shot of fire and emergency vehicles", []string{"dramatic"}},
		{"Close-up of firefighters working", []string{"action"}},
		{"Reporter interview with witness", []string{"emotional"}},
	}

	analyses := make([]models.SceneAnalysis, 0, len(framePaths))
	for i := range framePaths {
		scene := scenes[i%len(scenes)]
		analyses = append(analyses, models.SceneAnalysis{
			Timestamp:   float64(i) * 5.0,
			Description: scene.description,
			Emotions:    scene.emotions,
			Objects:     []string{"camera", "equipment"},
			PeopleCount: 2,
			Confidence:  0.9,
			Tags:        []string{"news", "breaking"},
		})
		time.Sleep(s.Delay / 3)
	}

	return analyses, nil
}

// DetectViralMoments 实现Service接口，返回固定的两个片段
func (s *MockVisionService) DetectViralMoments(ctx context.Context, analyses []models.SceneAnalysis, transcript string) ([]models.ViralMoment, error) {
	time.Sleep(s.Delay) // 模拟处理耗时

	return []models.ViralMoment{
		{
			StartTime:   145.0,
			EndTime:     162.0,
			Title:       "Reporter's Close Call with Debris",
			Description: "Live reporter narrowly dodges falling debris during fire coverage",
			ViralScore:  0.97,
			Emotion:     "shock",
			Reasoning:   "Dramatic near-miss moments tend to go viral",
			Hashtags:    []string{"#Breaking", "#CloseCall", "#LiveTV"},
			Platforms:   []string{"TikTok", "Twitter", "Instagram"},
		},
		{
			StartTime:   892.0,
			EndTime:     918.0,
			Title:       "Emotional Family Reunion",
			Description: "Family reunited with pet after disaster",
			ViralScore:  0.95,
			Emotion:     "heartwarming",
			Reasoning:   "Emotional reunion content performs well across platforms",
			Hashtags:    []string{"#Heartwarming", "#GoodNews", "#Miracle"},
			Platforms:   []string{"Facebook", "Instagram", "TikTok"},
		},
	}, nil
}

// CheckCompliance 实现Service接口，返回固定的合规问题
func (s *MockVisionService) CheckCompliance(ctx context.Context, framePaths []string, transcript string) ([]models.ComplianceIssue, error) {
	time.Sleep(s.Delay) // 模拟处理耗时

	return []models.ComplianceIssue{
		{
			Timestamp:      125.5,
			IssueType:      "profanity",
			Severity:       "high",
			Description:    "Potential profanity detected in interview",
			Confidence:     0.85,
			Recommendation: "Review audio and consider bleeping",
		},
	}, nil
}
