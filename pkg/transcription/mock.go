package transcription

import (
	"context"
	"strings"
	"time"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

// MockTranscriptionService 演示模式的转写实现，返回固定的新闻播报转写数据
type MockTranscriptionService struct {
	// Delay 模拟远程调用耗时，测试中可设为0
	Delay time.Duration
}

// NewMockTranscriptionService 创建Mock转写服务
func NewMockTranscriptionService() *MockTranscriptionService {
	return &MockTranscriptionService{Delay: time.Second}
}

// mockSegments 返回固定的演示转写段落
func mockSegments(language string) []models.Segment {
	data := []struct {
		start, end float64
		text       string
		speaker    string
		confidence float64
	}{
		{0.0, 4.2, "Good morning, I'm Sarah Mitchell, and this is WKRN Morning News.", "Anchor", 0.99},
		{4.5, 9.8, "Breaking overnight: A massive fire has destroyed a warehouse in downtown Nashville.", "Anchor", 0.98},
		{10.2, 15.5, "Fire crews responded around 2 AM and battled the blaze for nearly four hours.", "Anchor", 0.97},
		{16.0, 20.3, "We go live now to reporter Jake Thompson at the scene. Jake, what's the latest?", "Anchor", 0.98},
		{21.0, 27.5, "Sarah, as you can see behind me, crews are still working to contain hot spots.", "Reporter", 0.96},
		{28.0, 34.2, "The warehouse, owned by Mitchell Distribution, stored electronics and furniture.", "Reporter", 0.94},
		{34.8, 41.0, "Fire Chief Robert Anderson told me moments ago that the cause is under investigation.", "Reporter", 0.97},
		{41.5, 48.3, "You can hear additional units arriving now to assist with the operation.", "Reporter", 0.89},
		{49.0, 55.8, "Thankfully, no injuries have been reported. The building was unoccupied at the time.", "Reporter", 0.98},
		{56.2, 62.0, "We'll have more updates throughout the morning. Back to you, Sarah.", "Reporter", 0.97},
	}

	segments := make([]models.Segment, 0, len(data))
	for _, d := range data {
		segments = append(segments, models.Segment{
			Start:      d.start,
			End:        d.end,
			Text:       d.text,
			Speaker:    d.speaker,
			Confidence: d.confidence,
			Language:   language,
		})
	}
	return segments
}

// Transcribe 实现Service接口，返回固定的演示转写结果
func (s *MockTranscriptionService) Transcribe(ctx context.Context, filePath string, language string) (*models.TranscriptionResult, error) {
	time.Sleep(s.Delay) // 模拟处理耗时

	if language == "" {
		language = "en"
	}

	utils.Debug("Mock转写: %s", filePath)

	segments := mockSegments(language)
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}

	result := models.NewTranscriptionResult(segments, language, 62.0, strings.Join(texts, " "))
	result.Metadata["mock"] = true
	return result, nil
}

// TranscribeURL 实现Service接口
func (s *MockTranscriptionService) TranscribeURL(ctx context.Context, url string, language string) (*models.TranscriptionResult, error) {
	return s.Transcribe(ctx, "mock_file.mp3", language)
}
