package dubbing

import (
	"context"
	"fmt"
	"time"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

// MockDubbingService 演示模式的配音实现
type MockDubbingService struct {
	// Delay 模拟远程调用耗时，测试中可设为0
	Delay time.Duration
}

// NewMockDubbingService 创建Mock配音服务
func NewMockDubbingService() *MockDubbingService {
	return &MockDubbingService{Delay: 500 * time.Millisecond}
}

// mockVoices 固定的演示音色列表
func mockVoices() []models.Voice {
	return []models.Voice{
		{ID: "voice-1", Name: "Sarah (News Anchor)", Language: "en", Description: "Professional news anchor voice"},
		{ID: "voice-2", Name: "James (Reporter)", Language: "en", Description: "Field reporter voice"},
		{ID: "voice-3", Name: "Maria (Spanish)", Language: "es", Description: "Spanish female voice"},
		{ID: "voice-4", Name: "Pierre (French)", Language: "fr", Description: "French male voice"},
		{ID: "voice-5", Name: "Hans (German)", Language: "de", Description: "German male voice"},
	}
}

// GetVoices 实现Service接口，返回固定音色列表
func (s *MockDubbingService) GetVoices(ctx context.Context, language string) ([]models.Voice, error) {
	voices := mockVoices()
	if language == "" {
		return voices, nil
	}

	filtered := make([]models.Voice, 0, len(voices))
	for _, v := range voices {
		if v.Language == language {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// TextToSpeech 实现Service接口，返回模拟音频数据
func (s *MockDubbingService) TextToSpeech(ctx context.Context, text string, voiceID string, opts *TTSOptions) (*models.TTSResult, error) {
	time.Sleep(s.Delay) // 模拟处理耗时

	prefix := text
	if len(prefix) > 50 {
		prefix = prefix[:50]
	}
	mockAudio := append([]byte("MOCK_AUDIO_DATA_"), prefix...)

	utils.Debug("Mock TTS: %d字符", len(text))

	return &models.TTSResult{
		AudioData: mockAudio,
		Format:    "mp3",
		Duration:  float64(len(text)) * 0.05, // 粗略估算
		Metadata: map[string]interface{}{
			"mock":     true,
			"voice_id": voiceID,
		},
	}, nil
}

// DubAudio 实现Service接口，返回模拟配音结果
func (s *MockDubbingService) DubAudio(ctx context.Context, audioPath string, targetLanguage string, voiceID string) (*models.DubbingResult, error) {
	time.Sleep(s.Delay) // 模拟处理耗时

	if voiceID == "" {
		voiceID = "mock-voice"
	}

	outputPath := fmt.Sprintf("%s.%s.mp3", audioPath, targetLanguage)

	return &models.DubbingResult{
		AudioPath: outputPath,
		Language:  targetLanguage,
		VoiceID:   voiceID,
		Duration:  60.0,
		Metadata:  map[string]interface{}{"mock": true},
	}, nil
}
