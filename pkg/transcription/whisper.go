package transcription

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

// DefaultWhisperModel 默认的Whisper模型ID
const DefaultWhisperModel = "whisper-1"

// WhisperService OpenAI Whisper转写实现
type WhisperService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewWhisperService 创建Whisper转写服务
// model为空时使用whisper-1，timeout为0时默认300秒
func NewWhisperService(apiKey string, model string, timeout time.Duration) *WhisperService {
	if model == "" {
		model = DefaultWhisperModel
	}
	if timeout == 0 {
		timeout = 300 * time.Second
	}

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{Timeout: timeout}

	return &WhisperService{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
	}
}

// Transcribe 实现Service接口，转写本地媒体文件
func (s *WhisperService) Transcribe(ctx context.Context, filePath string, language string) (*models.TranscriptionResult, error) {
	// 先检查文件是否存在，避免发起无效的远程调用
	if !utils.FileExists(filePath) {
		return nil, fmt.Errorf("媒体文件不存在: %s", filePath)
	}

	utils.Info("Whisper转写: %s", filepath.Base(filePath))

	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.model,
		FilePath: filePath,
		Language: language,
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularitySegment,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("whisper转写请求失败: %w", err)
	}

	return s.parseResponse(&resp), nil
}

// TranscribeURL 实现Service接口，转写远程媒体文件
// Whisper API不支持直接传URL，先下载到临时文件再转写
func (s *WhisperService) TranscribeURL(ctx context.Context, url string, language string) (*models.TranscriptionResult, error) {
	tempPath, err := utils.DownloadToTemp(ctx, url, ".mp3")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempPath)

	return s.Transcribe(ctx, tempPath, language)
}

// parseResponse 将Whisper响应映射到数据模型
func (s *WhisperService) parseResponse(resp *openai.AudioResponse) *models.TranscriptionResult {
	segments := make([]whisperSegment, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		segments = append(segments, whisperSegment{
			Start:      seg.Start,
			End:        seg.End,
			Text:       seg.Text,
			AvgLogprob: seg.AvgLogprob,
		})
	}

	words := make([]models.WordTiming, 0, len(resp.Words))
	for _, w := range resp.Words {
		words = append(words, models.WordTiming{Word: w.Word, Start: w.Start, End: w.End})
	}

	result := normalizeWhisperResponse(segments, words, resp.Language, resp.Duration, resp.Text)
	result.Metadata["model"] = s.model
	result.Metadata["task"] = resp.Task
	return result
}
