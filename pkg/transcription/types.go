package transcription

import (
	"context"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
)

// Service 定义了语音转写服务的接口，真实实现与Mock实现可互换
type Service interface {
	// Transcribe 转写本地媒体文件，language为空时自动检测语言
	Transcribe(ctx context.Context, filePath string, language string) (*models.TranscriptionResult, error)

	// TranscribeURL 转写远程媒体文件
	TranscribeURL(ctx context.Context, url string, language string) (*models.TranscriptionResult, error)
}
