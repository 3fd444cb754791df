package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

// DefaultVisionModel 默认的视觉分析模型ID
const DefaultVisionModel = "gpt-4-vision-preview"

// 传播潜力分析使用的文本模型
const viralDetectionModel = "gpt-4-turbo-preview"

// 默认的帧分析提示词
const defaultScenePrompt = `Analyze this video frame and provide:
1. A brief description of what's happening
2. Detected emotions (list)
3. Key objects visible (list)
4. Number of people visible
5. Any text visible in frame
6. Relevant tags for this content

Respond in JSON format with keys: description, emotions, objects, people_count, text, tags`

// 合规检查提示词
const compliancePrompt = `Analyze this frame for broadcast compliance issues:
- Inappropriate or adult content
- Violence or disturbing imagery
- Offensive text or symbols
- Brand logos (may require clearance)
- Any content unsuitable for broadcast

If issues found, respond with JSON: {"issues": [{"type": "", "severity": "", "description": "", "recommendation": ""}]}
If no issues: {"issues": []}`

// GPT4VisionService OpenAI GPT-4V视觉分析实现
type GPT4VisionService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewGPT4VisionService 创建GPT-4V视觉分析服务
// model为空时使用gpt-4-vision-preview，timeout为0时默认60秒
func NewGPT4VisionService(apiKey string, model string, timeout time.Duration) *GPT4VisionService {
	if model == "" {
		model = DefaultVisionModel
	}
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{Timeout: timeout}

	return &GPT4VisionService{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
	}
}

// AnalyzeImage 实现Service接口，分析单帧图片
func (s *GPT4VisionService) AnalyzeImage(ctx context.Context, imagePath string, prompt string, timestamp float64) (*models.SceneAnalysis, error) {
	// 先检查文件是否存在，避免发起无效的远程调用
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("读取图片文件失败: %w", err)
	}

	if prompt == "" {
		prompt = defaultScenePrompt
	}

	// 根据扩展名确定媒体类型
	mediaType := "image/png"
	switch strings.ToLower(filepath.Ext(imagePath)) {
	case ".jpg", ".jpeg":
		mediaType = "image/jpeg"
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(imageData))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
		MaxTokens: 500,
	})
	if err != nil {
		return nil, fmt.Errorf("视觉分析请求失败: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("视觉分析响应为空")
	}

	return parseSceneContent(resp.Choices[0].Message.Content, timestamp), nil
}

// AnalyzeVideoFrames 实现Service接口，严格按输入顺序逐帧分析
func (s *GPT4VisionService) AnalyzeVideoFrames(ctx context.Context, framePaths []string, prompt string, frameInterval float64) ([]models.SceneAnalysis, error) {
	analyses := make([]models.SceneAnalysis, 0, len(framePaths))
	for i, path := range framePaths {
		timestamp := float64(i) * frameInterval
		analysis, err := s.AnalyzeImage(ctx, path, prompt, timestamp)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *analysis)
	}
	return analyses, nil
}

// DetectViralMoments 实现Service接口，检测高传播潜力片段
func (s *GPT4VisionService) DetectViralMoments(ctx context.Context, analyses []models.SceneAnalysis, transcript string) ([]models.ViralMoment, error) {
	var sb strings.Builder
	sb.WriteString("Analyze these video scenes for viral potential:\n\n")
	for _, analysis := range analyses {
		sb.WriteString(fmt.Sprintf("[%gs] %s\n", analysis.Timestamp, analysis.Description))
		sb.WriteString(fmt.Sprintf("  Emotions: %s\n", strings.Join(analysis.Emotions, ", ")))
	}

	if transcript != "" {
		excerpt := transcript
		if len(excerpt) > 500 {
			excerpt = excerpt[:500]
		}
		sb.WriteString(fmt.Sprintf("\nTranscript excerpt: %s\n", excerpt))
	}

	sb.WriteString(`
Identify moments with high viral potential. For each, provide:
- Time range (start_time, end_time in seconds)
- Catchy title
- Description
- Viral score (0-1)
- Primary emotion
- Why it could go viral
- Suggested hashtags
- Best platforms

Respond in JSON format as a list of viral moments.`)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: viralDetectionModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: sb.String()},
		},
		MaxTokens: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("传播潜力分析请求失败: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, nil
	}

	return parseViralContent(resp.Choices[0].Message.Content), nil
}

// CheckCompliance 实现Service接口，逐帧合规检查
// 单帧失败只记录日志并跳过，保证一帧异常不中断整批检查
func (s *GPT4VisionService) CheckCompliance(ctx context.Context, framePaths []string, transcript string) ([]models.ComplianceIssue, error) {
	var issues []models.ComplianceIssue

	for i, path := range framePaths {
		analysis, err := s.AnalyzeImage(ctx, path, compliancePrompt, float64(i))
		if err != nil {
			utils.Warn("帧合规检查失败，已跳过: %s: %v", path, err)
			continue
		}

		if strings.Contains(strings.ToLower(analysis.Description), "inappropriate") {
			issues = append(issues, models.ComplianceIssue{
				Timestamp:      float64(i),
				IssueType:      "content",
				Severity:       "medium",
				Description:    analysis.Description,
				Confidence:     0.8,
				Recommendation: "Review content before broadcast",
			})
		}
	}

	return issues, nil
}
