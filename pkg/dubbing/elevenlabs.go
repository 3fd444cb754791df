package dubbing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

// APIBaseURL ElevenLabs API基础URL
const APIBaseURL = "https://api.elevenlabs.io/v1"

// DefaultVoiceID 默认音色（Rachel）
const DefaultVoiceID = "21m00Tcm4TlvDq8ikWAM"

// 源语言默认值
const defaultSourceLang = "en"

// ElevenLabsService ElevenLabs配音与TTS实现
type ElevenLabsService struct {
	apiKey         string
	defaultVoiceID string
	client         *http.Client
	baseURL        string
}

// NewElevenLabsService 创建ElevenLabs配音服务
// defaultVoiceID为空时使用Rachel，timeout为0时默认60秒
func NewElevenLabsService(apiKey string, defaultVoiceID string, timeout time.Duration) *ElevenLabsService {
	if defaultVoiceID == "" {
		defaultVoiceID = DefaultVoiceID
	}
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &ElevenLabsService{
		apiKey:         apiKey,
		defaultVoiceID: defaultVoiceID,
		client:         &http.Client{Timeout: timeout},
		baseURL:        APIBaseURL,
	}
}

// setHeaders 设置API认证头
func (s *ElevenLabsService) setHeaders(req *http.Request) {
	req.Header.Set("xi-api-key", s.apiKey)
	req.Header.Set("Accept", "application/json")
}

// voicesResponse /voices响应结构
type voicesResponse struct {
	Voices []struct {
		VoiceID     string            `json:"voice_id"`
		Name        string            `json:"name"`
		Description string            `json:"description"`
		PreviewURL  string            `json:"preview_url"`
		Labels      map[string]string `json:"labels"`
	} `json:"voices"`
}

// GetVoices 实现Service接口，获取可用音色列表
func (s *ElevenLabsService) GetVoices(ctx context.Context, language string) ([]models.Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("获取音色列表失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("获取音色列表失败: HTTP %d: %s", resp.StatusCode, body)
	}

	var parsed voicesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("解析音色列表失败: %w", err)
	}

	voices := make([]models.Voice, 0, len(parsed.Voices))
	for _, v := range parsed.Voices {
		lang := v.Labels["language"]
		if lang == "" {
			lang = "en"
		}

		voice := models.Voice{
			ID:          v.VoiceID,
			Name:        v.Name,
			Language:    lang,
			Description: v.Description,
			PreviewURL:  v.PreviewURL,
			Labels:      v.Labels,
		}

		// 按语言过滤
		if language == "" || voice.Language == language {
			voices = append(voices, voice)
		}
	}

	return voices, nil
}

// TextToSpeech 实现Service接口，文本转语音
func (s *ElevenLabsService) TextToSpeech(ctx context.Context, text string, voiceID string, opts *TTSOptions) (*models.TTSResult, error) {
	if voiceID == "" {
		voiceID = s.defaultVoiceID
	}
	if opts == nil {
		opts = DefaultTTSOptions()
	}

	utils.Info("TTS: %d字符, 音色 %s", len(text), voiceID)

	payload := map[string]interface{}{
		"text":     text,
		"model_id": opts.ModelID,
		"voice_settings": map[string]float64{
			"stability":        opts.Stability,
			"similarity_boost": opts.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("序列化TTS请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/text-to-speech/"+voiceID, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TTS请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取TTS响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TTS请求失败: HTTP %d: %s", resp.StatusCode, body)
	}

	return &models.TTSResult{
		AudioData: body,
		Format:    "mp3",
		Metadata: map[string]interface{}{
			"voice_id":    voiceID,
			"model_id":    opts.ModelID,
			"text_length": len(text),
		},
	}, nil
}

// DubAudio 实现Service接口，整段音频配音
// 配音结果写入源文件旁的 <文件名>_<语言><扩展名> 路径
func (s *ElevenLabsService) DubAudio(ctx context.Context, audioPath string, targetLanguage string, voiceID string) (*models.DubbingResult, error) {
	if voiceID == "" {
		voiceID = s.defaultVoiceID
	}

	// 先检查文件是否存在，避免发起无效的远程调用
	if !utils.FileExists(audioPath) {
		return nil, fmt.Errorf("音频文件不存在: %s", audioPath)
	}

	fileData, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("读取音频文件失败: %w", err)
	}

	utils.Info("配音 %s -> %s", filepath.Base(audioPath), targetLanguage)

	// 创建multipart表单
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, fmt.Errorf("创建表单文件失败: %w", err)
	}
	if _, err := part.Write(fileData); err != nil {
		return nil, fmt.Errorf("写入文件数据失败: %w", err)
	}

	fields := map[string]string{
		"target_lang": targetLanguage,
		"source_lang": defaultSourceLang,
		"voice_id":    voiceID,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("写入表单字段失败: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("关闭表单写入器失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/dubbing", &requestBody)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("配音请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取配音响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("配音请求失败: HTTP %d: %s", resp.StatusCode, body)
	}

	// 保存配音结果到同级路径
	outputPath := utils.DubbedOutputPath(audioPath, targetLanguage)
	if err := os.WriteFile(outputPath, body, 0644); err != nil {
		return nil, fmt.Errorf("写入配音文件失败: %w", err)
	}

	return &models.DubbingResult{
		AudioPath: outputPath,
		Language:  targetLanguage,
		VoiceID:   voiceID,
		Duration:  0, // 需要解析音频才能得到时长
		Metadata: map[string]interface{}{
			"source_language": defaultSourceLang,
			"source_file":     audioPath,
		},
	}, nil
}

// CloneVoice 从音频样本克隆音色（ElevenLabs专有能力，不属于Service接口）
func (s *ElevenLabsService) CloneVoice(ctx context.Context, name string, audioFiles []string, description string) (*models.Voice, error) {
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	for _, path := range audioFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("读取样本文件失败: %w", err)
		}

		part, err := writer.CreateFormFile("files", filepath.Base(path))
		if err != nil {
			return nil, fmt.Errorf("创建表单文件失败: %w", err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, fmt.Errorf("写入样本数据失败: %w", err)
		}
	}

	if err := writer.WriteField("name", name); err != nil {
		return nil, fmt.Errorf("写入表单字段失败: %w", err)
	}
	if err := writer.WriteField("description", description); err != nil {
		return nil, fmt.Errorf("写入表单字段失败: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("关闭表单写入器失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/voices/add", &requestBody)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("克隆音色请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取克隆响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("克隆音色请求失败: HTTP %d: %s", resp.StatusCode, body)
	}

	var parsed struct {
		VoiceID string `json:"voice_id"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("解析克隆响应失败: %w", err)
	}

	return &models.Voice{
		ID:          parsed.VoiceID,
		Name:        name,
		Language:    "en",
		Description: description,
	}, nil
}
