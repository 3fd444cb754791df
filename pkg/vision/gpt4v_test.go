package vision

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestVisionService 创建指向测试服务器的GPT-4V客户端
func newTestVisionService(serverURL string) *GPT4VisionService {
	config := openai.DefaultConfig("test-key")
	config.BaseURL = serverURL
	return &GPT4VisionService{
		client:  openai.NewClientWithConfig(config),
		model:   DefaultVisionModel,
		timeout: time.Minute,
	}
}

// chatCompletionBody 构造聊天补全响应体
func chatCompletionBody(content string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-test",
		"object": "chat.completion",
		"choices": [{"index": 0, "finish_reason": "stop",
			"message": {"role": "assistant", "content": %q}}]
	}`, content)
}

func TestAnalyzeImage(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "frame.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("fake image data"), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody(`{"description": "A news desk", "people_count": 2}`)))
	}))
	defer server.Close()

	service := newTestVisionService(server.URL)

	analysis, err := service.AnalyzeImage(context.Background(), imagePath, "", 3.0)
	require.NoError(t, err)

	assert.Equal(t, 3.0, analysis.Timestamp)
	assert.Equal(t, "A news desk", analysis.Description)
	assert.Equal(t, 2, analysis.PeopleCount)
}

// 图片文件不存在时在发起网络请求之前失败
func TestAnalyzeImageMissingFile(t *testing.T) {
	service := newTestVisionService("http://127.0.0.1:0")

	_, err := service.AnalyzeImage(context.Background(), "/nonexistent/frame.jpg", "", 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "读取图片文件失败")
}

// 单帧合规检查失败时记录日志并跳过，不中断整批
func TestCheckComplianceSkipsFailedFrames(t *testing.T) {
	dir := t.TempDir()
	goodFrame := filepath.Join(dir, "frame1.png")
	require.NoError(t, os.WriteFile(goodFrame, []byte("image"), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody("This frame contains inappropriate content for broadcast")))
	}))
	defer server.Close()

	service := newTestVisionService(server.URL)

	frames := []string{filepath.Join(dir, "missing.png"), goodFrame}
	issues, err := service.CheckCompliance(context.Background(), frames, "")
	require.NoError(t, err)

	// 第一帧读取失败被跳过，第二帧产生一个问题
	require.Len(t, issues, 1)
	assert.Equal(t, 1.0, issues[0].Timestamp)
	assert.Equal(t, "content", issues[0].IssueType)
	assert.Equal(t, "medium", issues[0].Severity)
}
