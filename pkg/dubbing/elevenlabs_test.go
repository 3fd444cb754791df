package dubbing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestService 创建指向测试服务器的ElevenLabs客户端
func newTestService(serverURL string) *ElevenLabsService {
	service := NewElevenLabsService("test-key", "", time.Minute)
	service.baseURL = serverURL
	return service
}

func TestGetVoicesFilterByLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voices", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"voices": [
			{"voice_id": "v1", "name": "Sarah", "labels": {"language": "en"}},
			{"voice_id": "v2", "name": "Maria", "labels": {"language": "es"}},
			{"voice_id": "v3", "name": "NoLabel"}
		]}`))
	}))
	defer server.Close()

	service := newTestService(server.URL)

	all, err := service.GetVoices(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// 没有语言标签的音色默认为en
	assert.Equal(t, "en", all[2].Language)

	spanish, err := service.GetVoices(context.Background(), "es")
	require.NoError(t, err)
	require.Len(t, spanish, 1)
	assert.Equal(t, "v2", spanish[0].ID)
}

func TestTextToSpeech(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text-to-speech/"+DefaultVoiceID, r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Hello world", payload["text"])
		assert.Equal(t, "eleven_multilingual_v2", payload["model_id"])

		w.Write([]byte("AUDIO_BYTES"))
	}))
	defer server.Close()

	service := newTestService(server.URL)

	// voiceID为空时使用默认音色，opts为nil时使用默认参数
	result, err := service.TextToSpeech(context.Background(), "Hello world", "", nil)
	require.NoError(t, err)

	assert.Equal(t, []byte("AUDIO_BYTES"), result.AudioData)
	assert.Equal(t, "mp3", result.Format)
	assert.Equal(t, DefaultVoiceID, result.Metadata["voice_id"])
}

func TestTextToSpeechErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "invalid api key"}`))
	}))
	defer server.Close()

	service := newTestService(server.URL)

	_, err := service.TextToSpeech(context.Background(), "text", "", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestDubAudioWritesSiblingFile(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "news.mp3")
	require.NoError(t, os.WriteFile(audioPath, []byte("source audio"), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dubbing", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "es", r.FormValue("target_lang"))
		assert.Equal(t, "en", r.FormValue("source_lang"))

		_, _, err := r.FormFile("file")
		assert.NoError(t, err)

		w.Write([]byte("DUBBED_AUDIO"))
	}))
	defer server.Close()

	service := newTestService(server.URL)

	result, err := service.DubAudio(context.Background(), audioPath, "es", "voice-1")
	require.NoError(t, err)

	// 配音结果写入源文件旁的 <文件名>_<语言><扩展名>
	expectedPath := filepath.Join(dir, "news_es.mp3")
	assert.Equal(t, expectedPath, result.AudioPath)
	assert.Equal(t, "es", result.Language)
	assert.Equal(t, "voice-1", result.VoiceID)

	data, err := os.ReadFile(expectedPath)
	require.NoError(t, err)
	assert.Equal(t, "DUBBED_AUDIO", string(data))
}

// 文件不存在时必须在发起网络请求之前失败
func TestDubAudioMissingFile(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	service := newTestService(server.URL)

	_, err := service.DubAudio(context.Background(), "/nonexistent/audio.mp3", "es", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "音频文件不存在")
	assert.False(t, requested)
}
