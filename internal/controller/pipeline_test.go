package controller

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/dubbing"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/services"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/transcription"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/vision"
)

func TestMain(m *testing.M) {
	utils.InitLogger(utils.LogLevelQuiet, "")
	os.Exit(m.Run())
}

// newTestPipeline 创建全Mock后端、零延迟的测试管线
func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()

	config := models.NewDefaultConfig()
	config.OutputFolder = t.TempDir()
	config.ExportSRT = true
	config.ExportVTT = true
	config.ExportJSON = true

	provider := &services.Provider{
		Transcription: &transcription.MockTranscriptionService{Delay: 0},
		Dubbing:       &dubbing.MockDubbingService{Delay: 0},
		Vision:        &vision.MockVisionService{Delay: 0},
	}

	return NewPipeline(config, provider)
}

func TestProcessMediaFile(t *testing.T) {
	pipeline := newTestPipeline(t)

	result, err := pipeline.ProcessMediaFile(context.Background(), "/media/news_clip.mp4")
	require.NoError(t, err)

	assert.NotEmpty(t, result.TaskID)
	assert.Equal(t, "/media/news_clip.mp4", result.MediaPath)
	assert.Equal(t, 10, result.SegmentCount)
	assert.Equal(t, 62.0, result.Duration)

	// 四种格式全部导出
	for _, format := range []string{"txt", "srt", "vtt", "json"} {
		path, ok := result.OutputFiles[format]
		require.True(t, ok, "缺少%s输出", format)
		_, err := os.Stat(path)
		assert.NoError(t, err, "输出文件不存在: %s", path)
	}

	srtData, err := os.ReadFile(result.OutputFiles["srt"])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(srtData), "1\n00:00:00,000"))

	vttData, err := os.ReadFile(result.OutputFiles["vtt"])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(vttData), "WEBVTT\n\n"))

	assert.Equal(t, 1, pipeline.Stats.TotalFiles)
	assert.Equal(t, 1, pipeline.Stats.SuccessfulFiles)
	assert.Equal(t, 0, pipeline.Stats.FailedFiles)
}

// 禁用可选导出时只产出文本文件
func TestProcessMediaFileExportsDisabled(t *testing.T) {
	pipeline := newTestPipeline(t)
	pipeline.Config.ExportSRT = false
	pipeline.Config.ExportVTT = false
	pipeline.Config.ExportJSON = false

	result, err := pipeline.ProcessMediaFile(context.Background(), "/media/clip.mp3")
	require.NoError(t, err)

	assert.Len(t, result.OutputFiles, 1)
	assert.Contains(t, result.OutputFiles, "txt")
}

func TestAnalyzeFrames(t *testing.T) {
	pipeline := newTestPipeline(t)
	pipeline.Config.FrameInterval = 2.0

	frames := []string{"f0.jpg", "f1.jpg", "f2.jpg"}
	analyses, moments, err := pipeline.AnalyzeFrames(context.Background(), frames, "transcript text")
	require.NoError(t, err)

	// 帧分析结果与输入顺序一致，时间点按帧间隔递增
	require.Len(t, analyses, len(frames))
	for i, analysis := range analyses {
		assert.Equal(t, float64(i)*2.0, analysis.Timestamp)
	}

	require.Len(t, moments, 2)
	assert.Greater(t, moments[0].ViralScore, moments[1].ViralScore)
}
