package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger(utils.LogLevelQuiet, "")
	os.Exit(m.Run())
}

func twoSegments() []models.Segment {
	return []models.Segment{
		{Start: 0.0, End: 1.0, Text: "A", Language: "en"},
		{Start: 1.5, End: 2.5, Text: "B", Language: "en"},
	}
}

func TestGenerateSRTContentEmpty(t *testing.T) {
	assert.Equal(t, "", GenerateSRTContent(nil))
}

func TestGenerateVTTContentEmpty(t *testing.T) {
	assert.Equal(t, "WEBVTT\n\n", GenerateVTTContent(nil))
}

func TestGenerateSRTContent(t *testing.T) {
	content := GenerateSRTContent(twoSegments())

	expected := "1\n" +
		"00:00:00,000 --> 00:00:01,000\n" +
		"A\n\n" +
		"2\n" +
		"00:00:01,500 --> 00:00:02,500\n" +
		"B\n\n"
	assert.Equal(t, expected, content)
}

func TestGenerateVTTContent(t *testing.T) {
	content := GenerateVTTContent(twoSegments())

	assert.True(t, strings.HasPrefix(content, "WEBVTT\n\n"))
	assert.Contains(t, content, "00:00:00.000 --> 00:00:01.000")
	assert.Contains(t, content, "00:00:01.500 --> 00:00:02.500")
}

// 文本不做折行或长度截断
func TestGenerateSRTContentLongText(t *testing.T) {
	longText := strings.Repeat("很长的字幕文本 ", 100)
	segments := []models.Segment{{Start: 0, End: 5, Text: longText}}

	content := GenerateSRTContent(segments)
	assert.Contains(t, content, longText)
}

func TestSubtitleExporterExportFiles(t *testing.T) {
	outputDir := t.TempDir()
	exporter := NewSubtitleExporter(outputDir)

	result := models.NewTranscriptionResult(twoSegments(), "en", 2.5, "")

	srtPath, err := exporter.ExportSRT(result, "/media/news_clip.mp3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "news_clip.srt"), srtPath)

	data, err := os.ReadFile(srtPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "1\n00:00:00,000"))

	vttPath, err := exporter.ExportVTT(result, "/media/news_clip.mp3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "news_clip.vtt"), vttPath)

	data, err = os.ReadFile(vttPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "WEBVTT\n\n"))
}

// ExportText原样输出FullText，不从段落重新拼接
func TestSubtitleExporterExportText(t *testing.T) {
	outputDir := t.TempDir()
	exporter := NewSubtitleExporter(outputDir)

	result := models.NewTranscriptionResult(twoSegments(), "en", 2.5, "原始全文")

	textPath, err := exporter.ExportText(result, "clip.mp3")
	require.NoError(t, err)

	data, err := os.ReadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, "原始全文", string(data))
}

func TestJSONExporter(t *testing.T) {
	outputDir := t.TempDir()
	exporter := NewJSONExporter(outputDir)

	result := models.NewTranscriptionResult(twoSegments(), "en", 2.5, "")

	jsonPath, err := exporter.ExportJSON(result, "clip.mp3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "clip.json"), jsonPath)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"language": "en"`)
}
