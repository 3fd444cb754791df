package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

// GenerateSRTContent 生成SRT格式字幕内容
// 每个段落输出：序号、时间范围、文本、空行。不对文本做折行或截断
func GenerateSRTContent(segments []models.Segment) string {
	var sb strings.Builder

	for i, segment := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", FormatSRTTime(segment.Start), FormatSRTTime(segment.End)))
		sb.WriteString(segment.Text)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// GenerateVTTContent 生成WebVTT格式字幕内容
// 以 WEBVTT 头和空行开始，段落布局与SRT一致，时间分隔符为点号
func GenerateVTTContent(segments []models.Segment) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	for i, segment := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", FormatVTTTime(segment.Start), FormatVTTTime(segment.End)))
		sb.WriteString(segment.Text)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// SubtitleExporter 负责将转写结果导出为字幕文件
type SubtitleExporter struct {
	OutputFolder string
}

// NewSubtitleExporter 创建一个新的字幕导出器
func NewSubtitleExporter(outputFolder string) *SubtitleExporter {
	return &SubtitleExporter{
		OutputFolder: outputFolder,
	}
}

// ExportSRT 导出SRT格式字幕文件
func (e *SubtitleExporter) ExportSRT(result *models.TranscriptionResult, mediaPath string) (string, error) {
	outputFile, err := e.buildOutputPath(mediaPath, ".srt")
	if err != nil {
		return "", err
	}

	content := GenerateSRTContent(result.Segments)
	if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("写入SRT文件失败: %w", err)
	}

	utils.Info("已导出SRT字幕: %s", outputFile)
	return outputFile, nil
}

// ExportVTT 导出WebVTT格式字幕文件
func (e *SubtitleExporter) ExportVTT(result *models.TranscriptionResult, mediaPath string) (string, error) {
	outputFile, err := e.buildOutputPath(mediaPath, ".vtt")
	if err != nil {
		return "", err
	}

	content := GenerateVTTContent(result.Segments)
	if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("写入VTT文件失败: %w", err)
	}

	utils.Info("已导出VTT字幕: %s", outputFile)
	return outputFile, nil
}

// ExportText 导出纯文本转写内容（原样输出FullText，不重新拼接）
func (e *SubtitleExporter) ExportText(result *models.TranscriptionResult, mediaPath string) (string, error) {
	outputFile, err := e.buildOutputPath(mediaPath, ".txt")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFile, []byte(result.ToPlainText()), 0644); err != nil {
		return "", fmt.Errorf("写入文本文件失败: %w", err)
	}

	utils.Info("已导出转写文本: %s", outputFile)
	return outputFile, nil
}

// buildOutputPath 根据媒体文件名构建输出路径
func (e *SubtitleExporter) buildOutputPath(mediaPath, ext string) (string, error) {
	if err := os.MkdirAll(e.OutputFolder, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	baseName := filepath.Base(mediaPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	return filepath.Join(e.OutputFolder, baseName+ext), nil
}
