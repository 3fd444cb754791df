package controller

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ccp-p/broadcast-ai-cli/media-services/internal/ui"
	"github.com/ccp-p/broadcast-ai-cli/media-services/internal/watcher"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/export"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/services"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

// 监听模式下关注的媒体文件扩展名
var mediaExtensions = []string{".mp3", ".wav", ".m4a", ".mp4", ".mov", ".mkv"}

// TaskResult 单个媒体文件的处理结果
type TaskResult struct {
	TaskID       string            // 任务ID
	MediaPath    string            // 媒体文件路径
	OutputFiles  map[string]string // 输出文件路径（格式 -> 路径）
	SegmentCount int               // 转写段落数
	Duration     float64           // 音频时长（秒）
	ProcessTime  time.Duration     // 处理耗时
}

// Pipeline 媒体处理管线，协调转写、导出与视觉分析
type Pipeline struct {
	Config   *models.Config
	Provider *services.Provider

	subtitleExporter *export.SubtitleExporter
	jsonExporter     *export.JSONExporter

	mediaWatcher *watcher.MediaWatcher

	// 统计数据
	mu    sync.Mutex
	Stats struct {
		TotalFiles      int
		SuccessfulFiles int
		FailedFiles     int
	}
}

// NewPipeline 创建媒体处理管线
func NewPipeline(config *models.Config, provider *services.Provider) *Pipeline {
	return &Pipeline{
		Config:           config,
		Provider:         provider,
		subtitleExporter: export.NewSubtitleExporter(config.OutputFolder),
		jsonExporter:     export.NewJSONExporter(config.OutputFolder),
	}
}

// ProcessMediaFile 处理单个媒体文件：转写并按配置导出
func (p *Pipeline) ProcessMediaFile(ctx context.Context, mediaPath string) (*TaskResult, error) {
	taskID := uuid.NewString()
	startTime := time.Now()

	utils.WithFields(map[string]interface{}{
		"task_id": taskID,
		"file":    mediaPath,
	}).Info("开始处理媒体文件")

	p.mu.Lock()
	p.Stats.TotalFiles++
	p.mu.Unlock()

	result, err := p.Provider.Transcription.Transcribe(ctx, mediaPath, "")
	if err != nil {
		p.recordFailure()
		return nil, err
	}

	outputFiles := make(map[string]string)

	textPath, err := p.subtitleExporter.ExportText(result, mediaPath)
	if err != nil {
		p.recordFailure()
		return nil, err
	}
	outputFiles["txt"] = textPath

	// 字幕与JSON导出失败不中断任务，记录警告即可
	if p.Config.ExportSRT && len(result.Segments) > 0 {
		if srtPath, err := p.subtitleExporter.ExportSRT(result, mediaPath); err != nil {
			utils.Warn("导出SRT字幕失败: %v", err)
		} else {
			outputFiles["srt"] = srtPath
		}
	}
	if p.Config.ExportVTT && len(result.Segments) > 0 {
		if vttPath, err := p.subtitleExporter.ExportVTT(result, mediaPath); err != nil {
			utils.Warn("导出VTT字幕失败: %v", err)
		} else {
			outputFiles["vtt"] = vttPath
		}
	}
	if p.Config.ExportJSON {
		if jsonPath, err := p.jsonExporter.ExportJSON(result, mediaPath); err != nil {
			utils.Warn("导出JSON文件失败: %v", err)
		} else {
			outputFiles["json"] = jsonPath
		}
	}

	p.mu.Lock()
	p.Stats.SuccessfulFiles++
	p.mu.Unlock()

	return &TaskResult{
		TaskID:       taskID,
		MediaPath:    mediaPath,
		OutputFiles:  outputFiles,
		SegmentCount: len(result.Segments),
		Duration:     result.Duration,
		ProcessTime:  time.Since(startTime),
	}, nil
}

// AnalyzeFrames 逐帧视觉分析并检测传播潜力片段
// 帧按输入顺序逐一分析，结果顺序与输入一致
func (p *Pipeline) AnalyzeFrames(ctx context.Context, framePaths []string, transcript string) ([]models.SceneAnalysis, []models.ViralMoment, error) {
	progress := ui.NewProgressBar(len(framePaths)+1, "帧分析")

	analyses := make([]models.SceneAnalysis, 0, len(framePaths))
	for i, path := range framePaths {
		timestamp := float64(i) * p.Config.FrameInterval
		analysis, err := p.Provider.Vision.AnalyzeImage(ctx, path, "", timestamp)
		if err != nil {
			return nil, nil, err
		}
		analyses = append(analyses, *analysis)
		progress.Increment(path)
	}

	moments, err := p.Provider.Vision.DetectViralMoments(ctx, analyses, transcript)
	if err != nil {
		return nil, nil, err
	}
	progress.Complete("完成")

	return analyses, moments, nil
}

// StartWatching 启动监听模式：媒体文件夹出现新文件后自动转写
// 返回停止函数
func (p *Pipeline) StartWatching(ctx context.Context) (func(), error) {
	mediaWatcher, err := watcher.NewMediaWatcher(
		p.Config.MediaFolder,
		mediaExtensions,
		func(filePath string) {
			if _, err := p.ProcessMediaFile(ctx, filePath); err != nil {
				utils.Error("处理新媒体文件失败: %s: %v", filePath, err)
			}
		},
		2*time.Second,
	)
	if err != nil {
		return nil, err
	}

	if err := mediaWatcher.Start(); err != nil {
		return nil, err
	}

	p.mediaWatcher = mediaWatcher
	return mediaWatcher.Stop, nil
}

// recordFailure 记录失败统计
func (p *Pipeline) recordFailure() {
	p.mu.Lock()
	p.Stats.FailedFiles++
	p.mu.Unlock()
}
