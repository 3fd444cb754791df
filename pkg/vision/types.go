package vision

import (
	"context"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
)

// Service 定义了视觉分析服务的接口，真实实现与Mock实现可互换
type Service interface {
	// AnalyzeImage 分析单帧图片，prompt为空时使用默认分析提示词，
	// timestamp为该帧在视频中的时间点
	AnalyzeImage(ctx context.Context, imagePath string, prompt string, timestamp float64) (*models.SceneAnalysis, error)

	// AnalyzeVideoFrames 按顺序逐帧分析视频帧，输出顺序与输入顺序一致，
	// 第i帧的时间点为 i*frameInterval
	AnalyzeVideoFrames(ctx context.Context, framePaths []string, prompt string, frameInterval float64) ([]models.SceneAnalysis, error)

	// DetectViralMoments 基于帧分析结果（和可选的转写文本）检测高传播潜力片段
	DetectViralMoments(ctx context.Context, analyses []models.SceneAnalysis, transcript string) ([]models.ViralMoment, error)

	// CheckCompliance 检查帧是否存在播出合规问题
	// 单帧分析失败时记录日志并跳过，不中断整批检查
	CheckCompliance(ctx context.Context, framePaths []string, transcript string) ([]models.ComplianceIssue, error)
}
