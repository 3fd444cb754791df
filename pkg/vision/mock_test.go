package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockAnalyzeVideoFramesOrder(t *testing.T) {
	service := &MockVisionService{Delay: 0}

	frames := []string{"f0.jpg", "f1.jpg", "f2.jpg", "f3.jpg", "f4.jpg", "f5.jpg"}
	analyses, err := service.AnalyzeVideoFrames(context.Background(), frames, "", 1.0)
	require.NoError(t, err)

	require.Len(t, analyses, len(frames))
	// 输出顺序与输入一致，时间点严格递增
	for i, analysis := range analyses {
		assert.Equal(t, float64(i)*5.0, analysis.Timestamp)
	}
	// 场景循环使用
	assert.Equal(t, analyses[0].Description, analyses[5].Description)
}

func TestMockDetectViralMoments(t *testing.T) {
	service := &MockVisionService{Delay: 0}

	moments, err := service.DetectViralMoments(context.Background(), nil, "")
	require.NoError(t, err)

	require.Len(t, moments, 2)
	assert.Equal(t, 0.97, moments[0].ViralScore)
	assert.NotEmpty(t, moments[0].Hashtags)
	assert.Greater(t, moments[0].EndTime, moments[0].StartTime)
}

func TestMockCheckCompliance(t *testing.T) {
	service := &MockVisionService{Delay: 0}

	issues, err := service.CheckCompliance(context.Background(), []string{"f.jpg"}, "")
	require.NoError(t, err)

	require.Len(t, issues, 1)
	assert.Equal(t, "profanity", issues[0].IssueType)
	assert.Equal(t, "high", issues[0].Severity)
}
