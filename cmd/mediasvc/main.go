package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/ccp-p/broadcast-ai-cli/media-services/internal/controller"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/services"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

var (
	configFile  = flag.String("config", "", "配置文件路径")
	mediaFolder = flag.String("media", "", "媒体文件夹（覆盖配置）")
	outputDir   = flag.String("output", "", "输出目录（覆盖配置）")
	demoMode    = flag.Bool("demo", false, "强制使用演示模式")
	watchMode   = flag.Bool("watch", false, "启用文件夹监听模式")
	logLevel    = flag.String("log-level", "INFO", "日志级别 (VERBOSE, INFO, WARN)")
	logFile     = flag.String("log-file", "", "日志文件路径")
)

func main() {
	flag.Parse()

	// 加载.env中的API密钥等环境变量
	_ = godotenv.Load()

	if err := utils.InitLogger(*logLevel, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	printWelcome()

	config := loadConfig()

	provider, err := services.NewProvider(config)
	if err != nil {
		utils.Fatal("创建服务后端失败: %v", err)
	}

	pipeline := controller.NewPipeline(config, provider)
	ctx := context.Background()

	if config.WatchMode {
		runWatchMode(ctx, pipeline, config)
		return
	}

	runBatch(ctx, pipeline, config)
}

// loadConfig 加载配置并应用命令行覆盖
func loadConfig() *models.Config {
	config := models.NewDefaultConfig()

	if *configFile != "" {
		if err := config.LoadFromFile(*configFile); err != nil {
			utils.Warn("配置加载失败: %v，将使用默认配置", err)
		}
	}

	if *mediaFolder != "" {
		config.MediaFolder = *mediaFolder
	}
	if *outputDir != "" {
		config.OutputFolder = *outputDir
	}
	if *demoMode {
		config.DemoMode = true
	}
	if *watchMode {
		config.WatchMode = true
	}

	return config
}

// runBatch 一次性处理媒体文件夹中的所有文件
func runBatch(ctx context.Context, pipeline *controller.Pipeline, config *models.Config) {
	files, err := listMediaFiles(config.MediaFolder)
	if err != nil {
		utils.Fatal("扫描媒体目录失败: %v", err)
	}

	if len(files) == 0 {
		utils.Info("没有找到媒体文件，程序退出")
		return
	}

	fmt.Println("\n找到以下媒体文件:")
	fmt.Println("--------------------")
	for i, file := range files {
		fmt.Printf("%d. %s\n", i+1, filepath.Base(file))
	}
	fmt.Println("--------------------")

	for i, file := range files {
		fmt.Printf("\n[%d/%d] 处理文件: %s\n", i+1, len(files), filepath.Base(file))

		result, err := pipeline.ProcessMediaFile(ctx, file)
		if err != nil {
			color.Red("处理失败: %v", err)
			continue
		}

		color.Green("处理成功: %d个段落, 时长%.1f秒", result.SegmentCount, result.Duration)
		for format, path := range result.OutputFiles {
			fmt.Printf("  [%s] %s\n", format, path)
		}
		fmt.Printf("处理用时: %s\n", result.ProcessTime.Round(10*time.Millisecond))
	}

	fmt.Printf("\n共处理 %d 个文件，成功 %d，失败 %d\n",
		pipeline.Stats.TotalFiles, pipeline.Stats.SuccessfulFiles, pipeline.Stats.FailedFiles)
}

// runWatchMode 监听模式：阻塞运行直到收到退出信号
func runWatchMode(ctx context.Context, pipeline *controller.Pipeline, config *models.Config) {
	stop, err := pipeline.StartWatching(ctx)
	if err != nil {
		utils.Fatal("启动监听模式失败: %v", err)
	}
	defer stop()

	color.Cyan("监听模式已启动: %s (Ctrl+C退出)", config.MediaFolder)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\n收到退出信号，正在停止...")
}

// listMediaFiles 列出文件夹下的媒体文件
func listMediaFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".mp3", ".wav", ".m4a", ".mp4", ".mov", ".mkv":
			files = append(files, filepath.Join(folder, entry.Name()))
		}
	}
	return files, nil
}

// printWelcome 打印欢迎信息
func printWelcome() {
	color.Cyan("==================================")
	color.Cyan("  媒体AI服务工具")
	color.Cyan("  转写 / 配音 / 视觉分析")
	color.Cyan("==================================")
}
