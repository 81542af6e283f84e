package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-preview/internal/config"
	"resume-preview/internal/constants"
	"resume-preview/internal/logger"
	"resume-preview/internal/record"
	"resume-preview/internal/render"
	"resume-preview/internal/tracing"
	"resume-preview/internal/types"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		stop()
		logger.Fatal().Err(err).Msg("简历预览失败")
	}
}

type options struct {
	configPath   string
	input        string
	output       string
	format       string
	fragment     bool
	sampleConfig string
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	opts := &options{}
	flags := pflag.NewFlagSet(constants.ServiceName, pflag.ContinueOnError)
	flags.StringVarP(&opts.configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	flags.StringVarP(&opts.input, "input", "i", "", "Resume file (.yaml/.yml/.json/.toml), built-in sample when empty")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file, stdout when empty")
	flags.StringVarP(&opts.format, "format", "f", constants.FormatHTML, "Output format: html or text")
	flags.BoolVar(&opts.fragment, "fragment", false, "Write the component only, without the HTML document wrapper")
	flags.StringVar(&opts.sampleConfig, "sample-config", "", "Write a sample config file to the given path and exit")
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, flags, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	if opts.sampleConfig != "" {
		if err := config.CreateSampleConfig(opts.sampleConfig); err != nil {
			return fmt.Errorf("生成示例配置失败: %w", err)
		}
		fmt.Fprintf(stdout, "示例配置已写入 %s\n", opts.sampleConfig)
		return nil
	}

	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("加载 .env 失败: %w", err)
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	// 显式传入的命令行参数优先于配置文件和环境变量
	if flags.Changed("format") {
		cfg.Render.Format = opts.format
	}
	if flags.Changed("fragment") {
		cfg.Render.Fragment = opts.fragment
	}

	logCloser, err := logger.Init(logger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
		File:         cfg.Logger.File,
	})
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}
	ctx = logger.WithContext(ctx)

	shutdown, err := tracing.InitProvider(ctx, cfg.Tracing, constants.ServiceName, constants.ServiceVersion)
	if err != nil {
		return fmt.Errorf("初始化链路追踪失败: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("关闭链路追踪失败")
		}
	}()

	previewer, err := render.NewPreviewer(cfg.Render)
	if err != nil {
		return err
	}

	resume, err := loadResume(ctx, opts.input)
	if err != nil {
		return err
	}

	out := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("创建输出文件失败: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := previewer.Write(ctx, out, resume); err != nil {
		return err
	}

	logger.Info().
		Str("format", previewer.Format()).
		Bool("fragment", cfg.Render.Fragment).
		Str("input", displayName(opts.input, "sample")).
		Str("output", displayName(opts.output, "stdout")).
		Msg("简历预览已生成")
	return nil
}

func loadResume(ctx context.Context, path string) (*types.Resume, error) {
	if path == "" {
		logger.Debug().Msg("未指定输入文件，使用内置示例简历")
		return types.SampleResume(), nil
	}
	resume, err := record.LoadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("加载简历失败: %w", err)
	}
	return resume, nil
}

func displayName(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
