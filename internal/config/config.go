package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"resume-preview/internal/constants"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	// 日志配置
	Logger LoggerConfig `yaml:"logger"`

	// 渲染配置
	Render RenderConfig `yaml:"render"`

	// 链路追踪配置
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
	File         string `yaml:"file"`          // 额外写入的日志文件，空则只输出到控制台
}

// RenderConfig 渲染相关配置
type RenderConfig struct {
	Format            string      `yaml:"format"`              // html, text
	Fragment          bool        `yaml:"fragment"`            // 只输出组件本身，不包裹完整HTML文档
	Lang              string      `yaml:"lang"`                // <html lang="...">
	TitleSuffix       string      `yaml:"title_suffix"`        // <title> 后缀，例如 " - Resume"
	TailwindScriptURL string      `yaml:"tailwind_script_url"` // 为空则不注入脚本
	TextBarWidth      int         `yaml:"text_bar_width"`      // 终端进度条宽度(字符)
	Theme             ThemeConfig `yaml:"theme"`
}

// ThemeConfig 主题色配置，值为 Tailwind utility class
type ThemeConfig struct {
	Primary     string `yaml:"primary"`
	PrimaryBg   string `yaml:"primary_bg"`
	SecondaryBg string `yaml:"secondary_bg"`
	Border      string `yaml:"border"`
}

// TracingConfig OpenTelemetry 配置
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"` // OTLP gRPC 地址, 例如 "localhost:4317"
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"` // 0-1，<=0 时使用 1
}

// LoadConfig 从文件加载配置。
// configPath 为空或文件不存在时返回默认配置，随后应用环境变量覆盖。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findConfigFile()
	}

	config := createDefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		} else if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	applyEnvOverrides(config)
	applyDefaults(config)
	return config, nil
}

// LoadConfigFromFileOnly 从文件加载配置，不尝试从环境变量覆盖
func LoadConfigFromFileOnly(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("必须提供配置文件路径")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

// findConfigFile 在常见位置查找配置文件，找不到返回空串
func findConfigFile() string {
	searchPaths := []string{
		"config.yaml",
		filepath.Join("internal", "config", "config.yaml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".resume-preview", "config.yaml"))
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// applyEnvOverrides 从环境变量覆盖配置（如果存在）
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("RESUME_PREVIEW_LOG_LEVEL"); v != "" {
		config.Logger.Level = strings.ToLower(v)
	}
	if v := os.Getenv("RESUME_PREVIEW_FORMAT"); v != "" {
		config.Render.Format = strings.ToLower(v)
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		config.Tracing.Endpoint = v
		config.Tracing.Enabled = true
	}
	if v := os.Getenv("RESUME_PREVIEW_TRACING_SAMPLE_RATIO"); v != "" {
		if ratio, err := strconv.ParseFloat(v, 64); err == nil {
			config.Tracing.SampleRatio = ratio
		}
	}
}

// applyDefaults 补全未设置的字段
func applyDefaults(config *Config) {
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "pretty"
	}
	if config.Render.Format == "" {
		config.Render.Format = constants.FormatHTML
	}
	if config.Render.Lang == "" {
		config.Render.Lang = constants.DefaultDocumentLang
	}
	if config.Render.TextBarWidth <= 0 {
		config.Render.TextBarWidth = constants.DefaultTextBarWidth
	}
	if config.Render.Theme.Primary == "" {
		config.Render.Theme.Primary = constants.DefaultPrimaryClass
	}
	if config.Render.Theme.PrimaryBg == "" {
		config.Render.Theme.PrimaryBg = constants.DefaultPrimaryBgClass
	}
	if config.Render.Theme.SecondaryBg == "" {
		config.Render.Theme.SecondaryBg = constants.DefaultSecondaryBgClass
	}
	if config.Render.Theme.Border == "" {
		config.Render.Theme.Border = constants.DefaultBorderClass
	}
	if config.Tracing.SampleRatio <= 0 || config.Tracing.SampleRatio > 1 {
		config.Tracing.SampleRatio = 1
	}
}

// 创建一个默认配置
func createDefaultConfig() *Config {
	config := &Config{}

	// 日志默认配置
	config.Logger.Level = "info"
	config.Logger.Format = "pretty"
	config.Logger.TimeFormat = "15:04:05"
	config.Logger.ReportCaller = false

	// 渲染默认配置
	config.Render.Format = constants.FormatHTML
	config.Render.Fragment = false
	config.Render.Lang = constants.DefaultDocumentLang
	config.Render.TitleSuffix = " - Resume"
	config.Render.TailwindScriptURL = constants.DefaultTailwindScriptURL
	config.Render.TextBarWidth = constants.DefaultTextBarWidth
	config.Render.Theme = ThemeConfig{
		Primary:     constants.DefaultPrimaryClass,
		PrimaryBg:   constants.DefaultPrimaryBgClass,
		SecondaryBg: constants.DefaultSecondaryBgClass,
		Border:      constants.DefaultBorderClass,
	}

	// 追踪默认关闭
	config.Tracing.Enabled = false
	config.Tracing.Insecure = true
	config.Tracing.SampleRatio = 1

	return config
}

// CreateSampleConfig 创建一个示例配置文件
func CreateSampleConfig(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("文件 '%s' 已存在，不会覆盖", filePath)
	}

	data, err := yaml.Marshal(createDefaultConfig())
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("写入示例配置文件 '%s' 失败: %w", filePath, err)
	}
	return nil
}
