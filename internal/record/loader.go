// Package record 从文件或流中读取简历数据
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-preview/internal/logger"
	"resume-preview/internal/tracing"
	"resume-preview/internal/types"

	"github.com/BurntSushi/toml"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

// Format 简历数据文件格式
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat 无法识别的文件格式
var ErrUnsupportedFormat = errors.New("unsupported record format")

var tracer = otel.Tracer("resume-preview/record")

// FormatFromPath 根据扩展名判断文件格式
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode 从 reader 中按指定格式解析简历数据
func Decode(r io.Reader, format Format) (*types.Resume, error) {
	var resume types.Resume
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&resume); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("解析YAML失败: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&resume); err != nil {
			return nil, fmt.Errorf("解析JSON失败: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&resume); err != nil {
			return nil, fmt.Errorf("解析TOML失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &resume, nil
}

// LoadFile 读取简历数据文件。
// 熟练度超出 0-100 的技能只记录警告，数据保持原样。
func LoadFile(ctx context.Context, path string) (*types.Resume, error) {
	ctx, span := tracer.Start(ctx, "record.LoadFile")
	defer span.End()
	span.SetAttributes(attribute.String("record.path", path))

	format, err := FormatFromPath(path)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeIO)
		return nil, fmt.Errorf("打开简历数据文件失败: %w", err)
	}
	defer f.Close()

	resume, err := Decode(f, format)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeDecode)
		return nil, fmt.Errorf("读取 %s: %w", path, err)
	}

	for _, s := range resume.OutOfRangeSkills() {
		logger.Ctx(ctx).Warn().
			Str("skill", s.Name).
			Int("proficiency", s.Proficiency).
			Msg("技能熟练度超出0-100范围，将按原值渲染")
	}

	span.SetAttributes(
		attribute.String("record.format", string(format)),
		attribute.Int("resume.experiences", len(resume.Experiences)),
		attribute.Int("resume.skills", len(resume.Skills)),
	)
	logger.Ctx(ctx).Debug().
		Str("path", path).
		Str("format", string(format)).
		Str("name", tracing.MaskPII(resume.Name)).
		Msg("简历数据加载成功")

	return resume, nil
}
