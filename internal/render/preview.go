package render

import (
	"context"
	"fmt"
	"io"

	"resume-preview/internal/config"
	"resume-preview/internal/constants"
	"resume-preview/internal/types"
)

// Previewer 按配置选择输出格式(html 文档 / html 片段 / 终端文本)
type Previewer struct {
	format   string
	fragment bool
	html     *Renderer
	text     *TextRenderer
}

// NewPreviewer 根据渲染配置创建 Previewer
func NewPreviewer(cfg config.RenderConfig) (*Previewer, error) {
	switch cfg.Format {
	case constants.FormatHTML, constants.FormatText:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	html, err := New(
		WithTheme(Theme{
			Primary:     cfg.Theme.Primary,
			PrimaryBg:   cfg.Theme.PrimaryBg,
			SecondaryBg: cfg.Theme.SecondaryBg,
			Border:      cfg.Theme.Border,
		}),
		WithLang(cfg.Lang),
		WithTitleSuffix(cfg.TitleSuffix),
		WithTailwindScript(cfg.TailwindScriptURL),
	)
	if err != nil {
		return nil, err
	}

	return &Previewer{
		format:   cfg.Format,
		fragment: cfg.Fragment,
		html:     html,
		text:     NewTextRenderer(WithBarWidth(cfg.TextBarWidth)),
	}, nil
}

// Format 返回输出格式
func (p *Previewer) Format() string {
	return p.format
}

// Write 渲染简历并写入 w
func (p *Previewer) Write(ctx context.Context, w io.Writer, resume *types.Resume) error {
	switch {
	case p.format == constants.FormatText:
		return p.text.Render(ctx, w, resume)
	case p.fragment:
		return p.html.Render(ctx, w, resume)
	default:
		return p.html.RenderDocument(ctx, w, resume)
	}
}
