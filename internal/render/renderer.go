// Package render 将简历数据渲染为预览页面。
//
// Renderer 输出带 Tailwind utility class 的 HTML，结构为：
// 页头(姓名/职位/简介/联系方式)、AI Assessment、Work Experience、Technical Skills。
// TextRenderer 输出同样结构的终端文本版本。
//
// 渲染是纯函数式的：不修改输入，不校验字段，缺失的字段渲染为空。
package render

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"resume-preview/internal/constants"
	"resume-preview/internal/logger"
	"resume-preview/internal/tracing"
	"resume-preview/internal/types"

	"github.com/gofrs/uuid/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	templateResume   = "resume"
	templateDocument = "document"
)

// ErrUnknownFormat 不支持的输出格式
var ErrUnknownFormat = errors.New("unknown output format")

// Theme 强调色，对应 Tailwind utility class
type Theme struct {
	Primary     string // 标题、职位文字颜色
	PrimaryBg   string // 进度条、时间轴圆点
	SecondaryBg string // AI分析卡片背景
	Border      string // 时间轴竖线
}

// DefaultTheme 默认蓝色主题
func DefaultTheme() Theme {
	return Theme{
		Primary:     constants.DefaultPrimaryClass,
		PrimaryBg:   constants.DefaultPrimaryBgClass,
		SecondaryBg: constants.DefaultSecondaryBgClass,
		Border:      constants.DefaultBorderClass,
	}
}

// Option Renderer 选项
type Option func(*Renderer)

// WithTheme 设置主题，空字段保留默认值
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		if theme.Primary != "" {
			r.theme.Primary = theme.Primary
		}
		if theme.PrimaryBg != "" {
			r.theme.PrimaryBg = theme.PrimaryBg
		}
		if theme.SecondaryBg != "" {
			r.theme.SecondaryBg = theme.SecondaryBg
		}
		if theme.Border != "" {
			r.theme.Border = theme.Border
		}
	}
}

// WithLang 设置完整文档的 <html lang>
func WithLang(lang string) Option {
	return func(r *Renderer) {
		if lang != "" {
			r.lang = lang
		}
	}
}

// WithTitleSuffix 设置完整文档 <title> 的后缀
func WithTitleSuffix(suffix string) Option {
	return func(r *Renderer) {
		r.titleSuffix = suffix
	}
}

// WithTailwindScript 设置完整文档中注入的 Tailwind 脚本地址，空串表示不注入
func WithTailwindScript(url string) Option {
	return func(r *Renderer) {
		r.scriptURL = url
	}
}

// Renderer HTML 渲染器。模板在创建时解析，之后只读，可并发使用。
type Renderer struct {
	tmpl        *template.Template
	theme       Theme
	lang        string
	titleSuffix string
	scriptURL   string
	tracer      trace.Tracer
}

// New 创建 HTML 渲染器
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		theme:     DefaultTheme(),
		lang:      constants.DefaultDocumentLang,
		scriptURL: constants.DefaultTailwindScriptURL,
		tracer:    otel.Tracer("resume-preview/render"),
	}
	for _, opt := range opts {
		opt(r)
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"section":    newSectionView,
		"experience": newExperienceView,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("解析模板失败: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Theme 返回当前使用的主题
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Render 将简历渲染为 HTML 片段(A4 容器及其内容)写入 w。
// resume 为 nil 时按空简历渲染。
func (r *Renderer) Render(ctx context.Context, w io.Writer, resume *types.Resume) error {
	return r.execute(ctx, w, templateResume, resume)
}

// RenderDocument 与 Render 相同，但包裹为完整的 HTML5 文档，可直接在浏览器中打开
func (r *Renderer) RenderDocument(ctx context.Context, w io.Writer, resume *types.Resume) error {
	return r.execute(ctx, w, templateDocument, resume)
}

// RenderString 渲染 HTML 片段并以字符串返回
func (r *Renderer) RenderString(ctx context.Context, resume *types.Resume) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(ctx, &buf, resume); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) execute(ctx context.Context, w io.Writer, name string, resume *types.Resume) error {
	ctx, span := r.tracer.Start(ctx, "render.Render")
	defer span.End()

	if resume == nil {
		resume = &types.Resume{}
	}

	renderID := ""
	if id, err := uuid.NewV7(); err == nil {
		renderID = id.String()
	} else {
		logger.Ctx(ctx).Warn().Err(err).Msg("生成渲染ID失败")
	}

	span.SetAttributes(
		attribute.String("render.id", renderID),
		attribute.String("render.template", name),
		attribute.String("resume.name", tracing.SafeAttributeValue("name", resume.Name, tracing.DefaultMaxLength)),
		attribute.String("resume.assessment", tracing.SafeResumeContent(resume.AIAssessment.Summary)),
		attribute.Int("resume.experiences", len(resume.Experiences)),
		attribute.Int("resume.skills", len(resume.Skills)),
	)

	page := &pageView{
		Resume:                resume,
		Theme:                 r.theme,
		RenderID:              renderID,
		Lang:                  r.lang,
		TitleSuffix:           r.titleSuffix,
		ScriptURL:             r.scriptURL,
		SectionAIAssessment:   constants.SectionAIAssessment,
		SectionWorkExperience: constants.SectionWorkExperience,
		SectionSkills:         constants.SectionSkills,
	}

	// 先写入缓冲区，模板出错时不输出半截内容
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, page); err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeRender)
		return fmt.Errorf("执行模板 %s 失败: %w", name, err)
	}

	n, err := w.Write(buf.Bytes())
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeIO)
		return fmt.Errorf("写入渲染结果失败: %w", err)
	}

	logger.Ctx(ctx).Debug().
		Str("render_id", renderID).
		Str("template", name).
		Str("name", tracing.MaskPII(resume.Name)).
		Int("experiences", len(resume.Experiences)).
		Int("skills", len(resume.Skills)).
		Int("bytes", n).
		Msg("简历渲染完成")
	return nil
}

// pageView 模板的顶层数据
type pageView struct {
	Resume   *types.Resume
	Theme    Theme
	RenderID string

	Lang        string
	TitleSuffix string
	ScriptURL   string

	SectionAIAssessment   string
	SectionWorkExperience string
	SectionSkills         string
}

// sectionView 通用章节：标题 + 按 Kind 选择的内容块
type sectionView struct {
	Title string
	Kind  string
	Page  *pageView
}

func newSectionView(title, kind string, page *pageView) sectionView {
	return sectionView{Title: title, Kind: kind, Page: page}
}

type experienceView struct {
	Experience types.Experience
	Theme      Theme
}

func newExperienceView(exp types.Experience, page *pageView) experienceView {
	return experienceView{Experience: exp, Theme: page.Theme}
}
