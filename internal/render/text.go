package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"resume-preview/internal/constants"
	"resume-preview/internal/logger"
	"resume-preview/internal/tracing"
	"resume-preview/internal/types"

	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// 终端配色，与默认 HTML 主题对应 (blue-600 / gray-500 / gray-200)
var (
	textPrimary = lipgloss.Color("#2563EB")
	textMuted   = lipgloss.Color("#6B7280")
	textTrack   = lipgloss.Color("#E5E7EB")
)

const (
	barFilled = "█"
	barEmpty  = "░"
	timeline  = "│"
	dot       = "●"
	bullet    = "•"

	skillLabelWidth = 14
)

// TextOption TextRenderer 选项
type TextOption func(*TextRenderer)

// WithBarWidth 设置进度条宽度(字符数)
func WithBarWidth(width int) TextOption {
	return func(t *TextRenderer) {
		if width > 0 {
			t.barWidth = width
		}
	}
}

// TextRenderer 终端文本渲染器
type TextRenderer struct {
	barWidth int
	tracer   trace.Tracer
}

// NewTextRenderer 创建终端文本渲染器
func NewTextRenderer(opts ...TextOption) *TextRenderer {
	t := &TextRenderer{
		barWidth: constants.DefaultTextBarWidth,
		tracer:   otel.Tracer("resume-preview/render"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render 将简历渲染为终端文本写入 w。颜色是否输出由 w 是否为终端决定。
func (t *TextRenderer) Render(ctx context.Context, w io.Writer, resume *types.Resume) error {
	ctx, span := t.tracer.Start(ctx, "render.RenderText")
	defer span.End()

	if resume == nil {
		resume = &types.Resume{}
	}
	span.SetAttributes(
		attribute.Int("resume.experiences", len(resume.Experiences)),
		attribute.Int("resume.skills", len(resume.Skills)),
	)

	s := newTextStyles(lipgloss.NewRenderer(w))
	out := lipgloss.JoinVertical(lipgloss.Left,
		t.header(s, resume),
		"",
		t.section(s, constants.SectionAIAssessment, t.assessment(s, resume.AIAssessment)),
		"",
		t.section(s, constants.SectionWorkExperience, t.experiences(s, resume.Experiences)),
		"",
		t.section(s, constants.SectionSkills, t.skills(s, resume.Skills)),
	)

	if _, err := io.WriteString(w, out+"\n"); err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeIO)
		return fmt.Errorf("写入文本预览失败: %w", err)
	}
	logger.Ctx(ctx).Debug().
		Str("name", tracing.MaskPII(resume.Name)).
		Int("bar_width", t.barWidth).
		Msg("终端预览渲染完成")
	return nil
}

type textStyles struct {
	name    lipgloss.Style
	primary lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
	card    lipgloss.Style
	bold    lipgloss.Style
	italic  lipgloss.Style
	accent  lipgloss.Style
	track   lipgloss.Style
}

func newTextStyles(r *lipgloss.Renderer) textStyles {
	return textStyles{
		name:    r.NewStyle().Bold(true),
		primary: r.NewStyle().Foreground(textPrimary),
		muted:   r.NewStyle().Foreground(textMuted),
		heading: r.NewStyle().Bold(true).Foreground(textPrimary),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(textTrack).
			Padding(0, 1),
		bold:   r.NewStyle().Bold(true),
		italic: r.NewStyle().Italic(true),
		accent: r.NewStyle().Foreground(textPrimary),
		track:  r.NewStyle().Foreground(textTrack),
	}
}

func (t *TextRenderer) header(s textStyles, resume *types.Resume) string {
	contact := strings.Join([]string{
		resume.Contact.Email,
		resume.Contact.Phone,
		"GitHub: " + resume.Contact.GitHub,
	}, "  ")
	return lipgloss.JoinVertical(lipgloss.Left,
		s.name.Render(resume.Name),
		s.primary.Render(resume.Title),
		resume.Summary,
		s.muted.Render(contact),
	)
}

func (t *TextRenderer) section(s textStyles, title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, s.heading.Render(strings.ToUpper(title)), body)
}

func (t *TextRenderer) assessment(s textStyles, a types.AIAssessment) string {
	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.bold.Render(a.Title),
		s.italic.Render(a.Summary),
	))
}

func (t *TextRenderer) experiences(s textStyles, exps []types.Experience) string {
	blocks := make([]string, 0, len(exps))
	for _, exp := range exps {
		lines := []string{
			s.accent.Render(dot) + " " + s.muted.Render(exp.Duration),
			s.track.Render(timeline) + " " + s.bold.Render(exp.Company+" - "+exp.Role),
		}
		for _, item := range exp.Achievements {
			lines = append(lines, s.track.Render(timeline)+"   "+s.accent.Render(bullet)+" "+item)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n")
}

func (t *TextRenderer) skills(s textStyles, skills []types.Skill) string {
	rows := make([]string, 0, len(skills))
	for _, skill := range skills {
		filled := barCells(skill.Proficiency, t.barWidth)
		bar := s.accent.Render(strings.Repeat(barFilled, filled)) +
			s.track.Render(strings.Repeat(barEmpty, t.barWidth-filled))
		rows = append(rows, fmt.Sprintf("%s%s %s",
			padLabel(skill.Name, skillLabelWidth), bar, s.muted.Render(fmt.Sprintf("%d%%", skill.Proficiency))))
	}
	return strings.Join(rows, "\n")
}

// padLabel 按显示宽度右侧补空格，超长时至少保留一个空格
func padLabel(label string, width int) string {
	pad := width - lipgloss.Width(label)
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad)
}

// barCells 计算进度条填充的格数，结果限定在 [0, width]；显示的百分比保持原值
func barCells(proficiency, width int) int {
	cells := proficiency * width / 100
	if cells < 0 {
		return 0
	}
	if cells > width {
		return width
	}
	return cells
}
