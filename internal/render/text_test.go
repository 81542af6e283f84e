package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"resume-preview/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderText(t *testing.T, r *TextRenderer, resume *types.Resume) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, resume))
	return buf.String()
}

func TestTextRenderSample(t *testing.T) {
	sample := types.SampleResume()
	out := renderText(t, NewTextRenderer(), sample)

	for _, want := range []string{
		sample.Name,
		sample.Title,
		sample.Contact.Email,
		"GitHub: " + sample.Contact.GitHub,
		"AI ASSESSMENT",
		"WORK EXPERIENCE",
		"TECHNICAL SKILLS",
		sample.AIAssessment.Title,
		sample.Experiences[0].Duration,
		"株式会社 AI-Drive - リードエンジニア / PM",
	} {
		assert.Contains(t, out, want)
	}
	for _, a := range sample.Experiences[0].Achievements {
		assert.Contains(t, out, a)
	}
	for _, s := range sample.Skills {
		assert.Contains(t, out, s.Name)
	}

	// 章节顺序
	assess := strings.Index(out, "AI ASSESSMENT")
	work := strings.Index(out, "WORK EXPERIENCE")
	skills := strings.Index(out, "TECHNICAL SKILLS")
	assert.True(t, assess < work && work < skills)
}

func TestTextRenderBulletsPerAchievement(t *testing.T) {
	resume := &types.Resume{Experiences: []types.Experience{
		{Company: "A", Achievements: []string{"a1"}},
		{Company: "B", Achievements: []string{"b1", "b2", "b3"}},
		{Company: "C"},
	}}
	out := renderText(t, NewTextRenderer(), resume)
	assert.Equal(t, resume.AchievementCount(), strings.Count(out, bullet))
	assert.Equal(t, len(resume.Experiences), strings.Count(out, dot))
}

func TestTextRenderSkillBars(t *testing.T) {
	out := renderText(t, NewTextRenderer(WithBarWidth(10)), &types.Resume{Skills: []types.Skill{
		{Name: "Go", Proficiency: 70},
		{Name: "Over", Proficiency: 150},
		{Name: "Under", Proficiency: -20},
	}})

	assert.Contains(t, out, strings.Repeat(barFilled, 7))
	assert.Contains(t, out, strings.Repeat(barFilled, 10))
	assert.NotContains(t, out, strings.Repeat(barFilled, 11), "绘制的格数不超过进度条宽度")
	assert.Contains(t, out, strings.Repeat(barEmpty, 10))

	// 显示的百分比保持原值
	assert.Contains(t, out, "70%")
	assert.Contains(t, out, "150%")
	assert.Contains(t, out, "-20%")
}

func TestTextRenderNil(t *testing.T) {
	out := renderText(t, NewTextRenderer(), nil)
	assert.Contains(t, out, "TECHNICAL SKILLS")
	assert.Zero(t, strings.Count(out, bullet))
	assert.NotContains(t, out, barFilled)
}

func TestTextRenderWriterError(t *testing.T) {
	err := NewTextRenderer().Render(context.Background(), failingWriter{}, types.SampleResume())
	assert.Error(t, err)
}

func TestWithBarWidthIgnoresNonPositive(t *testing.T) {
	assert.Equal(t, 20, NewTextRenderer(WithBarWidth(0)).barWidth)
	assert.Equal(t, 20, NewTextRenderer(WithBarWidth(-3)).barWidth)
	assert.Equal(t, 30, NewTextRenderer(WithBarWidth(30)).barWidth)
}

func TestBarCells(t *testing.T) {
	tests := []struct {
		proficiency, width, want int
	}{
		{0, 20, 0},
		{50, 20, 10},
		{95, 20, 19},
		{100, 20, 20},
		{99, 10, 9},
		{150, 20, 20},
		{-5, 20, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, barCells(tt.proficiency, tt.width), "proficiency=%d width=%d", tt.proficiency, tt.width)
	}
}

func TestPadLabel(t *testing.T) {
	assert.Equal(t, "Go   ", padLabel("Go", 5))
	assert.Equal(t, "TypeScript ", padLabel("TypeScript", 4))
	assert.Equal(t, "日本語  ", padLabel("日本語", 8))
}
