package record

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-preview/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMatchesSample(t *testing.T) {
	for _, name := range []string{"sample.yaml", "sample.json", "sample.toml"} {
		t.Run(name, func(t *testing.T) {
			resume, err := LoadFile(context.Background(), filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, types.SampleResume(), resume)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.yaml", FormatYAML},
		{"a.YML", FormatYAML},
		{"dir/a.json", FormatJSON},
		{"a.toml", FormatTOML},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := FormatFromPath("resume.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeMissingFields(t *testing.T) {
	// 缺失字段解析为零值，不报错
	resume, err := Decode(strings.NewReader(`{"name":"Only Name"}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "Only Name", resume.Name)
	assert.Empty(t, resume.Experiences)
	assert.Empty(t, resume.Skills)
	assert.Equal(t, types.Contact{}, resume.Contact)

	resume, err = Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err, "空YAML文档得到空简历")
	assert.Equal(t, &types.Resume{}, resume)
}

func TestDecodeKeepsOutOfRangeProficiency(t *testing.T) {
	doc := `
skills:
  - name: Go
    proficiency: 130
  - name: COBOL
    proficiency: -10
`
	resume, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, resume.Skills, 2)
	assert.Equal(t, 130, resume.Skills[0].Proficiency)
	assert.Equal(t, -10, resume.Skills[1].Proficiency)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("{"), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("name = "), FormatTOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("skills: [1, 2"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(""), Format("xml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(context.Background(), "resume.docx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"skills": "nope"}`), 0644))
	_, err = LoadFile(context.Background(), bad)
	assert.Error(t, err)
}
