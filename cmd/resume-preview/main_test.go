package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"resume-preview/internal/config"
	"resume-preview/internal/record"
	"resume-preview/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingConfig 返回一个不存在的配置路径，使用默认配置
func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.yaml")
}

func TestRunSampleDocument(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-c", missingConfig(t), "-f", "html"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "<!DOCTYPE html>")
	assert.Contains(t, out.String(), "高山 徹 (Toru Takayama)")
}

func TestRunFragmentFromFile(t *testing.T) {
	var out bytes.Buffer
	input := filepath.Join("..", "..", "internal", "record", "testdata", "sample.json")
	err := run(context.Background(), []string{"-c", missingConfig(t), "-f", "html", "--fragment", "-i", input}, &out)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "<!DOCTYPE html>")
	assert.Contains(t, out.String(), `style="width: 80%"`)
}

func TestRunTextToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "preview.txt")
	var out bytes.Buffer
	err := run(context.Background(), []string{"-c", missingConfig(t), "--format", "text", "-o", dest}, &out)
	require.NoError(t, err)
	assert.Empty(t, out.String(), "指定输出文件时不写stdout")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TECHNICAL SKILLS")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-c", missingConfig(t), "-f", "pdf"}, &out)
	assert.ErrorIs(t, err, render.ErrUnknownFormat)

	err = run(context.Background(), []string{"-c", missingConfig(t), "-f", "html", "-i", "resume.docx"}, &out)
	assert.ErrorIs(t, err, record.ErrUnsupportedFormat)

	err = run(context.Background(), []string{"--no-such-flag"}, &out)
	assert.Error(t, err)
}

func TestRunSampleConfig(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "config.yaml")
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--sample-config", dest}, &out))
	assert.Contains(t, out.String(), dest)

	cfg, err := config.LoadConfigFromFileOnly(dest)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Render.Format)
}
