package ui_test

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/arthur-debert/dotkeeper/pkg/ui"
	"github.com/arthur-debert/dotkeeper/pkg/ui/display"
)

func sampleResult() *display.Result {
	return &display.Result{
		Command:   "restore",
		Store:     "/store",
		LinksFile: "/store/links",
		Entries: []display.Entry{
			{LocalPath: "vimrc", LinkPath: "/home/u/.vimrc", Target: "/store/vimrc", Status: display.StatusCreated},
			{LocalPath: "zshrc", LinkPath: "/home/u/.zshrc", Target: "/store/zshrc", Status: display.StatusSkipped, Detail: "file"},
			{LocalPath: "gone", LinkPath: "/home/u/.gone", Target: "/store/gone", Status: display.StatusUnchanged, TargetMissing: true},
		},
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.FormatYAML, "yaml"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"terminal", ui.FormatTerminal, false},
		{"TEXT", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"yml", ui.FormatYAML, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "restore: /store/links")
	assert.Contains(t, out, "created     /home/u/.vimrc -> /store/vimrc")
	assert.Contains(t, out, "/home/u/.zshrc -> /store/zshrc (file)")
	assert.Contains(t, out, "[target missing]")
	assert.Contains(t, out, "1 created, 1 skipped, 1 unchanged")
}

func TestTextRendererDryRun(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	result := sampleResult()
	result.DryRun = true
	require.NoError(t, r.RenderResult(result))
	assert.Contains(t, buf.String(), "restore (dry run)")
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	result := sampleResult()
	result.DryRun = true
	require.NoError(t, r.RenderResult(result))

	out := buf.String()
	assert.Contains(t, out, "DRY RUN")
	assert.Contains(t, out, "/home/u/.vimrc")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "target missing")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleResult()))

	var decoded display.Result
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "restore", decoded.Command)
	require.Len(t, decoded.Entries, 3)
	assert.Equal(t, "file", decoded.Entries[1].Detail)
	assert.True(t, decoded.Entries[2].TargetMissing)
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleResult()))

	var decoded display.Result
	require.NoError(t, yamlv3.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/store/links", decoded.LinksFile)
	assert.Equal(t, "/home/u/.vimrc", decoded.Entries[0].LinkPath)
}

func TestRenderError(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatText, ui.FormatTerminal, ui.FormatJSON, ui.FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			r, err := ui.NewRenderer(format, &buf)
			require.NoError(t, err)
			require.NoError(t, r.RenderError(errors.New("boom")))
			assert.Contains(t, buf.String(), "boom")
		})
	}
}

func TestNewRendererAutoWithBuffer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestNewRendererUnknown(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}
