package serializer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/types"
)

const home = "/home/ana"

func TestWriteFormat(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := New(mem, "", home)

	err := s.Write("/links", []types.LinkRecord{
		{LocalPath: "target", LinkPath: "~/target-link"},
		{LocalPath: "subdir/target", LinkPath: "/search/subdir/link"},
	})
	require.NoError(t, err)

	content, err := afero.ReadFile(mem, "/links")
	require.NoError(t, err)
	assert.Equal(t, "target\t~/target-link\nsubdir/target\t/search/subdir/link\n", string(content))
}

func TestWriteTruncates(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/links", []byte("old\t~/old\nmore\t~/more\n"), 0644))

	s := New(mem, "\t", home)
	require.NoError(t, s.Write("/links", []types.LinkRecord{{LocalPath: "new", LinkPath: "~/new"}}))

	content, err := afero.ReadFile(mem, "/links")
	require.NoError(t, err)
	assert.Equal(t, "new\t~/new\n", string(content))
}

func TestWriteRejectsReadOnlyFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/links", []byte("keep\t~/keep\n"), 0444))

	s := New(mem, "\t", home)
	err := s.Write("/links", []types.LinkRecord{{LocalPath: "new", LinkPath: "~/new"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))

	// Not truncated
	content, err := afero.ReadFile(mem, "/links")
	require.NoError(t, err)
	assert.Equal(t, "keep\t~/keep\n", string(content))
}

func TestWriteEmpty(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := New(mem, "\t", home)

	require.NoError(t, s.Write("/links", nil))
	content, err := afero.ReadFile(mem, "/links")
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestReadExpandsPlaceholder(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/links",
		[]byte("target\t~/target-link\nsubdir/target\t/search/subdir/link\n"), 0644))

	s := New(mem, "\t", home)
	records, err := s.Read("/links")
	require.NoError(t, err)

	assert.Equal(t, []types.LinkRecord{
		{LocalPath: "target", LinkPath: "/home/ana/target-link"},
		{LocalPath: "subdir/target", LinkPath: "/search/subdir/link"},
	}, records)
}

func TestReadSkipsBlankLinesAndHandlesCRLF(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/links", []byte("\na\t~/a\r\n   \nb\t~/b"), 0644))

	s := New(mem, "\t", home)
	records, err := s.Read("/links")
	require.NoError(t, err)
	assert.Equal(t, []types.LinkRecord{
		{LocalPath: "a", LinkPath: "/home/ana/a"},
		{LocalPath: "b", LinkPath: "/home/ana/b"},
	}, records)
}

func TestReadMalformedLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{"single field", "good\t~/good\nonly-one-field\n", 2},
		{"three fields", "a\tb\tc\n", 1},
		{"wrong separator", "a|~/a\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(mem, "/links", []byte(tt.content), 0644))

			_, err := New(mem, "\t", home).Read("/links")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRecord))
			assert.Equal(t, tt.wantLine, errors.GetErrorDetails(err)["line"])
		})
	}
}

func TestReadLongLines(t *testing.T) {
	long := strings.Repeat("x", 100*1024)

	t.Run("within limit", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		content := "a\t~/a\n" + long + "\t~/long\n"
		require.NoError(t, afero.WriteFile(mem, "/links", []byte(content), 0644))

		records, err := New(mem, "\t", home).Read("/links")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, long, records[1].LocalPath)
	})

	t.Run("over limit", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		content := "a\t~/a\n" + strings.Repeat("x", MaxLineLength+1) + "\t~/long\n"
		require.NoError(t, afero.WriteFile(mem, "/links", []byte(content), 0644))

		_, err := New(mem, "\t", home).Read("/links")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRecord))
		assert.Equal(t, 2, errors.GetErrorDetails(err)["line"])
	})
}

func TestReadMissingFile(t *testing.T) {
	_, err := New(afero.NewMemMapFs(), "\t", home).Read("/links")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestReadUnreadableFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/links", []byte("a\t~/a\n"), 0200))

	_, err := New(mem, "\t", home).Read("/links")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))
}

func TestRoundTrip(t *testing.T) {
	records := []types.LinkRecord{
		{LocalPath: "zsh/zshrc", LinkPath: "~/.zshrc"},
		{LocalPath: "nvim", LinkPath: "~/.config/nvim"},
		{LocalPath: "hosts", LinkPath: "/etc/hosts.d/local"},
		{LocalPath: "with space", LinkPath: "~/dir with space/link"},
	}

	for _, sep := range []string{"\t", "|", ";"} {
		t.Run("separator "+sep, func(t *testing.T) {
			s := New(afero.NewMemMapFs(), sep, home)

			var buf bytes.Buffer
			require.NoError(t, s.Encode(&buf, records))

			got, err := s.Decode(&buf)
			require.NoError(t, err)

			want := make([]types.LinkRecord, len(records))
			for i, r := range records {
				want[i] = types.LinkRecord{
					LocalPath: r.LocalPath,
					LinkPath:  strings.Replace(r.LinkPath, "~", home, 1),
				}
			}
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestWriteReadOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links")
	s := New(afero.NewOsFs(), "\t", home)

	require.NoError(t, s.Write(path, []types.LinkRecord{{LocalPath: "vimrc", LinkPath: "~/.vimrc"}}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	records, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []types.LinkRecord{{LocalPath: "vimrc", LinkPath: "/home/ana/.vimrc"}}, records)
}
