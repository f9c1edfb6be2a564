// Package serializer reads and writes the record file: one
// "local<SEP>link" line per record.
package serializer

import (
	"bufio"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/filesystem"
	"github.com/arthur-debert/dotkeeper/pkg/paths"
	"github.com/arthur-debert/dotkeeper/pkg/types"
)

// DefaultSeparator delimits the two fields of a record line.
const DefaultSeparator = "\t"

// MaxLineLength bounds a single record line when decoding.
const MaxLineLength = 1 << 20

// Serializer encodes records with a fixed separator and home directory.
type Serializer struct {
	fs        afero.Fs
	separator string
	home      string
}

// New creates a Serializer. An empty separator selects DefaultSeparator.
func New(fsys afero.Fs, separator, home string) *Serializer {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Serializer{fs: fsys, separator: separator, home: home}
}

// Encode writes one line per record. Records are expected to carry
// portable paths already.
func (s *Serializer) Encode(w io.Writer, records []types.LinkRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := bw.WriteString(r.LocalPath + s.separator + r.LinkPath + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write truncates path and writes records to it. An existing file that is
// not writable is rejected before it is touched.
func (s *Serializer) Write(path string, records []types.LinkRecord) error {
	if _, err := s.fs.Stat(path); err == nil {
		if err := filesystem.CheckAccess(s.fs, path, filesystem.Writable); err != nil {
			return errors.Wrapf(err, errors.ErrPermission, "unable to write to links file %q", path).
				WithDetail("path", path)
		}
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		if os.IsPermission(err) {
			return errors.Wrapf(err, errors.ErrPermission, "unable to write to links file %q", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrFileWrite, "unable to create links file %q", path).
			WithDetail("path", path)
	}

	if err := s.Encode(f, records); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, errors.ErrFileWrite, "failed writing links file %q", path).
			WithDetail("path", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed closing links file %q", path).
			WithDetail("path", path)
	}
	return nil
}

// Decode parses record lines, expanding the home placeholder in both
// fields. Blank lines are ignored; any other line must split into exactly
// two fields.
func (s *Serializer) Decode(r io.Reader) ([]types.LinkRecord, error) {
	var records []types.LinkRecord

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, s.separator)
		if len(fields) != 2 {
			return nil, errors.Newf(errors.ErrMalformedRecord,
				"invalid separator pattern on line %d: %q", lineNo, line).
				WithDetail("line", lineNo).
				WithDetail("content", line)
		}

		records = append(records, types.LinkRecord{
			LocalPath: paths.Expand(fields[0], s.home),
			LinkPath:  paths.Expand(fields[1], s.home),
		})
	}
	if err := scanner.Err(); err != nil {
		if stderrors.Is(err, bufio.ErrTooLong) {
			return nil, errors.Wrapf(err, errors.ErrMalformedRecord,
				"line %d exceeds %d bytes", lineNo+1, MaxLineLength).
				WithDetail("line", lineNo+1)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed reading links")
	}

	return records, nil
}

// Read loads the records stored at path, in file order.
func (s *Serializer) Read(path string) ([]types.LinkRecord, error) {
	if err := filesystem.CheckAccess(s.fs, path, filesystem.Readable); err != nil {
		code := errors.ErrPermission
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrFileNotFound
		}
		return nil, errors.Wrapf(err, code, "unable to read from links file %q", path).
			WithDetail("path", path)
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPermission, "unable to read from links file %q", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	records, err := s.Decode(f)
	if err != nil {
		return nil, err
	}
	return records, nil
}
