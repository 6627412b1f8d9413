package aoc

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputPath(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{InputPath(1, ""), filepath.Join("inputs", "1", "input.txt")},
		{InputPath(12, "sample.txt"), filepath.Join("inputs", "12", "sample.txt")},
		{PartInputPath(3, 2, ""), filepath.Join("inputs", "3", "2", "input.txt")},
		{Config{Inputs: "/tmp/x"}.InputPath(5, ""), filepath.Join("/tmp/x", "5", "input.txt")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadLines(t *testing.T) {
	got, err := LoadLines(writeFile(t, "a\n\nb c\nlast"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b c", "last"}, got)
}

func TestLoadLinesMissing(t *testing.T) {
	_, err := LoadLines(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLinesPerLineError(t *testing.T) {
	r, err := ReadLines(writeFile(t, "ok\n\xff\xfe\nafter\n"))
	require.NoError(t, err)
	var lines []string
	var errs []error
	for line, err := range r.All() {
		lines = append(lines, line)
		errs = append(errs, err)
	}
	assert.Equal(t, []string{"ok", "\xff\xfe", "after"}, lines)
	assert.NoError(t, errs[0])
	assert.ErrorContains(t, errs[1], "line 2")
	assert.NoError(t, errs[2])

	_, err = LoadLines(writeFile(t, "ok\n\xff\n"))
	assert.Error(t, err)
}

func TestLinesSinglePass(t *testing.T) {
	l := NewLines(io.NopCloser(strings.NewReader("x\ny\n")))
	for line, err := range l.All() {
		require.NoError(t, err)
		if line == "x" {
			break // stops early; the reader is closed
		}
	}
	for _, err := range l.All() {
		assert.Error(t, err)
	}
}

type failReader struct{ n int }

func (f *failReader) Read(p []byte) (int, error) {
	if f.n > 0 {
		return 0, errors.New("disk on fire")
	}
	f.n++
	return copy(p, "one\ntwo"), nil
}

func (f *failReader) Close() error { return nil }

func TestLinesReadError(t *testing.T) {
	_, err := NewLines(&failReader{}).Collect()
	assert.ErrorContains(t, err, "disk on fire")
}
