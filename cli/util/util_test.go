package util_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkalt/grouper/cli/util"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.md", filepath.Join("sub", "c.txt")} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	}

	t.Run("recursive", func(t *testing.T) {
		files, err := util.ExpandGlobs([]string{filepath.Join(dir, "**", "*.txt")})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.txt"),
			filepath.Join(dir, "sub", "c.txt"),
		}, files)
	})
	t.Run("duplicates listed once", func(t *testing.T) {
		files, err := util.ExpandGlobs([]string{
			filepath.Join(dir, "*.txt"),
			filepath.Join(dir, "a.*"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, files)
	})
	t.Run("no match", func(t *testing.T) {
		_, err := util.ExpandGlobs([]string{filepath.Join(dir, "*.csv")})
		require.Error(t, err)
	})
}

func TestPrintTable(t *testing.T) {
	headers := []string{"Key", "Size", "Values"}
	data := [][]string{
		{"é", "2", "É é"},
		{"b", "1", "b"},
	}
	t.Run("table", func(t *testing.T) {
		buf := &bytes.Buffer{}
		util.PrintTable(buf, 80, headers, data)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "|  Key  |  Size  |  Values  |", lines[0])
		assert.Equal(t, "|-------|--------|----------|", lines[1])
		assert.Equal(t, "| é     | 2      | É é      |", lines[2])
		assert.Equal(t, "| b     | 1      | b        |", lines[3])
	})
	t.Run("records when narrow", func(t *testing.T) {
		buf := &bytes.Buffer{}
		util.PrintTable(buf, 20, headers, data)
		output := buf.String()
		assert.Contains(t, output, "-[ RECORD 1 ]")
		assert.Contains(t, output, "-[ RECORD 2 ]")
		assert.Contains(t, output, "Values       | É é")
	})
}
