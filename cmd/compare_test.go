package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"decochanges/core/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOutputPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{
			name: "directory gets default file name",
			path: dir,
			ext:  ".xlsx",
			want: filepath.Join(dir, "DecoChanges.xlsx"),
		},
		{
			name: "missing extension is appended",
			path: "changes",
			ext:  ".txt",
			want: "changes.txt",
		},
		{
			name: "matching extension is kept",
			path: "changes.txt",
			ext:  ".txt",
			want: "changes.txt",
		},
		{
			name: "extension match is case insensitive",
			path: "Changes.XLSX",
			ext:  ".xlsx",
			want: "Changes.XLSX",
		},
		{
			name: "nested path without extension",
			path: filepath.Join("out", "report"),
			ext:  ".xlsx",
			want: filepath.Join("out", "report") + ".xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeOutputPath(tt.path, tt.ext))
		})
	}
}

// chdir mirrors testing.T.Chdir, which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

// TestCompareCommand runs the invocations the command help documents end to
// end, against real export files on disk.
func TestCompareCommand(t *testing.T) {
	writeExport := func(t *testing.T, dir, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	// The output flags are package globals and survive across runs.
	resetFlags := func() {
		excelOut = ""
		textOut = ""
		bothOut = false
	}

	t.Run("text output to an explicit path", func(t *testing.T) {
		resetFlags()
		dir := t.TempDir()
		oldPath := writeExport(t, dir, "old.json", `{"Attack Jewel 1": 1}`)
		newPath := writeExport(t, dir, "new.json", `{"Attack Jewel 1": 2, "Vitality Jewel 1": 1}`)
		outPath := filepath.Join(dir, "out", "changes.txt")

		RootCmd.SetArgs([]string{"compare", oldPath, newPath, "--text=" + outPath})
		require.NoError(t, RootCmd.Execute())

		content, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Attack Jewel 1, added: 1 | 2")
		assert.Contains(t, string(content), "Vitality Jewel 1, amount: 1")
	})

	t.Run("bare text flag uses the default file name", func(t *testing.T) {
		resetFlags()
		dir := t.TempDir()
		oldPath := writeExport(t, dir, "old.txt", "Attack Jewel 1,1\n")
		newPath := writeExport(t, dir, "new.txt", "Attack Jewel 1,1\nVitality Jewel 1,1\n")
		chdir(t, dir)

		RootCmd.SetArgs([]string{"compare", oldPath, newPath, "--text"})
		require.NoError(t, RootCmd.Execute())

		content, err := os.ReadFile(filepath.Join(dir, render.DefaultTextName))
		require.NoError(t, err)
		assert.Contains(t, string(content), "Vitality Jewel 1, amount: 1")
	})

	t.Run("both flag writes both default outputs", func(t *testing.T) {
		resetFlags()
		dir := t.TempDir()
		oldPath := writeExport(t, dir, "old.json", `{"Attack Jewel 1": 1}`)
		newPath := writeExport(t, dir, "new.json", `{"Attack Jewel 1": 3}`)
		chdir(t, dir)

		RootCmd.SetArgs([]string{"compare", oldPath, newPath, "--both"})
		require.NoError(t, RootCmd.Execute())

		_, err := os.Stat(filepath.Join(dir, render.DefaultExcelName))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, render.DefaultTextName))
		assert.NoError(t, err)
	})
}
