package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

func TestRosterFileName(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		path     string
		expected string
	}{
		{"top level", "in", filepath.Join("in", "заявка.docx"), filepath.Join("out", "заявка.docx.json")},
		{"subdirectory", "in", filepath.Join("in", "a", "заявка.docx"), filepath.Join("out", "a", "заявка.docx.json")},
		{"other extension", "in", filepath.Join("in", "заявка.csv"), filepath.Join("out", "заявка.csv.json")},
		{"outside root", "in", filepath.Join("other", "заявка.docx"), filepath.Join("out", "заявка.docx.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rosterFileName(tt.root, tt.path, "out")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWriteRosterFilesKeepsSameNamedDocuments(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "rosters")
	sources := []string{
		filepath.Join(root, "a", "заявка.docx"),
		filepath.Join(root, "b", "заявка.docx"),
		filepath.Join(root, "a", "заявка.csv"),
	}
	rosters := []*models.Roster{
		{File: "заявка.docx", Team: "Ак Барс"},
		{File: "заявка.docx", Team: "Спартак"},
		{File: "заявка.csv", Team: "Динамо"},
	}

	require.NoError(t, writeRosterFiles(rosters, sources, root, out))

	for i, rel := range []string{
		filepath.Join("a", "заявка.docx.json"),
		filepath.Join("b", "заявка.docx.json"),
		filepath.Join("a", "заявка.csv.json"),
	} {
		data, err := os.ReadFile(filepath.Join(out, rel))
		require.NoError(t, err, rel)
		assert.Contains(t, string(data), rosters[i].Team)
	}
}
