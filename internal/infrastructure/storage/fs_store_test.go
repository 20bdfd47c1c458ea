package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticketera/internal/infrastructure/storage"
)

func TestFSStore_ListFiltraPorExtension(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"b.xml", "a.XML", "nota.txt", "sub/c.xml"} {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("input", name), []byte("<x/>"), 0o644))
	}
	s := storage.NewFSStore(fs)

	files, err := s.List("input", ".xml")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("input", "a.XML"), filepath.Join("input", "b.xml")}, files)

	_, err = s.List("no-existe", ".xml")
	assert.Error(t, err)
}

func TestFSStore_WriteCreaDirectorio(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := storage.NewFSStore(fs)

	path := filepath.Join("output", "F001-1.pdf")
	require.NoError(t, s.Write(path, []byte("%PDF-1.3")))
	assert.True(t, s.Exists(path))
	assert.False(t, s.Exists(path+".tmp"))

	data, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
}

func TestFSStore_OutputPath(t *testing.T) {
	s := storage.NewFSStore(afero.NewMemMapFs())
	assert.Equal(t, filepath.Join("output", "F001-000123.pdf"), s.OutputPath("output", filepath.Join("input", "F001-000123.xml"), ".pdf"))
	assert.Equal(t, filepath.Join("out", "doc.pdf"), s.OutputPath("out", "doc", ".pdf"))
}
