// Package storage lee comprobantes y escribe tickets sobre un afero.Fs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// FSStore acceso a archivos de entrada y salida.
type FSStore struct {
	fs afero.Fs
}

// NewFSStore crea el almacén sobre fs (afero.NewOsFs() en producción).
func NewFSStore(fs afero.Fs) *FSStore {
	return &FSStore{fs: fs}
}

// List devuelve, ordenadas, las rutas de los archivos de dir con la extensión
// dada (sin distinguir mayúsculas).
func (s *FSStore) List(dir, ext string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("storage: listar %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// Read lee un archivo completo.
func (s *FSStore) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", path, err)
	}
	return data, nil
}

// Write escribe el archivo a través de un temporal y lo renombra, creando el
// directorio si hace falta. Un lector nunca ve un archivo a medio escribir.
func (s *FSStore) Write(path string, data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio de %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", path, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("storage: renombrar %s: %w", path, err)
	}
	return nil
}

// Exists indica si la ruta existe.
func (s *FSStore) Exists(path string) bool {
	_, err := s.fs.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// OutputPath ruta de salida: el nombre base de input con la nueva extensión, dentro de dir.
func (s *FSStore) OutputPath(dir, input, ext string) string {
	base := filepath.Base(input)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+ext)
}
