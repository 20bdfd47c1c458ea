// Package assets entrega las imágenes del ticket (logo, QR por emisor) desde
// un sistema de archivos afero.
package assets

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"sync"

	"github.com/spf13/afero"

	"github.com/jhoicas/ticketera/internal/domain/layout"
)

// Provider busca imágenes por nombre dentro de un directorio. Los resultados
// (incluidas las ausencias) se cachean; es seguro para uso concurrente.
type Provider struct {
	fs    afero.Fs
	dir   string
	cache sync.Map // nombre -> lookupResult
}

type lookupResult struct {
	asset layout.Asset
	ok    bool
}

var _ layout.ImageProvider = (*Provider)(nil)

// NewProvider crea el proveedor sobre fs, resolviendo nombres relativos a dir.
func NewProvider(fs afero.Fs, dir string) *Provider {
	return &Provider{fs: fs, dir: dir}
}

// Lookup devuelve la imagen si existe y es decodificable.
func (p *Provider) Lookup(name string) (layout.Asset, bool) {
	if name == "" {
		return layout.Asset{}, false
	}
	if v, ok := p.cache.Load(name); ok {
		r := v.(lookupResult)
		return r.asset, r.ok
	}
	asset, ok := p.load(name)
	p.cache.Store(name, lookupResult{asset: asset, ok: ok})
	return asset, ok
}

func (p *Provider) load(name string) (layout.Asset, bool) {
	data, err := afero.ReadFile(p.fs, path.Join(p.dir, path.Clean("/"+name)))
	if err != nil || len(data) == 0 {
		return layout.Asset{}, false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return layout.Asset{}, false
	}
	return layout.Asset{
		Name:        name,
		Data:        data,
		AspectRatio: float64(cfg.Width) / float64(cfg.Height),
	}, true
}

// Forget descarta la caché; útil cuando cambian los archivos de imágenes.
func (p *Provider) Forget() {
	p.cache.Range(func(k, _ any) bool {
		p.cache.Delete(k)
		return true
	})
}
