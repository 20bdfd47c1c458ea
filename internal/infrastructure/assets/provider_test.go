package assets_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticketera/internal/infrastructure/assets"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProvider_ImagenExistente(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "images/logo.png", pngBytes(t, 300, 100), 0o644))

	p := assets.NewProvider(fs, "images")
	a, ok := p.Lookup("logo.png")
	require.True(t, ok)
	assert.Equal(t, "logo.png", a.Name)
	assert.InDelta(t, 3.0, a.AspectRatio, 1e-9)
	assert.NotEmpty(t, a.Data)
}

func TestProvider_AusenteOInvalida(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "images/roto.png", []byte("no es png"), 0o644))

	p := assets.NewProvider(fs, "images")
	_, ok := p.Lookup("qr_default.png")
	assert.False(t, ok)
	_, ok = p.Lookup("roto.png")
	assert.False(t, ok)
	_, ok = p.Lookup("")
	assert.False(t, ok)
}

func TestProvider_NoSaleDelDirectorio(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "secreto.png", pngBytes(t, 10, 10), 0o644))

	p := assets.NewProvider(fs, "images")
	_, ok := p.Lookup("../secreto.png")
	assert.False(t, ok)
}

func TestProvider_CacheYForget(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := assets.NewProvider(fs, "images")

	_, ok := p.Lookup("20100070970.png")
	require.False(t, ok)

	require.NoError(t, afero.WriteFile(fs, "images/20100070970.png", pngBytes(t, 100, 100), 0o644))
	_, ok = p.Lookup("20100070970.png")
	assert.False(t, ok, "la ausencia queda en caché")

	p.Forget()
	a, ok := p.Lookup("20100070970.png")
	require.True(t, ok)
	assert.InDelta(t, 1.0, a.AspectRatio, 1e-9)
}
