package receipt_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticketera/internal/application/receipt"
	"github.com/jhoicas/ticketera/internal/domain/layout"
	"github.com/jhoicas/ticketera/internal/infrastructure/storage"
	"github.com/jhoicas/ticketera/internal/infrastructure/ubl"
	"github.com/jhoicas/ticketera/pkg/logger"
)

func sampleXML(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "F001-000123.xml"))
	require.NoError(t, err)
	return data
}

func recorderFactory() receipt.CanvasFactory {
	return receipt.CanvasFactoryFunc(func(string) layout.Canvas { return &layout.Recorder{} })
}

func newRenderUseCase(t *testing.T, canvases receipt.CanvasFactory) *receipt.RenderUseCase {
	t.Helper()
	var profiles []layout.Profile
	for _, n := range layout.ProfileNames() {
		p, err := layout.LookupProfile(n)
		require.NoError(t, err)
		profiles = append(profiles, p)
	}
	engines, err := receipt.BuildEngines(profiles, layout.NoImages{})
	require.NoError(t, err)
	uc, err := receipt.NewRenderUseCase(engines, layout.DefaultProfile, ubl.NewExtractor(), canvases, logger.Nop())
	require.NoError(t, err)
	return uc
}

func newBatch(t *testing.T, fs afero.Fs, canvases receipt.CanvasFactory, cfg receipt.BatchConfig) *receipt.BatchUseCase {
	t.Helper()
	if cfg.InputDir == "" {
		cfg.InputDir = "input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	return receipt.NewBatchUseCase(newRenderUseCase(t, canvases), storage.NewFSStore(fs), cfg, logger.Nop())
}

// failingCanvas dibuja en memoria pero no puede guardar.
type failingCanvas struct {
	layout.Recorder
}

func (*failingCanvas) Save(_ io.Writer) error { return errors.New("disco lleno") }

// blockingCanvas se queda en NewPage hasta que release se cierra.
type blockingCanvas struct {
	layout.Recorder
	release <-chan struct{}
}

func (b *blockingCanvas) NewPage(w, h float64) error {
	<-b.release
	return b.Recorder.NewPage(w, h)
}

// panickingCanvas entra en pánico al abrir la página.
type panickingCanvas struct {
	layout.Recorder
}

func (*panickingCanvas) NewPage(_, _ float64) error { panic("fuente corrupta") }
