package receipt_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticketera/internal/application/receipt"
	"github.com/jhoicas/ticketera/internal/domain"
	"github.com/jhoicas/ticketera/internal/domain/entity"
	"github.com/jhoicas/ticketera/internal/domain/layout"
	"github.com/jhoicas/ticketera/internal/infrastructure/pdf"
	"github.com/jhoicas/ticketera/internal/infrastructure/ubl"
	"github.com/jhoicas/ticketera/pkg/logger"
)

func TestRenderUseCase_RenderXMLGeneraPDF(t *testing.T) {
	uc := newRenderUseCase(t, receipt.CanvasFactoryFunc(func(title string) layout.Canvas {
		return pdf.NewFPDFCanvas(pdf.Options{Title: title})
	}))

	out, err := uc.RenderXML(context.Background(), "", sampleXML(t))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out.PDF, []byte("%PDF")))
	assert.Equal(t, "F001-000123", out.Record.DocumentNumber)
	assert.Equal(t, layout.DefaultProfile, out.Result.Profile)
	assert.InDelta(t, out.Result.EstimatedHeight, out.Result.ConsumedHeight, 1e-9)
	assert.NoError(t, out.Warnings)
}

func TestRenderUseCase_XMLInvalido(t *testing.T) {
	uc := newRenderUseCase(t, recorderFactory())
	_, err := uc.RenderXML(context.Background(), "", []byte("<Invoice><ID>F001</ID"))
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestRenderUseCase_PerfilDesconocido(t *testing.T) {
	uc := newRenderUseCase(t, recorderFactory())
	_, err := uc.Render(context.Background(), "a4", entity.NewInvoiceRecord())
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
}

func TestRenderUseCase_FalloAlGuardar(t *testing.T) {
	uc := newRenderUseCase(t, receipt.CanvasFactoryFunc(func(string) layout.Canvas { return &failingCanvas{} }))
	_, err := uc.Render(context.Background(), "", entity.NewInvoiceRecord())
	assert.ErrorIs(t, err, domain.ErrCanvasWrite)
}

func TestRenderUseCase_ContextoCancelado(t *testing.T) {
	uc := newRenderUseCase(t, recorderFactory())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.Render(ctx, "", entity.NewInvoiceRecord())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderUseCase_MedirNoExcedeLaPagina(t *testing.T) {
	uc := newRenderUseCase(t, recorderFactory())
	for _, profile := range uc.Profiles() {
		out, err := uc.MeasureXML(context.Background(), profile, sampleXML(t))
		require.NoError(t, err, profile)
		assert.Nil(t, out.PDF)
		assert.LessOrEqual(t, out.DrawnHeight, out.Result.PageHeight, profile)
		assert.InDelta(t, out.Result.EstimatedHeight, out.Result.ConsumedHeight, 1e-9, profile)
	}
}

func TestRenderUseCase_ProfilesOrdenados(t *testing.T) {
	uc := newRenderUseCase(t, recorderFactory())
	assert.Equal(t, layout.ProfileNames(), uc.Profiles())
}

func TestNewRenderUseCase_PerfilPorDefectoInexistente(t *testing.T) {
	_, err := receipt.NewRenderUseCase(map[string]*layout.Engine{}, "ticket80", ubl.NewExtractor(), recorderFactory(), logger.Nop())
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
}

func TestBuildEngines_PerfilInvalido(t *testing.T) {
	p, err := layout.LookupProfile(layout.DefaultProfile)
	require.NoError(t, err)
	p.PageWidth = 0
	_, err = receipt.BuildEngines([]layout.Profile{p}, layout.NoImages{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
