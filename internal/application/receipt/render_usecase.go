package receipt

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jhoicas/ticketera/internal/domain"
	"github.com/jhoicas/ticketera/internal/domain/entity"
	"github.com/jhoicas/ticketera/internal/domain/layout"
	"github.com/jhoicas/ticketera/pkg/logger"
)

// Output resultado de renderizar (o medir) un comprobante.
type Output struct {
	Record entity.InvoiceRecord
	Result layout.RenderResult
	// PDF vacío en una medición.
	PDF []byte
	// DrawnHeight borde inferior del último elemento dibujado; solo en mediciones.
	DrawnHeight float64
	// Warnings advertencias del extractor (nil si no hay).
	Warnings error
}

// RenderUseCase genera tickets a partir de comprobantes. Mantiene un motor por
// perfil; es seguro usarlo desde varias goroutines.
type RenderUseCase struct {
	engines        map[string]*layout.Engine
	defaultProfile string
	extractor      RecordExtractor
	canvases       CanvasFactory
	log            *logger.Logger
}

// NewRenderUseCase construye el caso de uso inyectando sus dependencias.
// defaultProfile debe existir en engines.
func NewRenderUseCase(
	engines map[string]*layout.Engine,
	defaultProfile string,
	extractor RecordExtractor,
	canvases CanvasFactory,
	log *logger.Logger,
) (*RenderUseCase, error) {
	if _, ok := engines[defaultProfile]; !ok {
		return nil, fmt.Errorf("receipt: perfil por defecto %q: %w", defaultProfile, domain.ErrUnknownProfile)
	}
	return &RenderUseCase{
		engines:        engines,
		defaultProfile: defaultProfile,
		extractor:      extractor,
		canvases:       canvases,
		log:            log,
	}, nil
}

// BuildEngines arma un motor por perfil sobre el mismo proveedor de imágenes.
func BuildEngines(profiles []layout.Profile, images layout.ImageProvider) (map[string]*layout.Engine, error) {
	engines := make(map[string]*layout.Engine, len(profiles))
	for _, p := range profiles {
		e, err := layout.NewEngine(p, images)
		if err != nil {
			return nil, fmt.Errorf("receipt: perfil %s: %w", p.Name, err)
		}
		engines[p.Name] = e
	}
	return engines, nil
}

// Profiles nombres de los perfiles disponibles.
func (uc *RenderUseCase) Profiles() []string {
	names := make([]string, 0, len(uc.engines))
	for _, n := range layout.ProfileNames() {
		if _, ok := uc.engines[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

// Engine motor del perfil; "" selecciona el perfil por defecto.
func (uc *RenderUseCase) Engine(profile string) (*layout.Engine, error) {
	if profile == "" {
		profile = uc.defaultProfile
	}
	e, ok := uc.engines[profile]
	if !ok {
		return nil, fmt.Errorf("receipt: perfil %q: %w", profile, domain.ErrUnknownProfile)
	}
	return e, nil
}

// Render dibuja el comprobante en un lienzo nuevo y devuelve el documento guardado.
//
// Retorna:
//   - domain.ErrUnknownProfile  si el perfil no existe.
//   - domain.ErrCanvasWrite     si el lienzo no pudo abrir la página o guardar.
//   - el error del contexto     si se canceló entre secciones.
func (uc *RenderUseCase) Render(ctx context.Context, profile string, rec entity.InvoiceRecord) (Output, error) {
	engine, err := uc.Engine(profile)
	if err != nil {
		return Output{}, err
	}

	// ── 1. Estimar, acotar y dibujar ──────────────────────────────────────────
	c := uc.canvases.NewCanvas(rec.DocumentNumber)
	res, err := engine.Render(ctx, rec, c)
	if err != nil {
		return Output{}, fmt.Errorf("receipt: renderizar %s: %w", rec.DocumentNumber, err)
	}

	// ── 2. Guardar ────────────────────────────────────────────────────────────
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		return Output{}, fmt.Errorf("receipt: guardar %s: %w: %v", rec.DocumentNumber, domain.ErrCanvasWrite, err)
	}

	uc.logResult(rec, res)
	return Output{Record: rec, Result: res, PDF: buf.Bytes()}, nil
}

// RenderXML extrae el comprobante del XML y lo renderiza. Un XML inválido
// devuelve domain.ErrExtraction antes de tocar el motor.
func (uc *RenderUseCase) RenderXML(ctx context.Context, profile string, data []byte) (Output, error) {
	rec, warnings, err := uc.extract(data)
	if err != nil {
		return Output{}, err
	}
	out, err := uc.Render(ctx, profile, rec)
	if err != nil {
		return Output{}, err
	}
	out.Warnings = warnings
	return out, nil
}

// Measure recorre las dos pasadas sobre un Recorder: nada se escribe.
func (uc *RenderUseCase) Measure(ctx context.Context, profile string, rec entity.InvoiceRecord) (Output, error) {
	engine, err := uc.Engine(profile)
	if err != nil {
		return Output{}, err
	}
	r := &layout.Recorder{}
	res, err := engine.Render(ctx, rec, r)
	if err != nil {
		return Output{}, fmt.Errorf("receipt: medir %s: %w", rec.DocumentNumber, err)
	}
	return Output{Record: rec, Result: res, DrawnHeight: r.MaxY()}, nil
}

// MeasureXML como Measure, a partir del XML.
func (uc *RenderUseCase) MeasureXML(ctx context.Context, profile string, data []byte) (Output, error) {
	rec, warnings, err := uc.extract(data)
	if err != nil {
		return Output{}, err
	}
	out, err := uc.Measure(ctx, profile, rec)
	if err != nil {
		return Output{}, err
	}
	out.Warnings = warnings
	return out, nil
}

func (uc *RenderUseCase) extract(data []byte) (rec entity.InvoiceRecord, warnings, err error) {
	rec, err = uc.extractor.Extract(data)
	if err != nil {
		return entity.InvoiceRecord{}, nil, fmt.Errorf("receipt: extraer: %w", err)
	}
	return rec, uc.extractor.Validate(rec), nil
}

func (uc *RenderUseCase) logResult(rec entity.InvoiceRecord, res layout.RenderResult) {
	if len(res.MissingAssets) > 0 {
		uc.log.Warn().
			Err(domain.ErrResourceMissing).
			Str("doc", rec.DocumentNumber).
			Strs("assets", res.MissingAssets).
			Msg("imágenes no encontradas; se omiten")
	}
	if res.Clamped() {
		uc.log.Warn().
			Str("doc", rec.DocumentNumber).
			Float64("estimated_mm", res.EstimatedHeight).
			Float64("page_mm", res.PageHeight).
			Msg("contenido excede el alto máximo de página")
	}
}
