package layout

import (
	"context"
	"fmt"

	"github.com/jhoicas/ticketera/internal/domain"
	"github.com/jhoicas/ticketera/internal/domain/entity"
)

// RenderResult medidas de un comprobante renderizado.
type RenderResult struct {
	Profile         string   `json:"profile"`
	EstimatedHeight float64  `json:"estimated_height_mm"`
	PageHeight      float64  `json:"page_height_mm"`
	ConsumedHeight  float64  `json:"consumed_height_mm"`
	States          []State  `json:"states"`
	MissingAssets   []string `json:"missing_assets,omitempty"`
	Plan            *Plan    `json:"-"`
}

// Clamped indica si el contenido no cupo en el alto máximo.
func (r RenderResult) Clamped() bool {
	return r.EstimatedHeight > r.PageHeight
}

// Engine reúne planificador, estimador, acotador y renderizador de un perfil.
// Es inmutable y puede compartirse entre goroutines si el ImageProvider también lo es.
type Engine struct {
	profile   Profile
	planner   *Planner
	estimator *HeightEstimator
	sizer     PageSizer
	renderer  *Renderer
}

// NewEngine valida el perfil y arma los componentes.
func NewEngine(p Profile, images ImageProvider) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	pl := NewPlanner(p, images)
	return &Engine{
		profile:   p,
		planner:   pl,
		estimator: NewHeightEstimator(pl),
		sizer:     NewPageSizer(p),
		renderer:  NewRenderer(p, pl.Table()),
	}, nil
}

// Profile perfil del motor.
func (e *Engine) Profile() Profile { return e.profile }

// Plan estructura vertical del comprobante.
func (e *Engine) Plan(rec entity.InvoiceRecord) *Plan { return e.planner.Plan(rec) }

// Estimate alto de contenido sin acotar.
func (e *Engine) Estimate(rec entity.InvoiceRecord) float64 { return e.estimator.Estimate(rec) }

// PageHeight alto de página: la estimación acotada.
func (e *Engine) PageHeight(rec entity.InvoiceRecord) float64 {
	return e.sizer.Clamp(e.Estimate(rec))
}

// Render ejecuta las dos pasadas: planifica y mide, abre la página con el alto
// acotado y dibuja. No guarda el lienzo.
func (e *Engine) Render(ctx context.Context, rec entity.InvoiceRecord, c Canvas) (RenderResult, error) {
	plan := e.planner.Plan(rec)
	res := RenderResult{
		Profile:         e.profile.Name,
		EstimatedHeight: plan.Height(),
		MissingAssets:   append([]string(nil), plan.MissingAssets...),
		Plan:            plan,
	}
	res.PageHeight = e.sizer.Clamp(res.EstimatedHeight)

	if err := c.NewPage(e.profile.PageWidth, res.PageHeight); err != nil {
		return res, fmt.Errorf("layout: nueva página: %w: %v", domain.ErrCanvasWrite, err)
	}

	cur, states, lost, err := e.renderer.Render(ctx, plan, c)
	res.States = states
	res.MissingAssets = append(res.MissingAssets, lost...)
	res.ConsumedHeight = cur.Y + plan.Bottom
	if err != nil {
		return res, err
	}
	return res, nil
}
