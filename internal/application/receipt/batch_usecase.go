package receipt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ticketera/internal/domain"
	"github.com/jhoicas/ticketera/internal/domain/layout"
	"github.com/jhoicas/ticketera/pkg/logger"
)

// BatchConfig parámetros de un lote.
type BatchConfig struct {
	InputDir  string
	OutputDir string
	Profile   string
	Workers   int           // <= 0: runtime.NumCPU()
	Timeout   time.Duration // por documento; 0 = sin límite
	// DebugDir si no está vacío, recibe un <doc>.json con las operaciones del plan.
	DebugDir     string
	SkipExisting bool
}

// Outcome resultado de un documento del lote.
type Outcome struct {
	Input    string
	Output   string
	Result   layout.RenderResult
	Drawn    float64
	Warnings error
	Err      error
	Skipped  bool
	Duration time.Duration
}

// OK indica que el documento se procesó sin error.
func (o Outcome) OK() bool { return o.Err == nil }

// Summary resumen de un lote. Outcomes respeta el orden de los archivos de entrada.
type Summary struct {
	JobID     string
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Elapsed   time.Duration
	Outcomes  []Outcome
}

// BatchUseCase procesa todos los XML de un directorio. Un documento fallido
// se registra y no detiene a los demás.
type BatchUseCase struct {
	render *RenderUseCase
	store  DocumentStore
	cfg    BatchConfig
	log    *logger.Logger
}

// NewBatchUseCase construye el caso de uso inyectando sus dependencias.
func NewBatchUseCase(render *RenderUseCase, store DocumentStore, cfg BatchConfig, log *logger.Logger) *BatchUseCase {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &BatchUseCase{render: render, store: store, cfg: cfg, log: log}
}

// Run renderiza cada XML del directorio de entrada y escribe un PDF por documento.
// Solo devuelve error si no pudo listar la entrada o el perfil no existe.
func (uc *BatchUseCase) Run(ctx context.Context) (Summary, error) {
	return uc.run(ctx, false)
}

// Measure recorre el lote sin escribir PDFs: reporta alturas estimada, de
// página y consumida de cada documento.
func (uc *BatchUseCase) Measure(ctx context.Context) (Summary, error) {
	return uc.run(ctx, true)
}

func (uc *BatchUseCase) run(ctx context.Context, dryRun bool) (Summary, error) {
	start := time.Now()
	sum := Summary{JobID: uuid.NewString()}

	if _, err := uc.render.Engine(uc.cfg.Profile); err != nil {
		return sum, err
	}
	inputs, err := uc.store.List(uc.cfg.InputDir, ".xml")
	if err != nil {
		return sum, fmt.Errorf("receipt: lote: %w", err)
	}
	log := uc.log.Child(map[string]any{"job_id": sum.JobID})
	log.Info().
		Str("input", uc.cfg.InputDir).
		Int("documents", len(inputs)).
		Int("workers", uc.cfg.Workers).
		Bool("dry_run", dryRun).
		Msg("lote iniciado")

	// ── Pool acotado; cada goroutine escribe solo su posición ────────────────
	sum.Outcomes = make([]Outcome, len(inputs))
	var g errgroup.Group
	g.SetLimit(uc.cfg.Workers)
	for i, in := range inputs {
		g.Go(func() error {
			sum.Outcomes[i] = uc.process(ctx, in, dryRun)
			logOutcome(log, sum.Outcomes[i])
			return nil
		})
	}
	_ = g.Wait()

	sum.Total = len(inputs)
	for _, o := range sum.Outcomes {
		switch {
		case o.Skipped:
			sum.Skipped++
		case o.OK():
			sum.Succeeded++
		default:
			sum.Failed++
		}
	}
	sum.Elapsed = time.Since(start)
	log.Info().
		Int("total", sum.Total).
		Int("succeeded", sum.Succeeded).
		Int("failed", sum.Failed).
		Int("skipped", sum.Skipped).
		Dur("elapsed", sum.Elapsed).
		Msg("lote finalizado")
	return sum, nil
}

type attempt struct {
	out Output
	err error
}

// process corre un documento con su propio plazo. Si el plazo vence, el
// documento se reporta fallido y su resultado tardío se descarta.
func (uc *BatchUseCase) process(ctx context.Context, input string, dryRun bool) Outcome {
	start := time.Now()
	o := Outcome{Input: input}
	if !dryRun {
		o.Output = uc.store.OutputPath(uc.cfg.OutputDir, input, ".pdf")
		if uc.cfg.SkipExisting && uc.store.Exists(o.Output) {
			o.Skipped = true
			return o
		}
	}

	dctx, cancel := uc.deadline(ctx)
	defer cancel()

	done := make(chan attempt, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- attempt{err: fmt.Errorf("receipt: %s: pánico: %v", filepath.Base(input), r)}
			}
		}()
		out, err := uc.attempt(dctx, input, dryRun)
		done <- attempt{out: out, err: err}
	}()

	var a attempt
	select {
	case a = <-done:
	case <-dctx.Done():
		a.err = dctx.Err()
	}
	o.Duration = time.Since(start)

	if a.err != nil {
		o.Err = classify(ctx, input, a.err)
		return o
	}
	o.Result = a.out.Result
	o.Drawn = a.out.DrawnHeight
	o.Warnings = a.out.Warnings

	// ── Escritura fuera del plazo: un documento vencido nunca deja salida ──
	if !dryRun {
		if err := uc.store.Write(o.Output, a.out.PDF); err != nil {
			o.Err = fmt.Errorf("receipt: %s: %w: %v", filepath.Base(input), domain.ErrCanvasWrite, err)
			return o
		}
	}
	if uc.cfg.DebugDir != "" {
		if err := uc.writeDebug(input, a.out.Result); err != nil {
			uc.log.Warn().Err(err).Str("doc", filepath.Base(input)).Msg("volcado de depuración")
		}
	}
	return o
}

func (uc *BatchUseCase) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.cfg.Timeout)
}

func (uc *BatchUseCase) attempt(ctx context.Context, input string, dryRun bool) (Output, error) {
	data, err := uc.store.Read(input)
	if err != nil {
		return Output{}, err
	}
	if dryRun {
		return uc.render.MeasureXML(ctx, uc.cfg.Profile, data)
	}
	return uc.render.RenderXML(ctx, uc.cfg.Profile, data)
}

func (uc *BatchUseCase) writeDebug(input string, res layout.RenderResult) error {
	var buf bytes.Buffer
	if err := layout.WriteDebugJSON(&buf, res.Plan); err != nil {
		return err
	}
	return uc.store.Write(uc.store.OutputPath(uc.cfg.DebugDir, input, ".json"), buf.Bytes())
}

// classify traduce el vencimiento del plazo propio del documento a
// domain.ErrDocumentTimeout; la cancelación del lote se deja tal cual.
func classify(parent context.Context, input string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
		return fmt.Errorf("receipt: %s: %w", filepath.Base(input), domain.ErrDocumentTimeout)
	}
	return err
}

func logOutcome(log *logger.Logger, o Outcome) {
	doc := filepath.Base(o.Input)
	switch {
	case o.Skipped:
		log.Info().Str("doc", doc).Str("output", o.Output).Msg("salida existente; se omite")
	case o.Err != nil:
		log.Error().Err(o.Err).Str("doc", doc).Dur("duration", o.Duration).Msg("ticket fallido")
	default:
		if o.Warnings != nil {
			log.Warn().Err(o.Warnings).Str("doc", doc).Msg("comprobante con observaciones")
		}
		log.Info().
			Str("doc", doc).
			Str("output", o.Output).
			Float64("estimated_mm", o.Result.EstimatedHeight).
			Float64("page_mm", o.Result.PageHeight).
			Dur("duration", o.Duration).
			Msg("ticket generado")
	}
}
