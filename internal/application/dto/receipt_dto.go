package dto

import (
	"path/filepath"

	"github.com/jhoicas/ticketera/internal/application/receipt"
	"github.com/jhoicas/ticketera/internal/domain/layout"
	"github.com/jhoicas/ticketera/pkg/sunat"
)

// MeasureResponse alturas calculadas para un comprobante.
type MeasureResponse struct {
	DocumentNumber    string         `json:"document_number"`
	DocumentType      string         `json:"document_type"`                 // catálogo 01
	BuyerIdentityType string         `json:"buyer_identity_type,omitempty"` // catálogo 06
	Profile           string         `json:"profile"`
	EstimatedHeightMM float64        `json:"estimated_height_mm"`
	PageHeightMM      float64        `json:"page_height_mm"`
	ConsumedHeightMM  float64        `json:"consumed_height_mm"`
	DrawnHeightMM     float64        `json:"drawn_height_mm"`
	Clamped           bool           `json:"clamped"`
	States            []layout.State `json:"states"`
	MissingAssets     []string       `json:"missing_assets,omitempty"`
	Warnings          []string       `json:"warnings,omitempty"`
}

// NewMeasureResponse arma la respuesta a partir de una medición.
func NewMeasureResponse(out receipt.Output) MeasureResponse {
	return MeasureResponse{
		DocumentNumber:    out.Record.DocumentNumber,
		DocumentType:      sunat.DocumentTypeCode(out.Record.DocumentNumber),
		BuyerIdentityType: sunat.IdentityCode(out.Record.Buyer.TaxID),
		Profile:           out.Result.Profile,
		EstimatedHeightMM: out.Result.EstimatedHeight,
		PageHeightMM:      out.Result.PageHeight,
		ConsumedHeightMM:  out.Result.ConsumedHeight,
		DrawnHeightMM:     out.DrawnHeight,
		Clamped:           out.Result.Clamped(),
		States:            out.Result.States,
		MissingAssets:     out.Result.MissingAssets,
		Warnings:          WarningList(out.Warnings),
	}
}

// BatchDocument resultado de un documento del lote.
type BatchDocument struct {
	Input             string   `json:"input"`
	Output            string   `json:"output,omitempty"`
	Status            string   `json:"status"` // ok | failed | skipped
	Error             string   `json:"error,omitempty"`
	EstimatedHeightMM float64  `json:"estimated_height_mm,omitempty"`
	PageHeightMM      float64  `json:"page_height_mm,omitempty"`
	ConsumedHeightMM  float64  `json:"consumed_height_mm,omitempty"`
	Clamped           bool     `json:"clamped,omitempty"`
	MissingAssets     []string `json:"missing_assets,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
	DurationMS        int64    `json:"duration_ms"`
}

// BatchReport resumen de un lote para imprimir como JSON.
type BatchReport struct {
	JobID     string          `json:"job_id"`
	Total     int             `json:"total"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Skipped   int             `json:"skipped"`
	ElapsedMS int64           `json:"elapsed_ms"`
	Documents []BatchDocument `json:"documents"`
}

// NewBatchReport convierte el resumen del caso de uso.
func NewBatchReport(sum receipt.Summary) BatchReport {
	r := BatchReport{
		JobID:     sum.JobID,
		Total:     sum.Total,
		Succeeded: sum.Succeeded,
		Failed:    sum.Failed,
		Skipped:   sum.Skipped,
		ElapsedMS: sum.Elapsed.Milliseconds(),
		Documents: make([]BatchDocument, 0, len(sum.Outcomes)),
	}
	for _, o := range sum.Outcomes {
		d := BatchDocument{
			Input:      filepath.Base(o.Input),
			Output:     o.Output,
			DurationMS: o.Duration.Milliseconds(),
		}
		switch {
		case o.Skipped:
			d.Status = "skipped"
		case o.Err != nil:
			d.Status = "failed"
			d.Error = o.Err.Error()
		default:
			d.Status = "ok"
			d.EstimatedHeightMM = o.Result.EstimatedHeight
			d.PageHeightMM = o.Result.PageHeight
			d.ConsumedHeightMM = o.Result.ConsumedHeight
			d.Clamped = o.Result.Clamped()
			d.MissingAssets = o.Result.MissingAssets
			d.Warnings = WarningList(o.Warnings)
		}
		r.Documents = append(r.Documents, d)
	}
	return r
}
