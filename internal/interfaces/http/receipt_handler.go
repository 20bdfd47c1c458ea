package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticketera/internal/application/dto"
	"github.com/jhoicas/ticketera/internal/application/receipt"
	"github.com/jhoicas/ticketera/internal/domain"
	"github.com/jhoicas/ticketera/pkg/logger"
)

// Cabeceras de medida en la respuesta PDF.
const (
	HeaderHeight    = "X-Ticket-Height-Mm"
	HeaderEstimated = "X-Ticket-Estimated-Mm"
	HeaderProfile   = "X-Ticket-Profile"
)

// ReceiptHandler genera y mide tickets a partir de XML UBL.
type ReceiptHandler struct {
	uc  *receipt.RenderUseCase
	log *logger.Logger
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipt.RenderUseCase, log *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{uc: uc, log: log}
}

// Render devuelve el ticket en PDF.
// POST /api/receipts?profile=ticket80
func (h *ReceiptHandler) Render(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "se espera el XML del comprobante"})
	}
	out, err := h.uc.RenderXML(c.Context(), c.Query("profile"), body)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+pdfFileName(out.Record.DocumentNumber)+`"`)
	c.Set(HeaderProfile, out.Result.Profile)
	c.Set(HeaderHeight, formatMM(out.Result.PageHeight))
	c.Set(HeaderEstimated, formatMM(out.Result.EstimatedHeight))
	return c.Status(fiber.StatusOK).Send(out.PDF)
}

// Measure devuelve las alturas sin generar el PDF.
// POST /api/receipts/measure?profile=ticket80
func (h *ReceiptHandler) Measure(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "se espera el XML del comprobante"})
	}
	out, err := h.uc.MeasureXML(c.Context(), c.Query("profile"), body)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.NewMeasureResponse(out))
}

func (h *ReceiptHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrExtraction):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_XML", Message: "no se pudo leer el comprobante"})
	case errors.Is(err, domain.ErrUnknownProfile):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_PROFILE", Message: "perfil no soportado: " + c.Query("profile")})
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg("generar ticket")
	if errors.Is(err, domain.ErrCanvasWrite) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CANVAS_WRITE", Message: "no se pudo escribir el documento"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// pdfFileName deja en el nombre solo letras ASCII, dígitos, '-' y '_'.
func pdfFileName(documentNumber string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return -1
	}, documentNumber)
	if name == "" {
		name = "ticket"
	}
	return name + ".pdf"
}

func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
