package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticketera/internal/application/dto"
	"github.com/jhoicas/ticketera/internal/application/receipt"
	"github.com/jhoicas/ticketera/pkg/jwt"
	"github.com/jhoicas/ticketera/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	Render    *receipt.RenderUseCase
	Log       *logger.Logger
	JWTSecret string // vacío = API abierta
	JWTIssuer string
	DocsFile  string // swagger.json; vacío o inexistente = sin /docs
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Swagger UI: http://localhost:<port>/docs
	if deps.DocsFile != "" {
		if _, err := os.Stat(deps.DocsFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.DocsFile,
				Path:     "docs",
				Title:    deps.AppName + " API",
			}))
		} else {
			deps.Log.Warn().Err(err).Str("file", deps.DocsFile).Msg("documentación de la API no disponible")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName, Profiles: deps.Render.Profiles()})
	})

	api := app.Group("/api")
	receipts := api.Group("/receipts")
	renderGuard, measureGuard := passThrough, passThrough
	if deps.JWTSecret != "" {
		receipts.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
		renderGuard = RequireScope(jwt.ScopeRender)
		measureGuard = RequireScope(jwt.ScopeMeasure)
	}

	h := NewReceiptHandler(deps.Render, deps.Log)
	receipts.Post("/", renderGuard, h.Render)
	receipts.Post("/measure", measureGuard, h.Measure)
}

func passThrough(c *fiber.Ctx) error { return c.Next() }
