package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/ticketera/internal/application/dto"
	"github.com/jhoicas/ticketera/internal/application/receipt"
	"github.com/jhoicas/ticketera/internal/domain/layout"
	"github.com/jhoicas/ticketera/internal/infrastructure/storage"
	"github.com/jhoicas/ticketera/internal/wire"
	"github.com/jhoicas/ticketera/pkg/config"
	"github.com/jhoicas/ticketera/pkg/jwt"
	"github.com/jhoicas/ticketera/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(cfg).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) *cli.App {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Value: cfg.Batch.InputDir, Usage: "directorio con los XML UBL"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: cfg.Batch.OutputDir, Usage: "directorio de salida de los PDF"},
		&cli.StringFlag{Name: "profile", Aliases: []string{"p"}, Value: cfg.Ticket.Profile, Usage: "perfil de ticket"},
		&cli.StringFlag{Name: "backend", Value: cfg.Ticket.Backend, Usage: "fpdf | vector"},
		&cli.StringFlag{Name: "assets", Value: cfg.Assets.Dir, Usage: "directorio de imágenes"},
		&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Value: cfg.Batch.Workers, Usage: "documentos en paralelo"},
		&cli.DurationFlag{Name: "timeout", Value: cfg.Batch.Timeout, Usage: "plazo por documento"},
		&cli.StringFlag{Name: "debug", Usage: "directorio para volcar el plan de cada documento en JSON"},
		&cli.StringFlag{Name: "log-level", Value: cfg.Log.Level, Usage: "trace, debug, info, warn, error"},
	}

	return &cli.App{
		Name:           cfg.App.Name,
		Usage:          "genera tickets SUNAT de 80 mm a partir de comprobantes UBL",
		DefaultCommand: "render",
		Commands: []*cli.Command{
			{
				Name:  "render",
				Usage: "renderiza todos los XML del directorio de entrada",
				Flags: append(flags,
					&cli.BoolFlag{Name: "skip-existing", Usage: "no regenerar PDFs ya presentes"},
				),
				Action: func(c *cli.Context) error {
					uc, log, err := batchFromFlags(c, cfg)
					if err != nil {
						return err
					}
					sum, err := uc.Run(c.Context)
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}
					log.Info().
						Str("job_id", sum.JobID).
						Int("succeeded", sum.Succeeded).
						Int("failed", sum.Failed).
						Msg("listo")
					if sum.Failed > 0 {
						return cli.Exit(fmt.Sprintf("%d de %d comprobantes fallaron", sum.Failed, sum.Total), 1)
					}
					return nil
				},
			},
			{
				Name:  "measure",
				Usage: "calcula las alturas sin escribir PDFs e imprime un reporte JSON",
				Flags: flags,
				Action: func(c *cli.Context) error {
					uc, _, err := batchFromFlags(c, cfg)
					if err != nil {
						return err
					}
					sum, err := uc.Measure(c.Context)
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}
					return layout.WriteDebugJSON(c.App.Writer, dto.NewBatchReport(sum))
				},
			},
			{
				Name:  "profiles",
				Usage: "lista los perfiles disponibles",
				Action: func(c *cli.Context) error {
					for _, n := range layout.ProfileNames() {
						fmt.Fprintln(c.App.Writer, n)
					}
					return nil
				},
			},
			{
				Name:  "token",
				Usage: "emite un token de cliente para la API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "client", Aliases: []string{"c"}, Required: true, Usage: "identificador del cliente"},
					&cli.StringSliceFlag{Name: "scope", Aliases: []string{"s"}, Usage: "receipts:render | receipts:measure (vacío concede todos)"},
					&cli.IntFlag{Name: "ttl", Value: cfg.JWT.Expiration, Usage: "vigencia en minutos"},
				},
				Action: func(c *cli.Context) error {
					return issueToken(c, cfg)
				},
			},
		},
	}
}

// batchFromFlags aplica los flags sobre la configuración y arma el lote.
func batchFromFlags(c *cli.Context, base *config.Config) (*receipt.BatchUseCase, *logger.Logger, error) {
	cfg := *base
	cfg.Ticket.Profile = c.String("profile")
	cfg.Ticket.Backend = c.String("backend")
	cfg.Assets.Dir = c.String("assets")

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: c.String("log-level"), Out: os.Stderr})

	fs := afero.NewOsFs()
	render, err := wire.RenderUseCase(&cfg, fs, log)
	if err != nil {
		return nil, nil, cli.Exit(err.Error(), 2)
	}
	batch := receipt.NewBatchUseCase(render, storage.NewFSStore(fs), receipt.BatchConfig{
		InputDir:     c.String("in"),
		OutputDir:    c.String("out"),
		Profile:      cfg.Ticket.Profile,
		Workers:      c.Int("workers"),
		Timeout:      c.Duration("timeout"),
		DebugDir:     c.String("debug"),
		SkipExisting: c.Bool("skip-existing"),
	}, log)
	return batch, log, nil
}

// issueToken firma un token con el secreto y emisor configurados.
func issueToken(c *cli.Context, cfg *config.Config) error {
	if !cfg.JWT.Enabled() {
		return cli.Exit("JWT_SECRET no configurado", 2)
	}
	scopes := c.StringSlice("scope")
	for _, s := range scopes {
		if s != jwt.ScopeRender && s != jwt.ScopeMeasure {
			return cli.Exit(fmt.Sprintf("scope desconocido %q", s), 2)
		}
	}
	ttl := c.Int("ttl")
	if ttl <= 0 {
		return cli.Exit(fmt.Sprintf("ttl=%d inválido", ttl), 2)
	}
	token, err := jwt.Generate(cfg.JWT.Secret, c.String("client"), cfg.JWT.Issuer, ttl, scopes...)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	fmt.Fprintln(c.App.Writer, token)
	return nil
}
