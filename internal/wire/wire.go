// Package wire arma los casos de uso a partir de la configuración; lo
// comparten cmd/api y cmd/ticketera.
package wire

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/jhoicas/ticketera/internal/application/receipt"
	"github.com/jhoicas/ticketera/internal/domain/layout"
	"github.com/jhoicas/ticketera/internal/infrastructure/assets"
	"github.com/jhoicas/ticketera/internal/infrastructure/sink"
	"github.com/jhoicas/ticketera/internal/infrastructure/ubl"
	"github.com/jhoicas/ticketera/pkg/config"
	"github.com/jhoicas/ticketera/pkg/logger"
)

// Profiles todos los perfiles con los límites de alto e imágenes configurados.
func Profiles(cfg *config.Config) ([]layout.Profile, error) {
	names := layout.ProfileNames()
	out := make([]layout.Profile, 0, len(names))
	for _, n := range names {
		p, err := layout.LookupProfile(n)
		if err != nil {
			return nil, err
		}
		p = p.WithBounds(cfg.Ticket.MinHeight, cfg.Ticket.MaxHeight).
			WithImages(cfg.Assets.Logo, cfg.Assets.FooterDefault)
		out = append(out, p)
	}
	return out, nil
}

// RenderUseCase motor por perfil, extractor UBL, imágenes del directorio de
// assets y el backend de salida configurado.
func RenderUseCase(cfg *config.Config, fs afero.Fs, log *logger.Logger) (*receipt.RenderUseCase, error) {
	profiles, err := Profiles(cfg)
	if err != nil {
		return nil, err
	}
	images := assets.NewProvider(fs, cfg.Assets.Dir)
	engines, err := receipt.BuildEngines(profiles, images)
	if err != nil {
		return nil, err
	}
	canvases, err := sink.NewFactory(cfg.Ticket.Backend, cfg.App.Name)
	if err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	return receipt.NewRenderUseCase(engines, cfg.Ticket.Profile, ubl.NewExtractor(), canvases, log)
}
