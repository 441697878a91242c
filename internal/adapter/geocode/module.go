package geocode

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/trangvu/shopmart/internal/config"
)

// Module exposes the geocoding client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.GeocoderAddress, p.Config.GeocoderCountry, p.Logger)
}
