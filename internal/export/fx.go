package export

import (
	"github.com/Antonio-99/catalogo/internal/export/service"
	"go.uber.org/fx"
)

var Module = fx.Module("export.service",
	fx.Provide(service.New),
)
