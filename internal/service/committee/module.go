package committee

import (
	"go.uber.org/fx"

	"github.com/procurehq/procure/internal/config"
	repo "github.com/procurehq/procure/internal/repository/committee"
)

// Module provides the committee service to Fx.
var Module = fx.Provide(func(repository *repo.Repository, cfg config.Config) *Service {
	return NewService(repository, cfg.HTTP.RequestTimeout)
})
