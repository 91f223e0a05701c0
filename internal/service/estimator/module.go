package estimator

import (
	"go.uber.org/fx"

	"github.com/procurehq/procure/internal/config"
	repo "github.com/procurehq/procure/internal/repository/estimator"
)

// Module provides the estimator service to Fx.
var Module = fx.Provide(func(repository *repo.Repository, cfg config.Config) *Service {
	return NewService(repository, cfg.HTTP.RequestTimeout)
})
