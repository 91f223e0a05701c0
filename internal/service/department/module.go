package department

import (
	"go.uber.org/fx"

	"github.com/procurehq/procure/internal/config"
	repo "github.com/procurehq/procure/internal/repository/department"
)

// Module provides the department service to Fx.
var Module = fx.Provide(func(repository *repo.Repository, cfg config.Config) *Service {
	return NewService(repository, cfg.HTTP.RequestTimeout)
})
