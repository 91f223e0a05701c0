package attachment

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/procurehq/procure/internal/config"
	repo "github.com/procurehq/procure/internal/repository/attachment"
	"github.com/procurehq/procure/internal/storage"
)

// Module provides the attachment service to Fx.
var Module = fx.Provide(func(repository *repo.Repository, files *storage.FileStore, cfg config.Config, logger *zap.Logger) *Service {
	return NewService(repository, files, logger, cfg.HTTP.RequestTimeout)
})
