package order

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/procurehq/procure/internal/config"
	"github.com/procurehq/procure/internal/messaging"
	repo "github.com/procurehq/procure/internal/repository/order"
)

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Config     config.Config
	Logger     *zap.Logger
	Publisher  messaging.Client
}

// Module provides the order service to Fx.
var Module = fx.Provide(func(p Params) *Service {
	return NewService(p.Repository, p.Logger, p.Publisher, Options{
		Timeout:        p.Config.HTTP.RequestTimeout,
		PublishEnabled: p.Config.Messaging.Enabled,
		Topic:          p.Config.Messaging.Kafka.Topic,
	})
})
