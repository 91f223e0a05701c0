package estimator

import "go.uber.org/fx"

// Module provides the estimator repository to Fx.
var Module = fx.Provide(NewRepository)
