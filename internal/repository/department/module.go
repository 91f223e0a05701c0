package department

import "go.uber.org/fx"

// Module provides the department repository to Fx.
var Module = fx.Provide(NewRepository)
