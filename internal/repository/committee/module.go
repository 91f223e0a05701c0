package committee

import "go.uber.org/fx"

// Module provides the committee repository to Fx.
var Module = fx.Provide(NewRepository)
