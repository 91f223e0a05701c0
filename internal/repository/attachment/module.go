package attachment

import "go.uber.org/fx"

// Module provides the attachment repository to Fx.
var Module = fx.Provide(NewRepository)
