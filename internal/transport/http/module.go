package http

import (
	"go.uber.org/fx"

	attachmenttransport "github.com/procurehq/procure/internal/transport/http/attachment"
	committeetransport "github.com/procurehq/procure/internal/transport/http/committee"
	departmenttransport "github.com/procurehq/procure/internal/transport/http/department"
	estimatortransport "github.com/procurehq/procure/internal/transport/http/estimator"
	ordertransport "github.com/procurehq/procure/internal/transport/http/order"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	ordertransport.Module,
	committeetransport.Module,
	departmenttransport.Module,
	estimatortransport.Module,
	attachmenttransport.Module,
)
