package app

import (
	"go.uber.org/fx"

	"github.com/procurehq/procure/internal/config"
	"github.com/procurehq/procure/internal/database"
	"github.com/procurehq/procure/internal/logger"
	"github.com/procurehq/procure/internal/messaging"
	"github.com/procurehq/procure/internal/observability"
	repositoryattachment "github.com/procurehq/procure/internal/repository/attachment"
	repositorycommittee "github.com/procurehq/procure/internal/repository/committee"
	repositorydepartment "github.com/procurehq/procure/internal/repository/department"
	repositoryestimator "github.com/procurehq/procure/internal/repository/estimator"
	repositoryorder "github.com/procurehq/procure/internal/repository/order"
	httpserver "github.com/procurehq/procure/internal/server/http"
	serviceattachment "github.com/procurehq/procure/internal/service/attachment"
	servicecommittee "github.com/procurehq/procure/internal/service/committee"
	servicedepartment "github.com/procurehq/procure/internal/service/department"
	serviceestimator "github.com/procurehq/procure/internal/service/estimator"
	serviceorder "github.com/procurehq/procure/internal/service/order"
	"github.com/procurehq/procure/internal/storage"
	transporthttp "github.com/procurehq/procure/internal/transport/http"
	"github.com/procurehq/procure/internal/worker"
	workerorder "github.com/procurehq/procure/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	storage.Module,
	repositoryorder.Module,
	repositorycommittee.Module,
	repositorydepartment.Module,
	repositoryestimator.Module,
	repositoryattachment.Module,
	serviceorder.Module,
	servicecommittee.Module,
	servicedepartment.Module,
	serviceestimator.Module,
	serviceattachment.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
