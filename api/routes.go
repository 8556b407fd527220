package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/cruzjeff225/GastoApp/internal/handlers/v1/category"
	"github.com/cruzjeff225/GastoApp/internal/handlers/v1/goal"
	"github.com/cruzjeff225/GastoApp/internal/handlers/v1/overview"
	"github.com/cruzjeff225/GastoApp/internal/handlers/v1/status"
	"github.com/cruzjeff225/GastoApp/internal/handlers/v1/transaction"
	"github.com/cruzjeff225/GastoApp/internal/logging"
	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Verifier middleware.TokenVerifier
}

// Handler builds the full HTTP stack: huma API with all endpoints registered,
// auth on everything except status and the category catalog, wrapped in the
// request logging middleware.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()
	apiConfig := huma.DefaultConfig("GastoApp", "1.0.0")
	humaAPI := humago.New(mux, apiConfig)

	humaAPI.UseMiddleware(middleware.NewAuth(humaAPI, r.Verifier, "get-status", "list-categories"))

	status.NewHandler().Register(humaAPI)
	category.NewHandler().Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewSummaryHandler(r.Service.Transaction).Register(humaAPI)

	goal.NewCreateGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewListGoalsHandler(r.Service.Goal).Register(humaAPI)
	goal.NewGetGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewUpdateGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewDeleteGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewDepositHandler(r.Service.Goal).Register(humaAPI)

	overview.NewHandler(r.Service).Register(humaAPI)

	return logging.Middleware(r.Logger, mux)
}

// Server builds the HTTP server listening on the configured port.
func (r *Rest) Server() *http.Server {
	return &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
