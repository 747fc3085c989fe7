package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/goal"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON escreve a resposta com o status informado
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para o envelope da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		authErr      *authenticating.AuthError
		saleErr      *selling.SaleError
		goalErr      *goal.GoalError
		dashboardErr *dashboard.DashboardError
		code         string
	)

	switch {
	case errors.As(err, &authErr):
		code = authErr.Code
	case errors.As(err, &saleErr):
		code = saleErr.Code
	case errors.As(err, &goalErr):
		code = goalErr.Code
	case errors.As(err, &dashboardErr):
		code = dashboardErr.Code
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
		return
	}

	logger := log.ForContext(r.Context()).WithError(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(fallback)
		apiErrors.WriteError(w, code, fallback, nil)
		return
	}

	logger.Warn(fallback)
	apiErrors.WriteError(w, code, err.Error(), nil)
}

// requireSession recupera a sessão gravada pelo AuthMiddleware
func requireSession(w http.ResponseWriter, r *http.Request) (domain.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return domain.Session{}, false
	}
	return session, true
}
