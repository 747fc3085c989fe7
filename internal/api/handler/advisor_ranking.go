package handler

import (
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

// GetAdvisorRanking retorna o ranking consolidado dos vendedores no mês (?month=YYYY-MM)
func GetAdvisorRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		if month != "" {
			if _, err := domain.ParseMonthKey(month); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
		}

		result, err := service.GetAdvisorRanking(month)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking dos vendedores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking dos vendedores", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
