package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-tracker-api/internal/usecases/dashboard"
)

// queryFlag interpreta parâmetros booleanos opcionais; ausentes ou inválidos valem false
func queryFlag(r *http.Request, name string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && value
}

// GetBoard retorna o quadro de chips do mês.
// ?currentUserFirst=true e ?houseLast=true ativam os modificadores de ordenação.
func GetBoard(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}

		board, err := service.GetBoard(session, dashboard.BoardOptions{
			Month:            r.URL.Query().Get("month"),
			CurrentUserFirst: queryFlag(r, "currentUserFirst"),
			HouseLast:        queryFlag(r, "houseLast"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar quadro de vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, board)
	}
}

func GetTypeTotals(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := service.GetTypeTotals(r.URL.Query().Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular totais por tipo")
			return
		}

		writeJSON(w, r, http.StatusOK, totals)
	}
}

// GetSalespersonDashboard retorna o painel do vendedor (?advisor=, padrão o usuário logado)
func GetSalespersonDashboard(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}

		board, err := service.GetSalespersonDashboard(session, r.URL.Query().Get("advisor"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar painel do vendedor")
			return
		}

		writeJSON(w, r, http.StatusOK, board)
	}
}

func GetPace(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}

		pace, err := service.GetPace(session, r.URL.Query().Get("advisor"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular ritmo do mês")
			return
		}

		writeJSON(w, r, http.StatusOK, pace)
	}
}

// GetManagerDashboard retorna o painel gerencial (?timeFrame=&start=&end=)
func GetManagerDashboard(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		board, err := service.GetManagerDashboard(dashboard.ManagerFilter{
			TimeFrame: query.Get("timeFrame"),
			Start:     query.Get("start"),
			End:       query.Get("end"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar painel gerencial")
			return
		}

		writeJSON(w, r, http.StatusOK, board)
	}
}

func GetTeamGoalSummary(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetTeamGoalSummary(r.URL.Query().Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consolidar meta da equipe")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}
