package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/goal"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

type GoalRequest struct {
	GoalCount *int `json:"goal_count"`
}

// decodeGoalCount lê a meta do corpo; valores negativos são recusados no caso de uso
func decodeGoalCount(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return 0, false
	}

	if req.GoalCount == nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "goal_count é obrigatório", nil)
		return 0, false
	}

	return *req.GoalCount, true
}

// ListMonthGoals lista as metas individuais do mês (?month=YYYY-MM, padrão mês atual)
func ListMonthGoals(service goal.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := service.ListMonthGoals(r.URL.Query().Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar metas")
			return
		}

		writeJSON(w, r, http.StatusOK, goals)
	}
}

func GetAdvisorGoal(service goal.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		g, err := service.GetAdvisorGoal(session, params.ByName("advisor"), params.ByName("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar meta")
			return
		}

		writeJSON(w, r, http.StatusOK, g)
	}
}

// SetAdvisorGoal grava a meta do vendedor; somente o próprio vendedor pode alterar
func SetAdvisorGoal(service goal.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - SetAdvisorGoal")

		session, ok := requireSession(w, r)
		if !ok {
			return
		}

		goalCount, ok := decodeGoalCount(w, r)
		if !ok {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		g, err := service.SetAdvisorGoal(session, params.ByName("advisor"), params.ByName("month"), goalCount)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gravar meta")
			return
		}

		writeJSON(w, r, http.StatusOK, g)
	}
}

func GetTeamGoal(service goal.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		g, err := service.GetTeamGoal(month)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar meta da equipe")
			return
		}

		writeJSON(w, r, http.StatusOK, g)
	}
}

func SetTeamGoal(service goal.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - SetTeamGoal")

		goalCount, ok := decodeGoalCount(w, r)
		if !ok {
			return
		}

		month := httprouter.ParamsFromContext(r.Context()).ByName("month")
		g, err := service.SetTeamGoal(month, goalCount)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gravar meta da equipe")
			return
		}

		writeJSON(w, r, http.StatusOK, g)
	}
}

// GetTeamProgress retorna o acompanhamento da meta da equipe no mês
func GetTeamProgress(service goal.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		progress, err := service.GetTeamProgress(month)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular progresso da equipe")
			return
		}

		writeJSON(w, r, http.StatusOK, progress)
	}
}
