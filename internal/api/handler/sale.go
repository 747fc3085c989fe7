package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

// columnFilterPrefix identifica os filtros de coluna da tabela, ex.: f.clientName=ana
const columnFilterPrefix = "f."

// parseSaleFilter monta o filtro de listagem a partir da query string
func parseSaleFilter(query url.Values) (domain.SaleFilter, error) {
	filter := domain.SaleFilter{
		Advisor: query.Get("advisor"),
		Month:   query.Get("month"),
		Type:    query.Get("type"),
		SortBy:  query.Get("sort"),
		SortDir: strings.ToLower(query.Get("dir")),
	}

	if raw := query.Get("delivered"); raw != "" {
		delivered, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.SaleFilter{}, err
		}
		filter.Delivered = &delivered
	}

	for key, values := range query {
		column, ok := strings.CutPrefix(key, columnFilterPrefix)
		if !ok || len(values) == 0 || values[0] == "" {
			continue
		}
		if filter.Columns == nil {
			filter.Columns = make(map[string]string)
		}
		filter.Columns[column] = values[0]
	}

	return filter, nil
}

func ListSales(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseSaleFilter(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro delivered inválido", nil)
			return
		}

		sales, err := service.ListSales(filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, sales)
	}
}

func GetSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		sale, err := service.GetSale(id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar venda")
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	}
}

func CreateSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - CreateSale")

		var sale domain.Sale
		if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateSale(&sale)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar venda")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func UpdateSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - UpdateSale")

		var sale domain.Sale
		if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// O ID da URL prevalece sobre o do corpo
		sale.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateSale(&sale)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar venda")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - DeleteSale")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteSale(id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover venda")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListPendingSales retorna os vendedores com entregas pendentes nos próximos meses
func ListPendingSales(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := service.ListPendingByAdvisor()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas pendentes")
			return
		}

		writeJSON(w, r, http.StatusOK, pending)
	}
}
