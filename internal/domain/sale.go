package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HouseAdvisor é o vendedor sentinela para vendas sem vendedor individual
const HouseAdvisor = "House"

// Sale representa uma venda de veículo
type Sale struct {
	ID           string        `json:"id"`
	ClientName   string        `json:"clientName"`
	StockNumber  string        `json:"stockNumber"`
	Year         int           `json:"year,omitempty"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Color        string        `json:"color"`
	Advisor      string        `json:"advisor"`
	Type         string        `json:"type"`
	Delivered    DeliveredFlag `json:"delivered"`
	DeliveryDate CalendarDate  `json:"deliveryDate"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// IsDelivered retorna o status de entrega normalizado
func (s Sale) IsDelivered() bool {
	return bool(s.Delivered)
}

// DeliveredFlag é o status de entrega já normalizado para booleano.
// Na ingestão (JSON ou banco) aceita 1, "1", true e "Yes" como entregue.
type DeliveredFlag bool

// IsDelivered aplica a regra permissiva de entrega:
// verdadeiro para true, 1, "1" e "Yes" (case-sensitive); falso para o resto
func IsDelivered(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case DeliveredFlag:
		return bool(v)
	case string:
		return v == "1" || v == "Yes"
	case []byte:
		return IsDelivered(string(v))
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 1
	case int:
		return v == 1
	case int8:
		return v == 1
	case int16:
		return v == 1
	case int32:
		return v == 1
	case int64:
		return v == 1
	case uint:
		return v == 1
	case uint8:
		return v == 1
	case uint16:
		return v == 1
	case uint32:
		return v == 1
	case uint64:
		return v == 1
	case float32:
		return v == 1
	case float64:
		return v == 1
	default:
		return false
	}
}

func (f *DeliveredFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = false
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = false
			return nil
		}
		*f = DeliveredFlag(IsDelivered(s))
	case 't', 'f', 'n':
		*f = DeliveredFlag(bytes.Equal(data, []byte("true")))
	default:
		*f = DeliveredFlag(IsDelivered(json.Number(data)))
	}

	return nil
}

// Scan implementa sql.Scanner, normalizando codificações legadas
func (f *DeliveredFlag) Scan(src any) error {
	*f = DeliveredFlag(IsDelivered(src))
	return nil
}

// Value implementa driver.Valuer
func (f DeliveredFlag) Value() (driver.Value, error) {
	return bool(f), nil
}

// saleColumns mapeia as colunas da tabela de vendas usadas em filtros e ordenação
var saleColumns = map[string]func(Sale) string{
	"id":           func(s Sale) string { return s.ID },
	"clientName":   func(s Sale) string { return s.ClientName },
	"stockNumber":  func(s Sale) string { return s.StockNumber },
	"year":         func(s Sale) string { return yearString(s.Year) },
	"make":         func(s Sale) string { return s.Make },
	"model":        func(s Sale) string { return s.Model },
	"color":        func(s Sale) string { return s.Color },
	"advisor":      func(s Sale) string { return s.Advisor },
	"type":         func(s Sale) string { return s.Type },
	"delivered":    func(s Sale) string { return strconv.FormatBool(s.IsDelivered()) },
	"deliveryDate": func(s Sale) string { return s.DeliveryDate.String() },
}

func yearString(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}

// IsSaleColumn indica se a coluna pode ser usada para filtro ou ordenação
func IsSaleColumn(column string) bool {
	_, ok := saleColumns[column]
	return ok
}

// Field retorna o valor textual de uma coluna da venda
func (s Sale) Field(column string) (string, error) {
	getter, ok := saleColumns[column]
	if !ok {
		return "", fmt.Errorf("coluna desconhecida: %s", column)
	}
	return getter(s), nil
}

// ShortAdvisorName abrevia o nome do vendedor, ex.: "John Doe" vira "John D."
func ShortAdvisorName(advisor string) string {
	parts := strings.Fields(advisor)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	initial := []rune(parts[1])[0]
	return fmt.Sprintf("%s %c.", parts[0], initial)
}
