package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MonthKeyLayout é o formato das chaves de mês usadas em metas (YYYY-MM)
const MonthKeyLayout = "2006-01"

// dateLayouts são os formatos aceitos na ingestão de datas de entrega
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
	"01/02/2006",
}

// CalendarDate representa uma data sem hora (meia-noite UTC).
// Datas inválidas ou ausentes ficam com Valid=false e nunca geram erro.
type CalendarDate struct {
	Time  time.Time
	Valid bool
}

// DateOf converte um instante para a data de calendário no seu próprio fuso
func DateOf(t time.Time) CalendarDate {
	if t.IsZero() {
		return CalendarDate{}
	}
	return CalendarDate{Time: midnight(t), Valid: true}
}

// NewCalendarDate cria uma data válida a partir de ano, mês e dia
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseCalendarDate tenta interpretar a string em todos os formatos conhecidos
func ParseCalendarDate(value string) CalendarDate {
	value = strings.TrimSpace(value)
	if value == "" {
		return CalendarDate{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOf(t)
		}
	}

	return CalendarDate{}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Before indica se d é anterior a other (granularidade de dia)
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time.Before(other.Time)
}

// After indica se d é posterior a other (granularidade de dia)
func (d CalendarDate) After(other CalendarDate) bool {
	return d.Time.After(other.Time)
}

func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Valid == other.Valid && d.Time.Equal(other.Time)
}

// MonthKey retorna a chave YYYY-MM do mês da data
func (d CalendarDate) MonthKey() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(MonthKeyLayout)
}

func (d CalendarDate) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(time.DateOnly)
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(time.DateOnly) + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = CalendarDate{}
		return nil
	}

	// Qualquer coisa que não seja string vira data inválida
	if data[0] != '"' {
		*d = CalendarDate{}
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		*d = CalendarDate{}
		return nil
	}

	*d = ParseCalendarDate(value)
	return nil
}

// Scan implementa sql.Scanner
func (d *CalendarDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = CalendarDate{}
	case time.Time:
		*d = DateOf(v)
	case string:
		*d = ParseCalendarDate(v)
	case []byte:
		*d = ParseCalendarDate(string(v))
	default:
		return fmt.Errorf("tipo não suportado para CalendarDate: %T", src)
	}
	return nil
}

// Value implementa driver.Valuer
func (d CalendarDate) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.Format(time.DateOnly), nil
}

// ParseMonthKey valida uma chave YYYY-MM e retorna o primeiro dia do mês
func ParseMonthKey(month string) (CalendarDate, error) {
	t, err := time.Parse(MonthKeyLayout, month)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("mês inválido %q, use o formato YYYY-MM", month)
	}
	return DateOf(t), nil
}

// MonthBounds retorna o primeiro e o último dia do mês da data
func MonthBounds(d CalendarDate) (CalendarDate, CalendarDate) {
	first := NewCalendarDate(d.Time.Year(), d.Time.Month(), 1)
	last := CalendarDate{Time: first.Time.AddDate(0, 1, -1), Valid: true}
	return first, last
}

// AddMonths desloca a data em n meses mantendo o dia 1 quando necessário
func (d CalendarDate) AddMonths(n int) CalendarDate {
	first := NewCalendarDate(d.Time.Year(), d.Time.Month(), 1)
	return CalendarDate{Time: first.Time.AddDate(0, n, 0), Valid: true}
}

// DateRange é um intervalo fechado de datas
type DateRange struct {
	Start CalendarDate `json:"start"`
	End   CalendarDate `json:"end"`
}

// Contains indica se a data pertence ao intervalo; datas inválidas nunca pertencem
func (r DateRange) Contains(d CalendarDate) bool {
	if !d.Valid {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// MonthRange retorna o intervalo do mês da data
func MonthRange(d CalendarDate) DateRange {
	start, end := MonthBounds(d)
	return DateRange{Start: start, End: end}
}

// AddDays desloca a data em n dias
func (d CalendarDate) AddDays(n int) CalendarDate {
	if !d.Valid {
		return d
	}
	return CalendarDate{Time: d.Time.AddDate(0, 0, n), Valid: true}
}

// DateIn converte o instante para a data de calendário no fuso informado
func DateIn(t time.Time, loc *time.Location) CalendarDate {
	if loc != nil {
		t = t.In(loc)
	}
	return DateOf(t)
}
