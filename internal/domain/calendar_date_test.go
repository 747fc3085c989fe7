package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	expected := NewCalendarDate(2025, 6, 3)

	for _, value := range []string{"2025-06-03", "2025-06-03T10:00:00Z", "2025-06-03T10:00:00", "2025-06-03 10:00:00", "06/03/2025", " 2025-06-03 "} {
		assert.Equal(t, expected, ParseCalendarDate(value), value)
	}

	for _, value := range []string{"", "amanhã", "2025-13-01", "03/06"} {
		assert.False(t, ParseCalendarDate(value).Valid, value)
	}
}

func TestCalendarDate_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A CalendarDate `json:"a"`
		B CalendarDate `json:"b"`
	}{A: NewCalendarDate(2025, 6, 3)})

	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"2025-06-03","b":null}`, string(data))
}

func TestCalendarDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected CalendarDate
	}{
		{"Data ISO", `{"d":"2025-06-03"}`, NewCalendarDate(2025, 6, 3)},
		{"Barras escapadas", `{"d":"06\/01\/2025"}`, NewCalendarDate(2025, 6, 1)},
		{"Unicode escapado", `{"d":"2025\u002d06\u002d03"}`, NewCalendarDate(2025, 6, 3)},
		{"Nulo", `{"d":null}`, CalendarDate{}},
		{"Número", `{"d":20250603}`, CalendarDate{}},
		{"Texto livre", `{"d":"amanhã"}`, CalendarDate{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				D CalendarDate `json:"d"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &payload))
			assert.Equal(t, tt.expected, payload.D)
		})
	}
}

func TestCalendarDate_ScanAndValue(t *testing.T) {
	var d CalendarDate

	require.NoError(t, d.Scan(time.Date(2025, 6, 3, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, NewCalendarDate(2025, 6, 3), d)

	value, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", value)

	require.NoError(t, d.Scan(nil))
	assert.False(t, d.Valid)

	value, err = d.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	assert.Error(t, d.Scan(42))
}

func TestMonthHelpers(t *testing.T) {
	first, last := MonthBounds(NewCalendarDate(2024, 2, 10))
	assert.Equal(t, NewCalendarDate(2024, 2, 1), first)
	assert.Equal(t, NewCalendarDate(2024, 2, 29), last)

	assert.Equal(t, NewCalendarDate(2025, 2, 1), NewCalendarDate(2025, 1, 31).AddMonths(1))
	assert.Equal(t, NewCalendarDate(2024, 12, 1), NewCalendarDate(2025, 1, 31).AddMonths(-1))

	month, err := ParseMonthKey("2025-06")
	require.NoError(t, err)
	assert.Equal(t, NewCalendarDate(2025, 6, 1), month)

	_, err = ParseMonthKey("06-2025")
	assert.Error(t, err)

	r := MonthRange(NewCalendarDate(2025, 6, 15))
	assert.True(t, r.Contains(NewCalendarDate(2025, 6, 30)))
	assert.False(t, r.Contains(NewCalendarDate(2025, 7, 1)))
	assert.False(t, r.Contains(CalendarDate{}))
}
