package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, "2024-03-01", d.String())

	_, err = Parse("2024-13-01")
	assert.Error(t, err)
	_, err = Parse("01/03/2024")
	assert.Error(t, err)
}

func TestDaysSince(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2024-03-01", "2024-03-01", 0},
		{"2024-03-01", "2024-03-05", 4},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2023-02-28", "2023-03-01", 1},
		{"2024-12-31", "2025-01-02", 2},
		{"2024-03-09", "2024-03-11", 2}, // US DST change
		{"2024-03-05", "2024-03-01", -4},
		{"1000-01-01", "9999-12-31", 3287181},
		{"0001-01-01", "1969-12-31", 719161},
		{"9999-12-31", "0001-01-01", -3652058},
	}
	for _, c := range cases {
		got := MustParse(c.to).DaysSince(MustParse(c.from))
		assert.Equal(t, c.want, got, "%s -> %s", c.from, c.to)
	}
}

func TestFromTimeIgnoresClock(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	late := time.Date(2024, time.March, 10, 23, 30, 0, 0, loc)
	d := FromTime(late)
	assert.Equal(t, "2024-03-10", d.String())
	assert.True(t, d.Equal(New(2024, time.March, 10)))
}

func TestSameMonthAndKey(t *testing.T) {
	a := MustParse("2024-03-01")
	b := MustParse("2024-03-31")
	c := MustParse("2025-03-01")
	assert.True(t, a.SameMonth(b))
	assert.False(t, a.SameMonth(c))
	assert.Equal(t, "2024-03", a.MonthKey())
}

func TestYearBounds(t *testing.T) {
	assert.Equal(t, "2024-01-01", YearStart(2024).String())
	assert.Equal(t, "2024-12-31", YearEnd(2024).String())
}

func TestJSON(t *testing.T) {
	type payload struct {
		Start Date  `json:"start"`
		End   *Date `json:"end,omitempty"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-03-01","end":"2024-03-05"}`), &p))
	assert.Equal(t, "2024-03-01", p.Start.String())
	require.NotNil(t, p.End)
	assert.Equal(t, "2024-03-05", p.End.String())

	out, err := json.Marshal(payload{Start: MustParse("2024-03-01")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-03-01"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"yesterday"}`), &p))
}

func TestPgDateRoundTrip(t *testing.T) {
	d := MustParse("2024-12-31")
	v, err := d.DateValue()
	require.NoError(t, err)
	assert.True(t, v.Valid)

	var scanned Date
	require.NoError(t, scanned.ScanDate(v))
	assert.True(t, scanned.Equal(d))

	require.NoError(t, scanned.ScanDate(pgtype.Date{}))
	assert.True(t, scanned.IsZero())

	assert.Error(t, scanned.ScanDate(pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity}))
}
