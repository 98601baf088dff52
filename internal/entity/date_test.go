package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain date", `"2024-02-29"`, "2024-02-29"},
		{"timestamp", `"2024-03-01T23:30:00Z"`, "2024-03-01"},
		{"offset timestamp", `"2024-03-01T23:30:00-05:00"`, "2024-03-02"},
		{"offset before midnight UTC", `"2024-03-02T01:30:00+03:00"`, "2024-03-01"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, d.String())
		})
	}

	out, err := json.Marshal(struct {
		Day  Date `json:"day"`
		Zero Date `json:"zero"`
	}{Day: NewDate(2024, time.January, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-01-05","zero":null}`, string(out))
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"05/01/2024"`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 5, 6, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-06", d.String())

	require.NoError(t, d.Scan([]byte("2024-05-07")))
	assert.Equal(t, "2024-05-07", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateDaysUntil(t *testing.T) {
	start := NewDate(2024, time.February, 27)

	assert.Equal(t, 3, start.DaysUntil(NewDate(2024, time.March, 1)))
	assert.Equal(t, -2, start.DaysUntil(NewDate(2024, time.February, 25)))
	assert.Equal(t, 0, start.DaysUntil(start))
	assert.True(t, start.AddDays(2).Equal(NewDate(2024, time.February, 29)))
}

func TestDateOfIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	d := DateOf(time.Date(2024, 1, 1, 2, 0, 0, 0, loc))

	assert.Equal(t, "2024-01-01", d.String())
	assert.Equal(t, time.Monday, d.Weekday())
}
