package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestIsBadWeather(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"clear and mild", Snapshot{TempMin: f(10), PrecipSum: f(0), WindMax: f(5), WeatherCode: i(0)}, false},
		{"below freezing", Snapshot{TempMin: f(-1), PrecipSum: f(0), WindMax: f(0), WeatherCode: i(0)}, true},
		{"exactly freezing is fine", Snapshot{TempMin: f(0), PrecipSum: f(0), WindMax: f(0), WeatherCode: i(0)}, false},
		{"snow code low edge", Snapshot{TempMin: f(2), WeatherCode: i(71)}, true},
		{"snow code high edge", Snapshot{TempMin: f(2), WeatherCode: i(77)}, true},
		{"code 78 outside snow band", Snapshot{TempMin: f(2), WeatherCode: i(78)}, false},
		{"thunderstorm", Snapshot{TempMin: f(15), WeatherCode: i(95)}, true},
		{"thunderstorm with hail", Snapshot{TempMin: f(15), WeatherCode: i(99)}, true},
		{"rain band", Snapshot{TempMin: f(5), WeatherCode: i(63)}, true},
		{"rain band upper edge", Snapshot{TempMin: f(5), WeatherCode: i(67)}, true},
		{"code 68 between bands", Snapshot{TempMin: f(5), WeatherCode: i(68)}, false},
		{"shower band", Snapshot{TempMin: f(5), WeatherCode: i(81)}, true},
		{"heavy precipitation", Snapshot{TempMin: f(5), PrecipSum: f(8), WeatherCode: i(0)}, true},
		{"precipitation just under", Snapshot{TempMin: f(5), PrecipSum: f(7.9), WeatherCode: i(0)}, false},
		{"strong wind", Snapshot{TempMin: f(5), WindMax: f(40), WeatherCode: i(0)}, true},
		{"wind just under", Snapshot{TempMin: f(5), WindMax: f(39.9), WeatherCode: i(0)}, false},
		{"all fields nil defaults to fine", Snapshot{}, false},
		{"nil code never matches a band", Snapshot{TempMin: f(5), PrecipSum: f(0), WindMax: f(0)}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsBadWeather(c.snap))
		})
	}
}
