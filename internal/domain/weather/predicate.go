package weather

// WMO weather-code bands used by the eligibility predicate.
const (
	codeSnowLow      = 71
	codeSnowHigh     = 77
	codeRainLow      = 61
	codeRainHigh     = 67
	codeShowerLow    = 80
	codeShowerHigh   = 82
	codeThunderstorm = 95

	precipThresholdMM  = 8.0
	windThresholdKMH   = 40.0
	coldThresholdCelsius = 0.0
)

// IsBadWeather decides WFH eligibility for a day's snapshot. Nil numeric
// fields default to 0 and a nil code defaults to -1, so missing data never
// trips a code- or threshold-based condition on its own.
func IsBadWeather(s Snapshot) bool {
	temp := 0.0
	if s.TempMin != nil {
		temp = *s.TempMin
	}
	precip := 0.0
	if s.PrecipSum != nil {
		precip = *s.PrecipSum
	}
	wind := 0.0
	if s.WindMax != nil {
		wind = *s.WindMax
	}
	code := -1
	if s.WeatherCode != nil {
		code = *s.WeatherCode
	}

	isCold := temp < coldThresholdCelsius
	isSnow := code >= codeSnowLow && code <= codeSnowHigh
	isThunder := code >= codeThunderstorm
	isHeavyRain := (code >= codeRainLow && code <= codeRainHigh) ||
		(code >= codeShowerLow && code <= codeShowerHigh)

	return isCold || isThunder || isSnow || precip >= precipThresholdMM || wind >= windThresholdKMH || isHeavyRain
}
