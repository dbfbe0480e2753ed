package weather

import (
	"math"
	"time"
)

// Synthetic fabricates placeholder conditions for now. The reading is
// deterministic in the hour of day: temperature follows a sine curve
// peaking mid-afternoon, and the condition tracks the same clock so
// repeated renders within an hour agree.
func Synthetic(now time.Time) Conditions {
	hour := float64(now.Hour())

	// 12C base with an 8C swing, coolest around 03:00, warmest
	// around 15:00.
	temp := 12 + 8*math.Sin((hour-9)*math.Pi/12)

	condition := "Clear"
	description := "clear sky"
	switch {
	case now.Hour() < 6:
		condition, description = "Clouds", "overcast night"
	case now.Hour() < 10:
		condition, description = "Mist", "morning mist"
	case now.Hour() >= 19:
		condition, description = "Clouds", "scattered clouds"
	}

	return Conditions{
		Location:    "Your area",
		Condition:   condition,
		Description: description,
		TempC:       round1(temp),
		MinC:        round1(temp - 3),
		MaxC:        round1(temp + 3),
		Humidity:    55 + now.Hour()%20,
		WindKph:     8,
		Synthetic:   true,
		FetchedAt:   now,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
