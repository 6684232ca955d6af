package logic

import (
	"github.com/f1racepredictor/race-api/internal/data"
	"github.com/f1racepredictor/race-api/internal/models"
)

// Weather condition identifiers accepted by prediction requests.
const (
	WeatherDry   = "Dry"
	WeatherMixed = "Mixed"
	WeatherWet   = "Wet"
)

// generateRaceInfo draws the ambient conditions for one prediction request.
// Air temperature comes from the circuit's seasonal band; humidity and wind
// depend on the weather condition; track temperature always sits 5-25°C
// above air temperature.
func generateRaceInfo(rng RNG, circuit, weather string) models.RaceInfo {
	minTemp, maxTemp := data.TemperatureRange(circuit)
	temperature := minTemp + rng.Intn(maxTemp-minTemp+1)

	var humidity, windSpeed float64
	switch weather {
	case WeatherWet:
		humidity = 80 + rng.Float64()*15
		windSpeed = 10 + rng.Float64()*10
	case WeatherMixed:
		humidity = 60 + rng.Float64()*25
		windSpeed = 5 + rng.Float64()*15
	default:
		humidity = 30 + rng.Float64()*40
		windSpeed = rng.Float64() * 10
	}

	trackTemp := float64(temperature) + 5 + rng.Float64()*20

	return models.RaceInfo{
		Circuit:     circuit,
		Weather:     weather,
		Temperature: temperature,
		TrackTemp:   trackTemp,
		Humidity:    humidity,
		WindSpeed:   windSpeed,
	}
}
