package logic

import (
	"math/rand"
	"testing"
)

// testRNG wraps a fixed-seed source for reproducible draws.
type testRNG struct {
	src *rand.Rand
}

func newTestRNG(seed int64) *testRNG {
	return &testRNG{src: rand.New(rand.NewSource(seed))}
}

func (r *testRNG) Float64() float64 { return r.src.Float64() }
func (r *testRNG) Intn(n int) int   { return r.src.Intn(n) }

func TestGenerateRaceInfoRanges(t *testing.T) {
	tests := []struct {
		name        string
		circuit     string
		weather     string
		minTemp     int
		maxTemp     int
		minHumidity float64
		maxHumidity float64
		minWind     float64
		maxWind     float64
	}{
		{
			name:    "Bahrain dry",
			circuit: "Bahrain International Circuit",
			weather: WeatherDry,
			minTemp: 25, maxTemp: 35,
			minHumidity: 30, maxHumidity: 70,
			minWind: 0, maxWind: 10,
		},
		{
			name:    "Spa wet",
			circuit: "Circuit de Spa-Francorchamps",
			weather: WeatherWet,
			minTemp: 10, maxTemp: 20,
			minHumidity: 80, maxHumidity: 95,
			minWind: 10, maxWind: 20,
		},
		{
			name:    "Silverstone mixed",
			circuit: "Silverstone Circuit",
			weather: WeatherMixed,
			minTemp: 12, maxTemp: 22,
			minHumidity: 60, maxHumidity: 85,
			minWind: 5, maxWind: 20,
		},
		{
			name:    "Unknown circuit falls back to temperate band",
			circuit: "Nürburgring Nordschleife",
			weather: WeatherDry,
			minTemp: 20, maxTemp: 30,
			minHumidity: 30, maxHumidity: 70,
			minWind: 0, maxWind: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := newTestRNG(7)
			for i := 0; i < 200; i++ {
				info := generateRaceInfo(rng, tt.circuit, tt.weather)

				if info.Circuit != tt.circuit || info.Weather != tt.weather {
					t.Fatalf("race info echoes %q/%q, want %q/%q", info.Circuit, info.Weather, tt.circuit, tt.weather)
				}
				if info.Temperature < tt.minTemp || info.Temperature > tt.maxTemp {
					t.Fatalf("temperature %d outside [%d,%d]", info.Temperature, tt.minTemp, tt.maxTemp)
				}
				if info.Humidity < tt.minHumidity || info.Humidity > tt.maxHumidity {
					t.Fatalf("humidity %v outside [%v,%v]", info.Humidity, tt.minHumidity, tt.maxHumidity)
				}
				if info.WindSpeed < tt.minWind || info.WindSpeed > tt.maxWind {
					t.Fatalf("wind %v outside [%v,%v]", info.WindSpeed, tt.minWind, tt.maxWind)
				}
				if info.TrackTemp < float64(info.Temperature)+5 || info.TrackTemp > float64(info.Temperature)+25 {
					t.Fatalf("track temp %v outside air+[5,25] (air %d)", info.TrackTemp, info.Temperature)
				}
			}
		})
	}
}

func TestGenerateRaceInfoDeterministicWithSeed(t *testing.T) {
	a := generateRaceInfo(newTestRNG(42), "Circuit de Monaco", WeatherDry)
	b := generateRaceInfo(newTestRNG(42), "Circuit de Monaco", WeatherDry)
	if a != b {
		t.Errorf("same seed produced different conditions: %+v vs %+v", a, b)
	}
}
