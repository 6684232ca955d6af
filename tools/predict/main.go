package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/f1racepredictor/race-api/internal/models"
)

// Posts a sample race to a running API instance and prints the predicted
// finishing order. Handy for eyeballing probability changes while tuning.
func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	request := models.PredictRequest{
		Circuit: "Circuit de Monaco",
		Weather: "Wet",
		Entries: []models.RaceEntry{
			{Driver: "Max Verstappen", Constructor: "Red Bull Racing", Grid: 1},
			{Driver: "Lewis Hamilton", Constructor: "Ferrari", Grid: 2},
			{Driver: "Lando Norris", Constructor: "McLaren", Grid: 3},
			{Driver: "George Russell", Constructor: "Mercedes", Grid: 4},
			{Driver: "Fernando Alonso", Constructor: "Aston Martin", Grid: 5},
			{Driver: "Lance Stroll", Constructor: "Aston Martin", Grid: 14},
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		log.Fatalf("Failed to encode request: %v", err)
	}

	resp, err := http.Post(apiURL+"/predict", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("API returned %s", resp.Status)
	}

	var result models.PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("Failed to decode response: %v", err)
	}

	fmt.Printf("%s, %s, %d°C\n\n", result.RaceInfo.Circuit, result.RaceInfo.Weather, result.RaceInfo.Temperature)
	for _, p := range result.Predictions {
		fmt.Printf("P%-2d %-20s %6.2f%%  %s\n", p.PredictedPosition, p.Driver, p.WinProbability, p.TireStrategy)
	}
}
