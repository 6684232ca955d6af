package logic

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/f1racepredictor/race-api/internal/data"
	"github.com/f1racepredictor/race-api/internal/models"
)

// Prometheus metrics
var (
	predictionsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "f1_predictions_total",
		Help: "Total number of race predictions computed, by ruleset",
	}, []string{"ruleset"})

	predictionEntrants = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "f1_prediction_entrants",
		Help:    "Number of entrants per prediction request",
		Buckets: prometheus.LinearBuckets(2, 2, 12),
	})

	predictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "f1_prediction_duration_seconds",
		Help:    "Duration of prediction computations",
		Buckets: prometheus.DefBuckets,
	})
)

// pointsByPosition is the FIA points table; positions beyond tenth score
// nothing.
var pointsByPosition = map[int]int{
	1: 25, 2: 18, 3: 15, 4: 12, 5: 10,
	6: 8, 7: 6, 8: 4, 9: 2, 10: 1,
}

type predictionService struct {
	rng RNG
}

// NewPredictionService builds the race outcome simulator around the given
// random source.
func NewPredictionService(rng RNG) PredictionService {
	return &predictionService{rng: rng}
}

// PredictRace simulates one race: ambient conditions are drawn once, every
// entrant gets a raw win probability and a tire strategy, then the grid is
// normalized, ranked and annotated with positions, podium flags and points.
func (s *predictionService) PredictRace(ctx context.Context, req *models.PredictRequest) (*models.PredictResponse, error) {
	start := time.Now()

	ruleset := data.RulesetByName(req.Ruleset)
	raceInfo := generateRaceInfo(s.rng, req.Circuit, req.Weather)

	predictions := make([]models.Prediction, 0, len(req.Entries))
	raw := make([]float64, 0, len(req.Entries))

	for _, entry := range req.Entries {
		prob := winProbability(ruleset, entry.Driver, entry.Constructor, entry.Grid, req.Weather)
		raw = append(raw, prob)

		predictions = append(predictions, models.Prediction{
			Driver:         entry.Driver,
			Constructor:    entry.Constructor,
			Grid:           entry.Grid,
			WinProbability: prob,
			TireStrategy:   tireStrategy(s.rng, entry.Driver, entry.Constructor, entry.Grid, req.Weather, req.Circuit),
		})
	}

	assembleOutcome(predictions, raw)

	predictionsComputed.WithLabelValues(ruleset.Name).Inc()
	predictionEntrants.Observe(float64(len(req.Entries)))
	predictionDuration.Observe(time.Since(start).Seconds())

	return &models.PredictResponse{
		Success:     true,
		Predictions: predictions,
		RaceInfo:    raceInfo,
	}, nil
}

// assembleOutcome rescales the raw probabilities to sum to 100, ranks the
// grid by descending probability and assigns finishing positions. When the
// raw total is zero there is nothing meaningful to scale, so the clamped raw
// values are kept as-is.
func assembleOutcome(predictions []models.Prediction, raw []float64) {
	var total float64
	for _, p := range raw {
		total += p
	}
	if total > 0 {
		factor := 100.0 / total
		for i := range predictions {
			predictions[i].WinProbability = math.Round(raw[i]*factor*100) / 100
		}
	}

	// Stable sort keeps submission order for exact probability ties.
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].WinProbability > predictions[j].WinProbability
	})

	for i := range predictions {
		position := i + 1
		predictions[i].PredictedPosition = position
		predictions[i].PodiumChance = position <= 3
		predictions[i].PointsEarned = pointsByPosition[position]
	}
}
