package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/f1racepredictor/race-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

type Config struct {
	Logger *zap.Logger
	// Services
	Prediction logic.PredictionService
	Reference  logic.ReferenceService
}

type Handler struct {
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	prediction logic.PredictionService
	reference  logic.ReferenceService
}

func New(cfg Config) *Handler {
	return &Handler{
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		prediction: cfg.Prediction,
		reference:  cfg.Reference,
	}
}
