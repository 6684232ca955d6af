package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

// Routes assembles the API router: allow-all CORS, request tagging and
// logging, optional per-IP rate limiting, the reference data endpoints and
// the prediction endpoint.
func (h *Handler) Routes(allowedOrigins []string, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(allowOptions)
	r.Use(h.RequestID)
	r.Use(h.RequestLogger)
	if limiter != nil {
		r.Use(limiter.Middleware(h))
	}

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		h.errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		h.errorResponse(w, http.StatusNotFound, "Not found")
	})

	r.Get("/circuits", h.GetCircuits)
	r.Get("/teams", h.GetTeams)
	r.Get("/constructor-standings", h.GetConstructorStandings)
	r.Post("/predict", h.PredictRace)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/doc.json", h.SwaggerDoc)

	return r
}

// allowOptions answers any OPTIONS request with a bare 200. The CORS
// middleware already handles real preflights; this covers probes without
// preflight headers, which the API has always answered 200.
func allowOptions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SwaggerDoc serves the generated OpenAPI document.
func (h *Handler) SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.errorResponse(w, http.StatusInternalServerError, "OpenAPI document unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
