package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agingd/internal/manager"
	"agingd/internal/orchestrator"
	"agingd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	RunAgeProgression(ctx context.Context, in orchestrator.Subject) (orchestrator.Outcome, error)
	RunMorph(ctx context.Context, a, b orchestrator.Subject, length int) (orchestrator.Outcome, error)
	RunKids(ctx context.Context, a, b orchestrator.Subject, length int) (orchestrator.Outcome, error)
	Checkpoints() (types.CheckpointsResponse, error)
	Status() types.StatusResponse
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: orDefault(corsAllowedOrigins, []string{"*"}),
			AllowedMethods: orDefault(corsAllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
			AllowedHeaders: orDefault(corsAllowedHeaders, []string{"Content-Type", "X-Log-Level", "X-Request-Id"}),
			MaxAge:         300,
		}))
	}
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/age_progression", inflight("/age_progression", handleAgeProgression(svc)))
	r.Post("/morphing", inflight("/morphing", handlePair(manager.ModeMorph, svc.RunMorph)))
	r.Post("/kids", inflight("/kids", handlePair(manager.ModeKids, svc.RunKids)))

	r.Get("/checkpoints", handleCheckpoints(svc))
	r.Get("/status", handleStatus(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	return r
}

// handleAgeProgression godoc
// @Summary      Age a sample face
// @Description  Selects a dataset face matching age, gender and race and ages it to the given age.
// @Tags         generation
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        request  body      types.AgeProgressionRequest  true  "Subject"
// @Success      200      {object}  types.RunResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      404      {object}  types.ErrorResponse
// @Failure      422      {object}  types.ErrorResponse
// @Failure      429      {object}  types.ErrorResponse
// @Failure      502      {object}  types.ErrorResponse
// @Failure      503      {object}  types.ErrorResponse
// @Router       /age_progression [post]
func handleAgeProgression(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveRun(w, r, manager.ModeAgeProgression, func(ctx context.Context) (orchestrator.Outcome, error) {
			var req types.AgeProgressionRequest
			if err := decodeBody(w, r, &req); err != nil {
				return orchestrator.Outcome{}, err
			}
			s, err := subject("", req.Age, req.Gender, req.Race)
			if err != nil {
				return orchestrator.Outcome{}, err
			}
			return svc.RunAgeProgression(ctx, s)
		})
	}
}

type pairFunc func(ctx context.Context, a, b orchestrator.Subject, length int) (orchestrator.Outcome, error)

// handlePair godoc
// @Summary      Morph between or combine two sample faces
// @Description  /morphing interpolates between two selected faces; /kids synthesizes offspring of them. Both return length frames.
// @Tags         generation
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        request  body      types.PairRequest  true  "Subjects"
// @Success      200      {object}  types.RunResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      404      {object}  types.ErrorResponse
// @Failure      429      {object}  types.ErrorResponse
// @Failure      502      {object}  types.ErrorResponse
// @Router       /morphing [post]
// @Router       /kids [post]
func handlePair(mode manager.Mode, run pairFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveRun(w, r, mode, func(ctx context.Context) (orchestrator.Outcome, error) {
			var req types.PairRequest
			if err := decodeBody(w, r, &req); err != nil {
				return orchestrator.Outcome{}, err
			}
			a, err := subject("_1", req.Age1, req.Gender1, req.Race1)
			if err != nil {
				return orchestrator.Outcome{}, err
			}
			b, err := subject("_2", req.Age2, req.Gender2, req.Race2)
			if err != nil {
				return orchestrator.Outcome{}, err
			}
			length := 0
			if req.Length != nil {
				length = *req.Length
			}
			return run(ctx, a, b, length)
		})
	}
}

// serveRun executes one generation request and writes its response.
func serveRun(w http.ResponseWriter, r *http.Request, mode manager.Mode, run func(context.Context) (orchestrator.Outcome, error)) {
	start := time.Now()
	ctx, cancel := runContext(r.Context())
	defer cancel()

	out, err := run(ctx)
	if err != nil {
		// Client went away; nobody to answer.
		if r.Context().Err() != nil {
			runsTotal.WithLabelValues(string(mode), "canceled").Inc()
			return
		}
		status := statusFor(err)
		if serverBaseCtx.Err() != nil {
			status, err = http.StatusServiceUnavailable, errShuttingDown
		}
		if status == http.StatusTooManyRequests {
			IncrementBackpressure("queue")
		}
		runsTotal.WithLabelValues(string(mode), outcomeLabel(status)).Inc()
		writeJSONError(w, status, err.Error())
		logRunEnd(r, string(mode), status, start, err)
		return
	}
	runsTotal.WithLabelValues(string(mode), outcomeLabel(http.StatusOK)).Inc()
	writeJSON(w, out.Response())
	logRunEnd(r, string(mode), http.StatusOK, start, nil)
}

// handleCheckpoints godoc
// @Summary      List checkpoints
// @Tags         model
// @Produce      json
// @Success      200  {object}  types.CheckpointsResponse
// @Router       /checkpoints [get]
func handleCheckpoints(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.Checkpoints()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, resp)
	}
}

// handleStatus godoc
// @Summary      Dispatcher status
// @Tags         model
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func handleStatus(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Status())
	}
}

func orDefault(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

// errShuttingDown is reported when the server stops while a run is queued.
var errShuttingDown = errors.New("server shutting down")
