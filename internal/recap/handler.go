package recap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/strideworks/recap/internal/telemetry/metrics"
	"github.com/strideworks/recap/internal/telemetry/tracing"
	"github.com/strideworks/recap/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type recapAnalyzer interface {
	Recap(ctx context.Context, params RecapParams) (*Recap, error)
	Streaks(ctx context.Context, window Window) (*StreakMetrics, error)
}

type Handler struct {
	analyzer       recapAnalyzer
	redisClient    *redis.Client
	metricsManager *metrics.Manager
	cacheTTL       time.Duration
}

func NewHandler(
	analyzer recapAnalyzer,
	redisClient *redis.Client,
	metricsManager *metrics.Manager,
	cacheTTL time.Duration,
) *Handler {
	return &Handler{
		analyzer:       analyzer,
		redisClient:    redisClient,
		metricsManager: metricsManager,
		cacheTTL:       cacheTTL,
	}
}

func (handler *Handler) HandleRecap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recap.get")
	defer span.End()

	window, err := windowFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cacheKey := fmt.Sprintf("recap::%s::%s", DayKey(window.From), DayKey(window.To))
	if cached, ok := handler.cachedRecap(ctx, cacheKey); ok {
		handler.metricsManager.CounterRecapCacheHits.Inc()
		log.Tracef("recap cache hit: %s", cacheKey)
		pkg.WriteJSONResponseOK(w, cached)
		return
	}

	recap, err := handler.analyzer.Recap(ctx, RecapParams{Window: window})
	if err != nil {
		log.Errorf("failed to compute recap [%s]: %s", cacheKey, err)
		http.Error(w, "failed to compute recap", http.StatusInternalServerError)
		return
	}

	recapJson, err := json.Marshal(recap)
	if err != nil {
		log.Errorf("failed to marshal recap: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterRecapsComputed.Inc()
	handler.cacheRecap(ctx, cacheKey, recapJson)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recapJson, http.StatusOK)
}

func (handler *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recap.streaks")
	defer span.End()

	window, err := windowFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	streaks, err := handler.analyzer.Streaks(ctx, window)
	if err != nil {
		log.Errorf("failed to compute streaks: %s", err)
		http.Error(w, "failed to compute streaks", http.StatusInternalServerError)
		return
	}

	streaksJson, err := json.Marshal(streaks)
	if err != nil {
		log.Errorf("failed to marshal streaks: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, streaksJson, http.StatusOK)
}

func (handler *Handler) cachedRecap(ctx context.Context, cacheKey string) (string, bool) {
	if handler.redisClient == nil || handler.cacheTTL <= 0 {
		return "", false
	}

	cached, err := handler.redisClient.Get(ctx, cacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("failed to get recap from cache [%s]: %s", cacheKey, err)
		}
		return "", false
	}
	return cached, true
}

func (handler *Handler) cacheRecap(ctx context.Context, cacheKey string, recapJson []byte) {
	if handler.redisClient == nil || handler.cacheTTL <= 0 {
		return
	}

	if err := handler.redisClient.Set(ctx, cacheKey, recapJson, handler.cacheTTL).Err(); err != nil {
		log.Errorf("failed to cache recap [%s]: %s", cacheKey, err)
	}
}

// windowFromQuery reads the inclusive from/to day parameters. Reversed
// bounds are tolerated and swapped, missing or malformed ones are not.
func windowFromQuery(r *http.Request) (Window, error) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		return Window{}, errors.New("missing <from> or <to> date parameter")
	}

	from, err := time.Parse(DayKeyLayout, fromStr)
	if err != nil {
		return Window{}, fmt.Errorf("invalid <from> date parameter: %s", fromStr)
	}
	to, err := time.Parse(DayKeyLayout, toStr)
	if err != nil {
		return Window{}, fmt.Errorf("invalid <to> date parameter: %s", toStr)
	}

	return Window{From: from, To: to}.Normalized(), nil
}
