package diary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitjournal/internal/auth"
	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/diary/entries"
	"github.com/2beens/fitjournal/internal/diary/stats"
	"github.com/2beens/fitjournal/internal/diary/tips"
	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=diary_test

const (
	summaryCacheSize = 10 * 1024 * 1024
	// short TTL, just enough to absorb a click-happy dashboard
	summaryCacheTTLSeconds = 60
)

type diaryRepo interface {
	ListMeals(ctx context.Context, userID int, from, to calendar.Date) ([]entries.MealEntry, error)
	ListWorkouts(ctx context.Context, userID int, from, to calendar.Date) ([]entries.WorkoutEntry, error)
	ListWeights(ctx context.Context, userID int, from, to calendar.Date) ([]entries.WeightEntry, error)
}

type goalsRepo interface {
	GetGoals(ctx context.Context, userID int) (*profile.Goals, error)
}

type MonthlySummaryResponse struct {
	Summary *stats.PeriodSummary `json:"summary"`
	Tips    []tips.Tip           `json:"tips"`
	Goals   profile.Goals        `json:"goals"`
}

type Handler struct {
	repo  diaryRepo
	goals goalsRepo
	clock calendar.Clock
	cache *freecache.Cache
}

func NewHandler(repo diaryRepo, goals goalsRepo, clock calendar.Clock) *Handler {
	return &Handler{
		repo:  repo,
		goals: goals,
		clock: clock,
		cache: freecache.NewCache(summaryCacheSize),
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/diary/summary/{year}/{month}", handler.HandleMonthlySummary).
		Methods("GET", "OPTIONS").
		Name("monthly-summary")
}

func (handler *Handler) HandleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.monthlySummary")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 2000 || year > 2200 {
		http.Error(w, "error, invalid year", http.StatusBadRequest)
		return
	}
	monthNum, err := strconv.Atoi(vars["month"])
	if err != nil || monthNum < 1 || monthNum > 12 {
		http.Error(w, "error, invalid month", http.StatusBadRequest)
		return
	}
	month := time.Month(monthNum)

	span.SetAttributes(
		attribute.Int("summary.year", year),
		attribute.Int("summary.month", monthNum),
	)

	cacheKey := []byte(fmt.Sprintf("summary||%d||%d-%02d", userID, year, monthNum))
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	from := calendar.NewDate(year, month, 1)
	to := calendar.NewDate(year, month, calendar.DaysInMonth(year, month))

	summaryResp, err := handler.buildSummary(ctx, userID, from, to)
	if err != nil {
		log.Errorf("monthly summary %d-%02d error: %s", year, monthNum, err)
		http.Error(w, "failed to build summary", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(summaryResp)
	if err != nil {
		log.Errorf("marshal summary error: %s", err)
		http.Error(w, "failed to build summary", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, respJson, summaryCacheTTLSeconds); err != nil {
		log.Warnf("cache summary: %s", err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) buildSummary(
	ctx context.Context,
	userID int,
	from, to calendar.Date,
) (*MonthlySummaryResponse, error) {
	goals, err := handler.goals.GetGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get goals: %w", err)
	}

	meals, err := handler.repo.ListMeals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	workouts, err := handler.repo.ListWorkouts(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	weights, err := handler.repo.ListWeights(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}

	summary, err := stats.AggregatePeriod(from, to, meals, workouts, weights, goals.CalorieGoal)
	if err != nil {
		return nil, fmt.Errorf("aggregate period: %w", err)
	}

	return &MonthlySummaryResponse{
		Summary: summary,
		Tips:    tips.Evaluate(summary.Stats, summary.Buckets, *goals),
		Goals:   *goals,
	}, nil
}
