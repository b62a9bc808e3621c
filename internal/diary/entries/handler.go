package entries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitjournal/internal/auth"
	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/telemetry/metrics"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=entries_test

type entriesRepo interface {
	AddMeal(ctx context.Context, userID int, meal MealEntry) (*MealEntry, error)
	DeleteMeal(ctx context.Context, userID, id int) error
	ListMeals(ctx context.Context, userID int, from, to calendar.Date) ([]MealEntry, error)
	AddWorkout(ctx context.Context, userID int, workout WorkoutEntry) (*WorkoutEntry, error)
	DeleteWorkout(ctx context.Context, userID, id int) error
	ListWorkouts(ctx context.Context, userID int, from, to calendar.Date) ([]WorkoutEntry, error)
	AddWeight(ctx context.Context, userID int, weight WeightEntry) (*WeightEntry, error)
	DeleteWeight(ctx context.Context, userID, id int) error
	ListWeights(ctx context.Context, userID int, from, to calendar.Date) ([]WeightEntry, error)
}

type DeleteEntryResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo    entriesRepo
	clock   calendar.Clock
	metrics *metrics.Manager
}

func NewHandler(repo entriesRepo, clock calendar.Clock, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		clock:   clock,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/diary/meals", handler.HandleAddMeal).Methods("POST", "OPTIONS").Name("new-meal")
	r.HandleFunc("/diary/meals", handler.HandleListMeals).Methods("GET", "OPTIONS").Name("list-meals")
	r.HandleFunc("/diary/meals/{id}", handler.HandleDeleteMeal).Methods("DELETE", "OPTIONS").Name("remove-meal")
	r.HandleFunc("/diary/workouts", handler.HandleAddWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/diary/workouts", handler.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/diary/workouts/{id}", handler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("remove-workout")
	r.HandleFunc("/diary/weights", handler.HandleAddWeight).Methods("POST", "OPTIONS").Name("new-weight")
	r.HandleFunc("/diary/weights", handler.HandleListWeights).Methods("GET", "OPTIONS").Name("list-weights")
	r.HandleFunc("/diary/weights/{id}", handler.HandleDeleteWeight).Methods("DELETE", "OPTIONS").Name("remove-weight")
}

func (handler *Handler) HandleAddMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.entries.addMeal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "add meal failed, invalid content type", http.StatusBadRequest)
		return
	}

	var meal MealEntry
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		log.Errorf("add meal failed, decode json params: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}

	if meal.Date.IsZero() {
		meal.Date = calendar.Today(handler.clock)
	}
	if meal.Calories < 0 || meal.ProteinGrams < 0 {
		http.Error(w, "error, negative calories or protein", http.StatusBadRequest)
		return
	}

	addedMeal, err := handler.repo.AddMeal(ctx, userID, meal)
	if err != nil {
		log.Errorf("failed to add new meal: %s", err)
		http.Error(w, "error, failed to add new meal", http.StatusInternalServerError)
		return
	}

	log.Tracef("new meal added: %+v", addedMeal)
	handler.metrics.CounterMealsAdded.Inc()

	mealJson, err := json.Marshal(addedMeal)
	if err != nil {
		log.Errorf("marshal added meal error: %s", err)
		http.Error(w, "error, failed to add new meal", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, mealJson, http.StatusCreated)
}

func (handler *Handler) HandleListMeals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.entries.listMeals")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := handler.rangeParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	meals, err := handler.repo.ListMeals(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list meals error: %s", err)
		http.Error(w, "failed to list meals", http.StatusInternalServerError)
		return
	}
	if meals == nil {
		meals = []MealEntry{}
	}

	mealsJson, err := json.Marshal(meals)
	if err != nil {
		log.Errorf("marshal meals error: %s", err)
		http.Error(w, "failed to list meals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, mealsJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	handler.handleDelete(w, r, "handler.entries.deleteMeal", handler.repo.DeleteMeal)
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.entries.addWorkout")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "add workout failed, invalid content type", http.StatusBadRequest)
		return
	}

	var workout WorkoutEntry
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Errorf("add workout failed, decode json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.Date.IsZero() {
		workout.Date = calendar.Today(handler.clock)
	}
	if !workout.Kind.Valid() {
		http.Error(w, "error, workout kind must be strength or cardio", http.StatusBadRequest)
		return
	}
	if workout.DurationMinutes < 0 || workout.CaloriesBurned < 0 {
		http.Error(w, "error, negative duration or calories", http.StatusBadRequest)
		return
	}

	addedWorkout, err := handler.repo.AddWorkout(ctx, userID, workout)
	if err != nil {
		log.Errorf("failed to add new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	log.Tracef("new workout added: %+v", addedWorkout)
	handler.metrics.CounterWorkoutsAdded.Inc()

	workoutJson, err := json.Marshal(addedWorkout)
	if err != nil {
		log.Errorf("marshal added workout error: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.entries.listWorkouts")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := handler.rangeParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workouts, err := handler.repo.ListWorkouts(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []WorkoutEntry{}
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutsJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	handler.handleDelete(w, r, "handler.entries.deleteWorkout", handler.repo.DeleteWorkout)
}

func (handler *Handler) HandleAddWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.entries.addWeight")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "add weight failed, invalid content type", http.StatusBadRequest)
		return
	}

	var weight WeightEntry
	if err := json.NewDecoder(r.Body).Decode(&weight); err != nil {
		log.Errorf("add weight failed, decode json params: %s", err)
		http.Error(w, "add weight failed", http.StatusBadRequest)
		return
	}

	if weight.Date.IsZero() {
		weight.Date = calendar.Today(handler.clock)
	}
	if weight.WeightKg <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}

	addedWeight, err := handler.repo.AddWeight(ctx, userID, weight)
	if err != nil {
		log.Errorf("failed to add new weight: %s", err)
		http.Error(w, "error, failed to add new weight", http.StatusInternalServerError)
		return
	}

	log.Tracef("new weight added: %+v", addedWeight)

	weightJson, err := json.Marshal(addedWeight)
	if err != nil {
		log.Errorf("marshal added weight error: %s", err)
		http.Error(w, "error, failed to add new weight", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weightJson, http.StatusCreated)
}

func (handler *Handler) HandleListWeights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.entries.listWeights")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := handler.rangeParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	weights, err := handler.repo.ListWeights(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list weights error: %s", err)
		http.Error(w, "failed to list weights", http.StatusInternalServerError)
		return
	}
	if weights == nil {
		weights = []WeightEntry{}
	}

	weightsJson, err := json.Marshal(weights)
	if err != nil {
		log.Errorf("marshal weights error: %s", err)
		http.Error(w, "failed to list weights", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weightsJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteWeight(w http.ResponseWriter, r *http.Request) {
	handler.handleDelete(w, r, "handler.entries.deleteWeight", handler.repo.DeleteWeight)
}

func (handler *Handler) handleDelete(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	deleteFunc func(ctx context.Context, userID, id int) error,
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := deleteFunc(ctx, userID, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete entry %d error: %s", id, err)
		http.Error(w, "failed to delete entry", http.StatusInternalServerError)
		return
	}

	deleteJson, err := json.Marshal(DeleteEntryResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete response error: %s", err)
		http.Error(w, "failed to delete entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deleteJson, http.StatusOK)
}

// rangeParams reads the optional from/to query params; the default
// range is the current month up to today.
func (handler *Handler) rangeParams(r *http.Request) (calendar.Date, calendar.Date, error) {
	today := calendar.Today(handler.clock)
	from := calendar.NewDate(today.Year, today.Month, 1)
	to := today

	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		parsed, err := calendar.ParseDate(fromParam)
		if err != nil {
			return calendar.Date{}, calendar.Date{}, fmt.Errorf("invalid from param: %w", err)
		}
		from = parsed
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		parsed, err := calendar.ParseDate(toParam)
		if err != nil {
			return calendar.Date{}, calendar.Date{}, fmt.Errorf("invalid to param: %w", err)
		}
		to = parsed
	}
	if from.After(to) {
		return calendar.Date{}, calendar.Date{}, calendar.ErrInvalidRange
	}

	return from, to, nil
}
