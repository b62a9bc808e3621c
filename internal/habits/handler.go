package habits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitjournal/internal/auth"
	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/telemetry/metrics"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=habits

type habitsRepo interface {
	Add(ctx context.Context, userID int, habit Habit) (*Habit, error)
	Update(ctx context.Context, userID int, habit Habit) error
	Delete(ctx context.Context, userID int, id uuid.UUID) error
	Get(ctx context.Context, userID int, id uuid.UUID) (*Habit, error)
	List(ctx context.Context, userID int) ([]Habit, error)
}

type ToggleRequest struct {
	Date calendar.Date `json:"date"`
}

type DeleteHabitResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	repo    habitsRepo
	clock   calendar.Clock
	metrics *metrics.Manager
}

func NewHandler(repo habitsRepo, clock calendar.Clock, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		clock:   clock,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/habits", handler.HandleList).Methods("GET", "OPTIONS").Name("list-habits")
	r.HandleFunc("/habits", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-habit")
	r.HandleFunc("/habits/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-habit")
	r.HandleFunc("/habits/{id}/toggle", handler.HandleToggle).Methods("POST", "OPTIONS").Name("toggle-habit")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	found, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list habits error: %s", err)
		http.Error(w, "failed to list habits", http.StatusInternalServerError)
		return
	}
	if found == nil {
		found = []Habit{}
	}

	// recompute against the current day so a stale cached streak
	// never reaches the client
	today := calendar.Today(handler.clock)
	for i := range found {
		found[i].Streak = ComputeStreak(today, found[i].Completions)
	}

	habitsJson, err := json.Marshal(found)
	if err != nil {
		log.Errorf("marshal habits error: %s", err)
		http.Error(w, "failed to list habits", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, habitsJson, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "add habit failed, invalid content type", http.StatusBadRequest)
		return
	}

	var habit Habit
	if err := json.NewDecoder(r.Body).Decode(&habit); err != nil {
		log.Errorf("add habit failed, decode json params: %s", err)
		http.Error(w, "add habit failed", http.StatusBadRequest)
		return
	}

	if habit.Name == "" {
		http.Error(w, "error, habit name empty", http.StatusBadRequest)
		return
	}
	if !habit.Frequency.Valid() {
		http.Error(w, "error, frequency must be daily or weekly", http.StatusBadRequest)
		return
	}
	switch habit.Frequency {
	case FrequencyWeekly:
		if len(habit.Weekdays) == 0 {
			http.Error(w, "error, weekly habit needs weekdays", http.StatusBadRequest)
			return
		}
		for _, wd := range habit.Weekdays {
			if wd < 0 || wd > 6 {
				http.Error(w, "error, weekday out of range", http.StatusBadRequest)
				return
			}
		}
	case FrequencyDaily:
		if len(habit.Weekdays) > 0 {
			http.Error(w, "error, daily habit cannot have weekdays", http.StatusBadRequest)
			return
		}
	}

	// a new habit starts with a clean slate, whatever the client sent
	habit.ID = uuid.Nil
	habit.Completions = NewCompletionSet()
	habit.Streak = 0
	habit.LastCompletedDate = nil

	addedHabit, err := handler.repo.Add(ctx, userID, habit)
	if err != nil {
		log.Errorf("failed to add new habit: %s", err)
		http.Error(w, "error, failed to add new habit", http.StatusInternalServerError)
		return
	}

	log.Tracef("new habit added: %s [%s]", addedHabit.Name, addedHabit.ID)

	habitJson, err := json.Marshal(addedHabit)
	if err != nil {
		log.Errorf("marshal added habit error: %s", err)
		http.Error(w, "error, failed to add new habit", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, habitJson, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid habit id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete habit %s error: %s", id, err)
		http.Error(w, "failed to delete habit", http.StatusInternalServerError)
		return
	}

	deleteJson, err := json.Marshal(DeleteHabitResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete response error: %s", err)
		http.Error(w, "failed to delete habit", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deleteJson, http.StatusOK)
}

// HandleToggle flips one completion day and persists the result.
// Last write wins, the client is expected to serialize its own taps.
func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.toggle")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid habit id", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "toggle habit failed, invalid content type", http.StatusBadRequest)
		return
	}

	var toggleReq ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&toggleReq); err != nil {
		log.Errorf("toggle habit failed, decode json params: %s", err)
		http.Error(w, "toggle habit failed", http.StatusBadRequest)
		return
	}

	today := calendar.Today(handler.clock)
	date := toggleReq.Date
	if date.IsZero() {
		date = today
	}
	if date.After(today) {
		http.Error(w, "error, cannot complete a future date", http.StatusBadRequest)
		return
	}

	habit, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.Errorf("toggle habit %s, get error: %s", id, err)
		http.Error(w, "failed to toggle habit", http.StatusInternalServerError)
		return
	}

	toggledHabit := habit.ToggleCompletion(date, today)
	if err := handler.repo.Update(ctx, userID, toggledHabit); err != nil {
		log.Errorf("toggle habit %s, update error: %s", id, err)
		http.Error(w, "failed to toggle habit", http.StatusInternalServerError)
		return
	}

	log.Debugf("habit %s toggled for %s, streak: %d", id, date, toggledHabit.Streak)
	handler.metrics.CounterHabitToggles.Inc()

	habitJson, err := json.Marshal(toggledHabit)
	if err != nil {
		log.Errorf("marshal toggled habit error: %s", err)
		http.Error(w, "failed to toggle habit", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, habitJson, http.StatusOK)
}
