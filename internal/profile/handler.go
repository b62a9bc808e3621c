package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fitjournal/internal/auth"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type goalsRepo interface {
	GetGoals(ctx context.Context, userID int) (*Goals, error)
	UpdateGoals(ctx context.Context, userID int, goals Goals) error
}

type Handler struct {
	repo goalsRepo
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/profile/goals", handler.HandleGetGoals).Methods("GET", "OPTIONS").Name("get-goals")
	r.HandleFunc("/profile/goals", handler.HandleUpdateGoals).Methods("PUT", "OPTIONS").Name("update-goals")
}

func (handler *Handler) HandleGetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.getGoals")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	goals, err := handler.repo.GetGoals(ctx, userID)
	if err != nil {
		log.Errorf("get goals error: %s", err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("marshal goals error: %s", err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalsJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.updateGoals")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "update goals failed, invalid content type", http.StatusBadRequest)
		return
	}

	var goals Goals
	if err := json.NewDecoder(r.Body).Decode(&goals); err != nil {
		log.Errorf("update goals failed, decode json params: %s", err)
		http.Error(w, "update goals failed", http.StatusBadRequest)
		return
	}

	// non-positive goals are stored as-is, the tip engine just skips
	// the dependent rules
	if err := handler.repo.UpdateGoals(ctx, userID, goals); err != nil {
		log.Errorf("update goals error: %s", err)
		http.Error(w, "failed to update goals", http.StatusInternalServerError)
		return
	}

	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("marshal goals error: %s", err)
		http.Error(w, "failed to update goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalsJson, http.StatusOK)
}
