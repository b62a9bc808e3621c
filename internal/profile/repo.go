package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitjournal/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	goalsCacheKeyPrefix = "fitjournal-goals||"
	goalsCacheTTL       = 15 * time.Minute
)

type Repo struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewRepo(db *pgxpool.Pool, redisClient *redis.Client) *Repo {
	return &Repo{
		db:          db,
		redisClient: redisClient,
	}
}

// GetGoals returns the user's goals, falling back to DefaultGoals when
// none were ever stored.
func (r *Repo) GetGoals(ctx context.Context, userID int) (_ *Goals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.getGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	cacheKey := fmt.Sprintf("%s%d", goalsCacheKeyPrefix, userID)
	cached, err := r.redisClient.Get(ctx, cacheKey).Result()
	if err == nil {
		var goals Goals
		if err := json.Unmarshal([]byte(cached), &goals); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &goals, nil
		}
		log.Warnf("unmarshal cached goals for user %d: %s", userID, err)
	} else if !errors.Is(err, redis.Nil) {
		log.Warnf("get cached goals for user %d: %s", userID, err)
	}

	var goals Goals
	err = r.db.QueryRow(
		ctx,
		`SELECT calorie_goal, protein_goal_grams, workout_goal_per_week
			FROM user_goals
			WHERE user_id = $1;`,
		userID,
	).Scan(&goals.CalorieGoal, &goals.ProteinGoalGrams, &goals.WorkoutGoalPerWeek)
	if errors.Is(err, pgx.ErrNoRows) {
		goals = DefaultGoals
	} else if err != nil {
		return nil, err
	}

	r.cacheGoals(ctx, cacheKey, goals)

	return &goals, nil
}

func (r *Repo) UpdateGoals(ctx context.Context, userID int, goals Goals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.updateGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_goals
				(user_id, calorie_goal, protein_goal_grams, workout_goal_per_week)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id) DO UPDATE SET
				calorie_goal = EXCLUDED.calorie_goal,
				protein_goal_grams = EXCLUDED.protein_goal_grams,
				workout_goal_per_week = EXCLUDED.workout_goal_per_week;`,
		userID, goals.CalorieGoal, goals.ProteinGoalGrams, goals.WorkoutGoalPerWeek,
	)
	if err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("%s%d", goalsCacheKeyPrefix, userID)
	r.cacheGoals(ctx, cacheKey, goals)

	return nil
}

func (r *Repo) cacheGoals(ctx context.Context, cacheKey string, goals Goals) {
	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Warnf("marshal goals for cache: %s", err)
		return
	}
	if err := r.redisClient.Set(ctx, cacheKey, goalsJson, goalsCacheTTL).Err(); err != nil {
		log.Warnf("cache goals: %s", err)
	}
}
