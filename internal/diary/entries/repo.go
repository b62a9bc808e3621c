package entries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddMeal(ctx context.Context, userID int, meal MealEntry) (_ *MealEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.addMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO meal_entry
				(user_id, day, calories, protein_grams, meal_time)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		userID, meal.Date.String(), meal.Calories, meal.ProteinGrams, meal.Time,
	)
	if err != nil {
		return nil, err
	}

	id, err := scanInsertedID(rows)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("meal.id", id))

	meal.ID = id
	return &meal, nil
}

func (r *Repo) DeleteMeal(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.deleteMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM meal_entry WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repo) ListMeals(ctx context.Context, userID int, from, to calendar.Date) (_ []MealEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.listMeals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, day, calories, protein_grams, meal_time
			FROM meal_entry
			WHERE user_id = $1 AND day >= $2 AND day <= $3
			ORDER BY day, meal_time, id;`,
		userID, from.String(), to.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []MealEntry
	for rows.Next() {
		var m MealEntry
		var day time.Time
		if err := rows.Scan(&m.ID, &day, &m.Calories, &m.ProteinGrams, &m.Time); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		m.Date = calendar.DateOf(day)
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}

func (r *Repo) AddWorkout(ctx context.Context, userID int, workout WorkoutEntry) (_ *WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.addWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_entry
				(user_id, day, kind, duration_minutes, calories_burned)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		userID, workout.Date.String(), workout.Kind, workout.DurationMinutes, workout.CaloriesBurned,
	)
	if err != nil {
		return nil, err
	}

	id, err := scanInsertedID(rows)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

func (r *Repo) DeleteWorkout(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.deleteWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_entry WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repo) ListWorkouts(ctx context.Context, userID int, from, to calendar.Date) (_ []WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, day, kind, duration_minutes, calories_burned
			FROM workout_entry
			WHERE user_id = $1 AND day >= $2 AND day <= $3
			ORDER BY day, id;`,
		userID, from.String(), to.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []WorkoutEntry
	for rows.Next() {
		var w WorkoutEntry
		var day time.Time
		if err := rows.Scan(&w.ID, &day, &w.Kind, &w.DurationMinutes, &w.CaloriesBurned); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		w.Date = calendar.DateOf(day)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *Repo) AddWeight(ctx context.Context, userID int, weight WeightEntry) (_ *WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.addWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO weight_entry
				(user_id, day, weight_kg)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		userID, weight.Date.String(), weight.WeightKg,
	)
	if err != nil {
		return nil, err
	}

	id, err := scanInsertedID(rows)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("weight.id", id))

	weight.ID = id
	return &weight, nil
}

func (r *Repo) DeleteWeight(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.deleteWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM weight_entry WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repo) ListWeights(ctx context.Context, userID int, from, to calendar.Date) (_ []WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.listWeights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, day, weight_kg
			FROM weight_entry
			WHERE user_id = $1 AND day >= $2 AND day <= $3
			ORDER BY day, id;`,
		userID, from.String(), to.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weights []WeightEntry
	for rows.Next() {
		var w WeightEntry
		var day time.Time
		if err := rows.Scan(&w.ID, &day, &w.WeightKg); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		w.Date = calendar.DateOf(day)
		weights = append(weights, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return weights, nil
}

func scanInsertedID(rows pgx.Rows) (int, error) {
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return 0, err
	}
	if !rows.Next() {
		return 0, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("rows scan: %w", err)
	}
	return id, nil
}
