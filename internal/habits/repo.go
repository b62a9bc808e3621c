package habits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrHabitNotFound = errors.New("habit not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID int, habit Habit) (_ *Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if habit.ID == uuid.Nil {
		habit.ID = uuid.New()
	}
	span.SetAttributes(attribute.String("habit.id", habit.ID.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO habit
				(id, user_id, name, frequency, weekdays, completions, streak, last_completed)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		habit.ID, userID, habit.Name, habit.Frequency,
		weekdaysToDB(habit.Weekdays),
		completionsToDB(habit.Completions),
		habit.Streak,
		lastCompletedToDB(habit.LastCompletedDate),
	)
	if err != nil {
		return nil, err
	}

	return &habit, nil
}

// Update persists the habit as-is; the caller must have recomputed the
// streak already.
func (r *Repo) Update(ctx context.Context, userID int, habit Habit) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("habit.id", habit.ID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE habit
			SET name = $1, frequency = $2, weekdays = $3,
				completions = $4, streak = $5, last_completed = $6
			WHERE id = $7 AND user_id = $8;`,
		habit.Name, habit.Frequency,
		weekdaysToDB(habit.Weekdays),
		completionsToDB(habit.Completions),
		habit.Streak,
		lastCompletedToDB(habit.LastCompletedDate),
		habit.ID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrHabitNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID int, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("habit.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM habit WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrHabitNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID int, id uuid.UUID) (_ *Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("habit.id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, frequency, weekdays, completions, streak, last_completed
			FROM habit
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	habitsFound, err := rows2habits(rows)
	if err != nil {
		return nil, err
	}
	if len(habitsFound) == 0 {
		return nil, ErrHabitNotFound
	}
	return &habitsFound[0], nil
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, frequency, weekdays, completions, streak, last_completed
			FROM habit
			WHERE user_id = $1
			ORDER BY name;`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	return rows2habits(rows)
}

func rows2habits(rows pgx.Rows) ([]Habit, error) {
	defer rows.Close()

	var found []Habit
	for rows.Next() {
		var h Habit
		var weekdays []int32
		var completions []time.Time
		var lastCompleted *time.Time
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Frequency,
			&weekdays, &completions, &h.Streak, &lastCompleted,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		for _, wd := range weekdays {
			h.Weekdays = append(h.Weekdays, int(wd))
		}
		h.Completions = make(CompletionSet, len(completions))
		for _, c := range completions {
			h.Completions[calendar.DateOf(c)] = struct{}{}
		}
		if lastCompleted != nil {
			d := calendar.DateOf(*lastCompleted)
			h.LastCompletedDate = &d
		}

		found = append(found, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return found, nil
}

func weekdaysToDB(weekdays []int) []int32 {
	out := make([]int32, 0, len(weekdays))
	for _, wd := range weekdays {
		out = append(out, int32(wd))
	}
	return out
}

func completionsToDB(completions CompletionSet) []string {
	sorted := completions.Sorted()
	out := make([]string, 0, len(sorted))
	for _, d := range sorted {
		out = append(out, d.String())
	}
	return out
}

func lastCompletedToDB(d *calendar.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
