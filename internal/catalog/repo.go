package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/coachbit/backend/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// FindExerciseByName returns the first exercise whose name contains the given
// string, case-insensitive, in catalog order. ErrEntryNotFound when nothing
// matches.
func (r *Repo) FindExerciseByName(ctx context.Context, name string) (_ *ExerciseEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.findExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	var entry ExerciseEntry
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, muscle_groups, equipment, category
			FROM exercise_catalog
			WHERE name ILIKE '%' || $1 || '%'
			ORDER BY position, name
			LIMIT 1;`,
		name,
	).Scan(&entry.ID, &entry.Name, &entry.MuscleGroups, &entry.Equipment, &entry.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// SearchExercises returns all exercises matching the query substring.
func (r *Repo) SearchExercises(ctx context.Context, query string, limit int) (_ []ExerciseEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.searchExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_groups, equipment, category
			FROM exercise_catalog
			WHERE name ILIKE '%' || $1 || '%'
			ORDER BY position, name
			LIMIT $2;`,
		query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ExerciseEntry
	for rows.Next() {
		var entry ExerciseEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.MuscleGroups, &entry.Equipment, &entry.Category); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// FindFoodByName returns the first food whose name contains the given string,
// case-insensitive.
func (r *Repo) FindFoodByName(ctx context.Context, name string) (_ *FoodEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.findFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	var entry FoodEntry
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, unit, tags, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g
			FROM food_catalog
			WHERE name ILIKE '%' || $1 || '%'
			ORDER BY position, name
			LIMIT 1;`,
		name,
	).Scan(&entry.ID, &entry.Name, &entry.Unit, &entry.Tags, &entry.Calories, &entry.Protein, &entry.Carbs, &entry.Fat)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetFood returns the food with the given catalog id.
func (r *Repo) GetFood(ctx context.Context, id string) (_ *FoodEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("food.id", id))

	var entry FoodEntry
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, unit, tags, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g
			FROM food_catalog
			WHERE id = $1;`,
		id,
	).Scan(&entry.ID, &entry.Name, &entry.Unit, &entry.Tags, &entry.Calories, &entry.Protein, &entry.Carbs, &entry.Fat)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// SearchFoods returns all foods matching the query substring.
func (r *Repo) SearchFoods(ctx context.Context, query string, limit int) (_ []FoodEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.searchFoods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, unit, tags, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g
			FROM food_catalog
			WHERE name ILIKE '%' || $1 || '%'
			ORDER BY position, name
			LIMIT $2;`,
		query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []FoodEntry
	for rows.Next() {
		var entry FoodEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Unit, &entry.Tags, &entry.Calories, &entry.Protein, &entry.Carbs, &entry.Fat); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
