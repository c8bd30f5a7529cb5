package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/coachbit/backend/internal/telemetry/tracing"
	"github.com/coachbit/backend/pkg"
)

// Repo stores nutrition plans as single JSONB documents with an optimistic
// version, same scheme as the workout store.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, id string, p *Plan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", id))

	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO nutrition_plan (id, title, document, version, created_at, updated_at)
			VALUES ($1, $2, $3, 1, $4, $4);`,
		id, p.Title, doc, time.Now(),
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return fmt.Errorf("%w: plan %s already exists", ErrInvalidInput, id)
		}
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Plan, version int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", id))

	var doc []byte
	err = r.db.
		QueryRow(ctx, `SELECT document, version FROM nutrition_plan WHERE id = $1;`, id).
		Scan(&doc, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrPlanNotFound
		}
		return nil, 0, err
	}

	var plan Plan
	if err := json.Unmarshal(doc, &plan); err != nil {
		return nil, 0, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &plan, version, nil
}

// Save replaces the whole document, guarded by the version read at load time.
func (r *Repo) Save(ctx context.Context, id string, p *Plan, expectedVersion int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("plan.id", id),
		attribute.Int64("plan.version", expectedVersion),
	)

	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE nutrition_plan
			SET title = $1, document = $2, version = version + 1, updated_at = $3
			WHERE id = $4 AND version = $5;`,
		p.Title, doc, time.Now(), id, expectedVersion,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// either the row is gone or somebody saved a newer version in between
		if _, _, getErr := r.Get(ctx, id); errors.Is(getErr, ErrPlanNotFound) {
			return ErrPlanNotFound
		}
		return ErrConcurrentModification
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM nutrition_plan WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}
