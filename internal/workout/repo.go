package workout

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

// Repo stores workout programs as single JSONB documents with an optimistic
// version. Save only succeeds when the stored version still matches the one
// read at load time; a lost race surfaces as ErrConcurrentModification
// instead of a silent last-write-wins overwrite.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, id string, p *Program) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", id))

	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_program (id, title, document, version, created_at, updated_at)
			VALUES ($1, $2, $3, 1, $4, $4);`,
		id, p.Title, doc, time.Now(),
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return fmt.Errorf("%w: program %s already exists", ErrInvalidInput, id)
		}
		return fmt.Errorf("insert program: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Program, version int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", id))

	var doc []byte
	err = r.db.
		QueryRow(ctx, `SELECT document, version FROM workout_program WHERE id = $1;`, id).
		Scan(&doc, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrProgramNotFound
		}
		return nil, 0, err
	}

	var program Program
	if err := json.Unmarshal(doc, &program); err != nil {
		return nil, 0, fmt.Errorf("unmarshal program: %w", err)
	}
	return &program, version, nil
}

// Save replaces the whole document, guarded by the version read at load time.
func (r *Repo) Save(ctx context.Context, id string, p *Program, expectedVersion int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("program.id", id),
		attribute.Int64("program.version", expectedVersion),
	)

	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_program
			SET title = $1, document = $2, version = version + 1, updated_at = $3
			WHERE id = $4 AND version = $5;`,
		p.Title, doc, time.Now(), id, expectedVersion,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// either the row is gone or somebody saved a newer version in between
		if _, _, getErr := r.Get(ctx, id); errors.Is(getErr, ErrProgramNotFound) {
			return ErrProgramNotFound
		}
		return ErrConcurrentModification
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_program WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}
	return nil
}
