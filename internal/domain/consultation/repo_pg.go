package consultation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swaasthmitra/intake/internal/domain/catalog"
	"github.com/swaasthmitra/intake/internal/domain/triage"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a Repository backed by PostgreSQL. Answers and the
// assessment are stored as JSONB snapshots.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const sessionCols = `id, state, section, question_index, category, category_resolved,
	answers, assessment, created_at, updated_at`

func scanSession(row pgx.Row) (*Session, error) {
	var (
		s          Session
		answers    []byte
		assessment []byte
	)
	err := row.Scan(&s.ID, &s.State, &s.Section, &s.Index, &s.Category, &s.CategoryResolved,
		&answers, &assessment, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Answers = catalog.AnswerRecord{}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &s.Answers); err != nil {
			return nil, fmt.Errorf("decode answers: %w", err)
		}
	}
	if len(assessment) > 0 {
		var a triage.Assessment
		if err := json.Unmarshal(assessment, &a); err != nil {
			return nil, fmt.Errorf("decode assessment: %w", err)
		}
		s.Assessment = &a
	}
	return &s, nil
}

func encodeSnapshot(s *Session) (answers, assessment []byte, err error) {
	answers, err = json.Marshal(s.Answers)
	if err != nil {
		return nil, nil, fmt.Errorf("encode answers: %w", err)
	}
	if s.Assessment != nil {
		assessment, err = json.Marshal(s.Assessment)
		if err != nil {
			return nil, nil, fmt.Errorf("encode assessment: %w", err)
		}
	}
	return answers, assessment, nil
}

func (r *repoPG) Create(ctx context.Context, s *Session) error {
	answers, assessment, err := encodeSnapshot(s)
	if err != nil {
		return err
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	_, err = r.pool.Exec(ctx, `
		INSERT INTO consultation (id, state, section, question_index, category, category_resolved,
			answers, assessment, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		s.ID, s.State, s.Section, s.Index, s.Category, s.CategoryResolved,
		answers, assessment, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	return scanSession(r.pool.QueryRow(ctx,
		`SELECT `+sessionCols+` FROM consultation WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, s *Session) error {
	answers, assessment, err := encodeSnapshot(s)
	if err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	tag, err := r.pool.Exec(ctx, `
		UPDATE consultation SET state=$2, section=$3, question_index=$4, category=$5,
			category_resolved=$6, answers=$7, assessment=$8, updated_at=$9
		WHERE id = $1`,
		s.ID, s.State, s.Section, s.Index, s.Category,
		s.CategoryResolved, answers, assessment, s.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM consultation`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+sessionCols+` FROM consultation ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM consultation WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
