package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/murmur-social/murmur/internal/domain"
)

type ThoughtRepo struct {
	pool *pgxpool.Pool
}

func NewThoughtRepo(pool *pgxpool.Pool) *ThoughtRepo {
	return &ThoughtRepo{pool: pool}
}

func (r *ThoughtRepo) Create(ctx context.Context, thought *domain.Thought) error {
	query := `
		INSERT INTO thoughts (id, thought_text, username, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query,
		thought.ID, thought.ThoughtText, thought.Username, thought.CreatedAt,
	)
	return err
}

func (r *ThoughtRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Thought, error) {
	var t domain.Thought
	err := r.pool.QueryRow(ctx,
		`SELECT id, thought_text, username, created_at FROM thoughts WHERE id = $1`, id,
	).Scan(&t.ID, &t.ThoughtText, &t.Username, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	reactions, err := r.loadReactions(ctx, []uuid.UUID{t.ID})
	if err != nil {
		return nil, err
	}
	t.Reactions = reactions[t.ID]
	return &t, nil
}

func (r *ThoughtRepo) List(ctx context.Context, username *string) ([]domain.Thought, error) {
	query := `SELECT id, thought_text, username, created_at FROM thoughts`
	args := []any{}
	if username != nil {
		query += ` WHERE username = $1`
		args = append(args, *username)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var thoughts []domain.Thought
	var ids []uuid.UUID
	for rows.Next() {
		var t domain.Thought
		if err := rows.Scan(&t.ID, &t.ThoughtText, &t.Username, &t.CreatedAt); err != nil {
			return nil, err
		}
		thoughts = append(thoughts, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(thoughts) == 0 {
		return nil, nil
	}

	reactions, err := r.loadReactions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range thoughts {
		thoughts[i].Reactions = reactions[thoughts[i].ID]
	}
	return thoughts, nil
}

// AddReaction appends a reaction to its parent thought. The insert is the
// atomic append; existence of the thought is the caller's concern.
func (r *ThoughtRepo) AddReaction(ctx context.Context, thoughtID uuid.UUID, reaction *domain.Reaction) error {
	query := `
		INSERT INTO reactions (id, thought_id, reaction_body, username, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		reaction.ID, thoughtID, reaction.ReactionBody, reaction.Username, reaction.CreatedAt,
	)
	return err
}

func (r *ThoughtRepo) loadReactions(ctx context.Context, thoughtIDs []uuid.UUID) (map[uuid.UUID][]domain.Reaction, error) {
	query := `
		SELECT id, thought_id, reaction_body, username, created_at
		FROM reactions
		WHERE thought_id = ANY($1)
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, thoughtIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byThought := make(map[uuid.UUID][]domain.Reaction)
	for rows.Next() {
		var re domain.Reaction
		var thoughtID uuid.UUID
		if err := rows.Scan(&re.ID, &thoughtID, &re.ReactionBody, &re.Username, &re.CreatedAt); err != nil {
			return nil, err
		}
		byThought[thoughtID] = append(byThought[thoughtID], re)
	}
	return byThought, rows.Err()
}
