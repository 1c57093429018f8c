package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/murmur-social/murmur/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// AddFriend inserts with set semantics: adding an existing friend is a
	// no-op, never an error.
	AddFriend(ctx context.Context, userID, friendID uuid.UUID) error
	ListFriends(ctx context.Context, userID uuid.UUID) ([]domain.User, error)
}

type ThoughtRepository interface {
	Create(ctx context.Context, thought *domain.Thought) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Thought, error)
	// List returns thoughts newest first, reactions included, optionally
	// filtered to a single author.
	List(ctx context.Context, username *string) ([]domain.Thought, error)
	AddReaction(ctx context.Context, thoughtID uuid.UUID, reaction *domain.Reaction) error
}
