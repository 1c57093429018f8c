package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/murmur-social/murmur/internal/domain"
	"github.com/murmur-social/murmur/internal/repository"
)

var ErrThoughtNotFound = errors.New("thought not found")

type ThoughtService struct {
	thoughtRepo repository.ThoughtRepository
}

func NewThoughtService(thoughtRepo repository.ThoughtRepository) *ThoughtService {
	return &ThoughtService{thoughtRepo: thoughtRepo}
}

// Create posts a new thought. The author is always the verified caller's
// username, never client input.
func (s *ThoughtService) Create(ctx context.Context, authorUsername, thoughtText string) (*domain.Thought, error) {
	thought := &domain.Thought{
		ID:          uuid.New(),
		ThoughtText: thoughtText,
		Username:    authorUsername,
		CreatedAt:   time.Now(),
	}

	if err := s.thoughtRepo.Create(ctx, thought); err != nil {
		return nil, fmt.Errorf("creating thought: %w", err)
	}
	return thought, nil
}

func (s *ThoughtService) Get(ctx context.Context, id uuid.UUID) (*domain.Thought, error) {
	return s.thoughtRepo.GetByID(ctx, id)
}

func (s *ThoughtService) List(ctx context.Context, username *string) ([]domain.Thought, error) {
	return s.thoughtRepo.List(ctx, username)
}

// AddReaction appends a reaction authored by the caller to the target
// thought and returns the updated thought.
func (s *ThoughtService) AddReaction(ctx context.Context, authorUsername string, thoughtID uuid.UUID, reactionBody string) (*domain.Thought, error) {
	thought, err := s.thoughtRepo.GetByID(ctx, thoughtID)
	if err != nil {
		return nil, err
	}
	if thought == nil {
		return nil, ErrThoughtNotFound
	}

	reaction := &domain.Reaction{
		ID:           uuid.New(),
		ReactionBody: reactionBody,
		Username:     authorUsername,
		CreatedAt:    time.Now(),
	}

	if err := s.thoughtRepo.AddReaction(ctx, thoughtID, reaction); err != nil {
		return nil, fmt.Errorf("adding reaction: %w", err)
	}

	return s.thoughtRepo.GetByID(ctx, thoughtID)
}
