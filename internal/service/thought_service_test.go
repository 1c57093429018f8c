package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/murmur-social/murmur/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateThought(t *testing.T) {
	thoughtRepo := new(MockThoughtRepository)
	svc := NewThoughtService(thoughtRepo)

	thoughtRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Thought")).Return(nil)

	thought, err := svc.Create(context.Background(), "ann", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "ann", thought.Username)
	assert.Equal(t, "hello world", thought.ThoughtText)
	assert.False(t, thought.CreatedAt.IsZero())
}

func TestAddReaction(t *testing.T) {
	thoughtRepo := new(MockThoughtRepository)
	svc := NewThoughtService(thoughtRepo)

	thoughtID := uuid.New()
	before := &domain.Thought{ID: thoughtID, ThoughtText: "hello", Username: "ann"}
	after := &domain.Thought{ID: thoughtID, ThoughtText: "hello", Username: "ann",
		Reactions: []domain.Reaction{{ReactionBody: "nice!", Username: "bob"}}}

	thoughtRepo.On("GetByID", mock.Anything, thoughtID).Return(before, nil).Once()
	thoughtRepo.On("AddReaction", mock.Anything, thoughtID, mock.AnythingOfType("*domain.Reaction")).
		Run(func(args mock.Arguments) {
			reaction := args.Get(2).(*domain.Reaction)
			assert.Equal(t, "bob", reaction.Username)
			assert.Equal(t, "nice!", reaction.ReactionBody)
		}).
		Return(nil)
	thoughtRepo.On("GetByID", mock.Anything, thoughtID).Return(after, nil).Once()

	updated, err := svc.AddReaction(context.Background(), "bob", thoughtID, "nice!")
	require.NoError(t, err)
	require.Len(t, updated.Reactions, 1)

	thoughtRepo.AssertExpectations(t)
}

func TestAddReactionUnknownThought(t *testing.T) {
	thoughtRepo := new(MockThoughtRepository)
	svc := NewThoughtService(thoughtRepo)

	thoughtID := uuid.New()
	thoughtRepo.On("GetByID", mock.Anything, thoughtID).Return(nil, nil)

	_, err := svc.AddReaction(context.Background(), "bob", thoughtID, "nice!")
	assert.ErrorIs(t, err, ErrThoughtNotFound)
}
