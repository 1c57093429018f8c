package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/murmur-social/murmur/internal/domain"
	"github.com/murmur-social/murmur/internal/repository"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCannotSelfFriend = errors.New("cannot add yourself as a friend")
)

type UserService struct {
	userRepo    repository.UserRepository
	thoughtRepo repository.ThoughtRepository
}

func NewUserService(userRepo repository.UserRepository, thoughtRepo repository.ThoughtRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		thoughtRepo: thoughtRepo,
	}
}

// GetByID returns one user with friends and thoughts populated.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := s.populate(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByUsername returns one user with friends and thoughts populated, or
// nil when no such user exists.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := s.populate(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if err := s.populate(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// AddFriend adds friendID to the caller's friend set. Set semantics: adding
// an existing friend is a no-op. A user can never hold its own id.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID uuid.UUID) (*domain.User, error) {
	if userID == friendID {
		return nil, ErrCannotSelfFriend
	}

	friend, err := s.userRepo.GetByID(ctx, friendID)
	if err != nil {
		return nil, fmt.Errorf("looking up friend: %w", err)
	}
	if friend == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.AddFriend(ctx, userID, friendID); err != nil {
		return nil, fmt.Errorf("adding friend: %w", err)
	}

	return s.GetByID(ctx, userID)
}

// populate expands the friend and thought references one level deep,
// matching how the read queries resolve them.
func (s *UserService) populate(ctx context.Context, user *domain.User) error {
	friends, err := s.userRepo.ListFriends(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("listing friends: %w", err)
	}
	user.Friends = friends

	thoughts, err := s.thoughtRepo.List(ctx, &user.Username)
	if err != nil {
		return fmt.Errorf("listing thoughts: %w", err)
	}
	user.Thoughts = thoughts
	return nil
}
