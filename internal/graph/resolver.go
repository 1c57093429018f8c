package graph

import (
	"context"
	"errors"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/murmur-social/murmur/internal/service"
	"github.com/murmur-social/murmur/internal/token"
	"github.com/murmur-social/murmur/pkg/validator"
	"github.com/rs/zerolog/log"
)

// Resolver is the root of the API: one method per query and mutation.
// Every method that establishes authorship derives the author from the
// verified context identity, never from client input.
type Resolver struct {
	auth     *service.AuthService
	users    *service.UserService
	thoughts *service.ThoughtService
}

func NewResolver(auth *service.AuthService, users *service.UserService, thoughts *service.ThoughtService) *Resolver {
	return &Resolver{
		auth:     auth,
		users:    users,
		thoughts: thoughts,
	}
}

// Queries

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	identity, ok := token.FromContext(ctx)
	if !ok {
		return nil, errUnauthenticated()
	}

	user, err := r.users.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, mapServiceErr(err, "me")
	}
	return &userResolver{u: *user}, nil
}

func (r *Resolver) ListUsers(ctx context.Context) ([]*userResolver, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, mapServiceErr(err, "listUsers")
	}

	resolvers := make([]*userResolver, 0, len(users))
	for _, u := range users {
		resolvers = append(resolvers, &userResolver{u: u})
	}
	return resolvers, nil
}

func (r *Resolver) GetUser(ctx context.Context, args struct{ Username string }) (*userResolver, error) {
	user, err := r.users.GetByUsername(ctx, args.Username)
	if err != nil {
		return nil, mapServiceErr(err, "getUser")
	}
	if user == nil {
		return nil, nil
	}
	return &userResolver{u: *user}, nil
}

func (r *Resolver) ListThoughts(ctx context.Context, args struct{ Username *string }) ([]*thoughtResolver, error) {
	thoughts, err := r.thoughts.List(ctx, args.Username)
	if err != nil {
		return nil, mapServiceErr(err, "listThoughts")
	}

	resolvers := make([]*thoughtResolver, 0, len(thoughts))
	for _, t := range thoughts {
		resolvers = append(resolvers, &thoughtResolver{t: t})
	}
	return resolvers, nil
}

func (r *Resolver) GetThought(ctx context.Context, args struct{ ID graphql.ID }) (*thoughtResolver, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return nil, nil
	}

	thought, err := r.thoughts.Get(ctx, id)
	if err != nil {
		return nil, mapServiceErr(err, "getThought")
	}
	if thought == nil {
		return nil, nil
	}
	return &thoughtResolver{t: *thought}, nil
}

// Mutations

func (r *Resolver) Register(ctx context.Context, args struct{ Username, Email, Password string }) (*authResolver, error) {
	if errs := validator.ValidateRegister(args.Username, args.Email, args.Password); errs.HasErrors() {
		return nil, errValidation(errs.First())
	}

	result, err := r.auth.Register(ctx, args.Username, args.Email, args.Password)
	if err != nil {
		return nil, mapServiceErr(err, "register")
	}
	return &authResolver{token: result.Token, user: *result.User}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) (*authResolver, error) {
	if errs := validator.ValidateLogin(args.Email, args.Password); errs.HasErrors() {
		return nil, errValidation(errs.First())
	}

	result, err := r.auth.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, mapServiceErr(err, "login")
	}
	return &authResolver{token: result.Token, user: *result.User}, nil
}

func (r *Resolver) CreateThought(ctx context.Context, args struct{ ThoughtText string }) (*thoughtResolver, error) {
	identity, ok := token.FromContext(ctx)
	if !ok {
		return nil, errUnauthenticated()
	}

	if errs := validator.ValidateThoughtText(args.ThoughtText); errs.HasErrors() {
		return nil, errValidation(errs.First())
	}

	thought, err := r.thoughts.Create(ctx, identity.Username, args.ThoughtText)
	if err != nil {
		return nil, mapServiceErr(err, "createThought")
	}
	return &thoughtResolver{t: *thought}, nil
}

func (r *Resolver) AddReaction(ctx context.Context, args struct {
	ThoughtID    graphql.ID
	ReactionBody string
}) (*thoughtResolver, error) {
	identity, ok := token.FromContext(ctx)
	if !ok {
		return nil, errUnauthenticated()
	}

	if errs := validator.ValidateReactionBody(args.ReactionBody); errs.HasErrors() {
		return nil, errValidation(errs.First())
	}

	thoughtID, err := uuid.Parse(string(args.ThoughtID))
	if err != nil {
		return nil, errNotFound("No thought found with this id")
	}

	thought, err := r.thoughts.AddReaction(ctx, identity.Username, thoughtID, args.ReactionBody)
	if err != nil {
		return nil, mapServiceErr(err, "addReaction")
	}
	return &thoughtResolver{t: *thought}, nil
}

func (r *Resolver) AddFriend(ctx context.Context, args struct{ FriendID graphql.ID }) (*userResolver, error) {
	identity, ok := token.FromContext(ctx)
	if !ok {
		return nil, errUnauthenticated()
	}

	friendID, err := uuid.Parse(string(args.FriendID))
	if err != nil {
		return nil, errNotFound("No user found with this id")
	}

	user, err := r.users.AddFriend(ctx, identity.ID, friendID)
	if err != nil {
		return nil, mapServiceErr(err, "addFriend")
	}
	return &userResolver{u: *user}, nil
}

// mapServiceErr translates service sentinels into typed API errors.
// Anything unrecognized is logged and collapsed into a generic internal
// error so store-level detail never reaches the client.
func mapServiceErr(err error, op string) error {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return errValidation("Email is already registered")
	case errors.Is(err, service.ErrUsernameTaken):
		return errValidation("Username is already taken")
	case errors.Is(err, service.ErrInvalidCreds):
		return errInvalidCredentials()
	case errors.Is(err, service.ErrCannotSelfFriend):
		return errValidation("You cannot add yourself as a friend")
	case errors.Is(err, service.ErrUserNotFound):
		return errNotFound("No user found with this id")
	case errors.Is(err, service.ErrThoughtNotFound):
		return errNotFound("No thought found with this id")
	default:
		log.Error().Err(err).Str("op", op).Msg("resolver error")
		return errInternal()
	}
}
