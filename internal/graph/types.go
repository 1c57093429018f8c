package graph

import (
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/murmur-social/murmur/internal/domain"
)

// createdAt values are rendered in the display format the client shows
// verbatim, e.g. "Mar 7, 2026 at 4:05 pm".
const dateLayout = "Jan 2, 2006 at 3:04 pm"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

type userResolver struct {
	u domain.User
}

func (r *userResolver) ID() graphql.ID {
	return graphql.ID(r.u.ID.String())
}

func (r *userResolver) Username() string {
	return r.u.Username
}

func (r *userResolver) Email() string {
	return r.u.Email
}

func (r *userResolver) FriendCount() int32 {
	return int32(r.u.FriendCount)
}

// Friends is populated one level deep: a friend's own friends resolve to an
// empty list while its friendCount stays accurate.
func (r *userResolver) Friends() []*userResolver {
	friends := make([]*userResolver, 0, len(r.u.Friends))
	for _, f := range r.u.Friends {
		friends = append(friends, &userResolver{u: f})
	}
	return friends
}

func (r *userResolver) Thoughts() []*thoughtResolver {
	thoughts := make([]*thoughtResolver, 0, len(r.u.Thoughts))
	for _, t := range r.u.Thoughts {
		thoughts = append(thoughts, &thoughtResolver{t: t})
	}
	return thoughts
}

type thoughtResolver struct {
	t domain.Thought
}

func (r *thoughtResolver) ID() graphql.ID {
	return graphql.ID(r.t.ID.String())
}

func (r *thoughtResolver) ThoughtText() string {
	return r.t.ThoughtText
}

func (r *thoughtResolver) CreatedAt() string {
	return formatDate(r.t.CreatedAt)
}

func (r *thoughtResolver) Username() string {
	return r.t.Username
}

func (r *thoughtResolver) ReactionCount() int32 {
	return int32(len(r.t.Reactions))
}

func (r *thoughtResolver) Reactions() []*reactionResolver {
	reactions := make([]*reactionResolver, 0, len(r.t.Reactions))
	for _, re := range r.t.Reactions {
		reactions = append(reactions, &reactionResolver{re: re})
	}
	return reactions
}

type reactionResolver struct {
	re domain.Reaction
}

func (r *reactionResolver) ID() graphql.ID {
	return graphql.ID(r.re.ID.String())
}

func (r *reactionResolver) ReactionBody() string {
	return r.re.ReactionBody
}

func (r *reactionResolver) CreatedAt() string {
	return formatDate(r.re.CreatedAt)
}

func (r *reactionResolver) Username() string {
	return r.re.Username
}

type authResolver struct {
	token string
	user  domain.User
}

func (r *authResolver) Token() string {
	return r.token
}

func (r *authResolver) User() *userResolver {
	return &userResolver{u: r.user}
}
