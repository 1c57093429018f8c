package domain

import (
	"time"

	"github.com/google/uuid"
)

type Thought struct {
	ID          uuid.UUID  `json:"id"`
	ThoughtText string     `json:"thought_text"`
	Username    string     `json:"username"`
	CreatedAt   time.Time  `json:"created_at"`
	Reactions   []Reaction `json:"reactions"`
}

// Reaction is a short reply embedded in its parent thought. It has no
// independent lifecycle: created by appending to a thought, removed only if
// the thought itself is removed.
type Reaction struct {
	ID           uuid.UUID `json:"id"`
	ReactionBody string    `json:"reaction_body"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
}
