package statuschecks

import "context"

// DefaultListLimit caps how many records List returns.
const DefaultListLimit = 1000

// Repo persists status checks. Implementations only append and read.
// List returns at most limit of the most recently inserted records,
// oldest first.
type Repo interface {
	Insert(ctx context.Context, check StatusCheck) error
	List(ctx context.Context, limit int) ([]StatusCheck, error)
}
