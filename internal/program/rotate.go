package program

import (
	"errors"
	"fmt"
)

// ErrEmptyPool is returned when rotating an empty exercise pool.
var ErrEmptyPool = errors.New("exercise pool is empty")

// PickVaried deterministically selects up to amount exercises from pool.
// The pool is rotated left by seed mod len(pool) and the first amount
// entries are returned, so different seeds give different but reproducible
// selections. The result is a new slice of length min(amount, len(pool)).
func PickVaried(pool []string, amount, seed int) ([]string, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if amount <= 0 {
		return []string{}, nil
	}
	offset := seed % len(pool)
	if offset < 0 {
		offset += len(pool)
	}
	n := min(amount, len(pool))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pool[(offset+i)%len(pool)])
	}
	return out, nil
}

// mustPick is PickVaried for the static pools, where an error can only
// come from a broken table.
func mustPick(pool []string, amount, seed int) []string {
	picked, err := PickVaried(pool, amount, seed)
	if err != nil {
		panic(fmt.Sprintf("program: picking %d from pool: %v", amount, err))
	}
	return picked
}
