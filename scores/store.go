// Package scores persists the single best score across sessions.
package scores

import (
	"context"
	"fmt"
)

// Store reads and writes the best score.
type Store interface {
	Best(ctx context.Context) (int, error)
	SaveBest(ctx context.Context, score int) error
	Close() error
}

// Open returns the store for driver, "json" or "sqlite".
func Open(driver, path string) (Store, error) {
	switch driver {
	case "json", "":
		return NewJSONStore(path), nil
	case "sqlite":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown score store driver %q", driver)
	}
}

// Record saves score if it beats the stored best. It returns the best score
// after the call and whether score replaced it.
func Record(ctx context.Context, s Store, score int) (int, bool, error) {
	best, err := s.Best(ctx)
	if err != nil {
		return 0, false, err
	}
	if score <= best {
		return best, false, nil
	}
	if err := s.SaveBest(ctx, score); err != nil {
		return best, false, err
	}
	return score, true, nil
}
