// Package contributors acquires the list of names to show. A live source is
// tried first; any failure falls back to a compiled-in list.
package contributors

import (
	"context"
	"errors"
	"log"
)

// ErrEmpty is returned when a source produced no usable names.
var ErrEmpty = errors.New("contributors: empty name list")

// Source produces contributor names. Duplicates are allowed.
type Source interface {
	Names(ctx context.Context) ([]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]string, error)

// Names calls f.
func (f SourceFunc) Names(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// Outcome tags a Resolution.
type Outcome int

const (
	// OK means the source produced names.
	OK Outcome = iota
	// UseFallback means the static list should be used.
	UseFallback
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case UseFallback:
		return "use-fallback"
	default:
		return "unknown"
	}
}

// Resolution is the result of asking a source for names.
type Resolution struct {
	Outcome Outcome
	Names   []string // Set when Outcome is OK
	Err     error    // Why the fallback is needed, if known
}

// Load asks src for names. It never fails: errors and empty results become
// UseFallback. A nil src resolves straight to UseFallback.
func Load(ctx context.Context, src Source) Resolution {
	if src == nil {
		return Resolution{Outcome: UseFallback}
	}
	names, err := src.Names(ctx)
	if err != nil {
		return Resolution{Outcome: UseFallback, Err: err}
	}
	names = dropBlank(names)
	if len(names) == 0 {
		return Resolution{Outcome: UseFallback, Err: ErrEmpty}
	}
	return Resolution{Outcome: OK, Names: names}
}

// Resolve returns the names from src, or the static list when src cannot
// deliver. The Resolution is returned for reporting.
func Resolve(ctx context.Context, src Source) ([]string, Resolution) {
	res := Load(ctx, src)
	if res.Outcome == OK {
		log.Printf("contributors: loaded %d names", len(res.Names))
		return res.Names, res
	}
	if res.Err != nil {
		log.Printf("contributors: using static list: %v", res.Err)
	} else {
		log.Printf("contributors: using static list")
	}
	return Static(), res
}

// Static returns a copy of the compiled-in list.
func Static() []string {
	out := make([]string, len(staticNames))
	copy(out, staticNames)
	return out
}

func dropBlank(names []string) []string {
	out := names[:0:0]
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
