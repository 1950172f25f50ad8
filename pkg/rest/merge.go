package rest

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MergePolicy governs how failures are treated while folding several
// list-payload results into one.
type MergePolicy int

const (
	// IgnoreFailure skips failed inputs and keeps folding. This is the
	// default. Note the surprising consequence: when every input fails the
	// merge still yields a success wrapping an empty list.
	IgnoreFailure MergePolicy = iota
	// PreferredFailure short-circuits on the first failed input, discarding
	// anything accumulated so far.
	PreferredFailure
)

// Merge folds primary followed by others, in that order, into a single
// result. Successful payload items are appended to one accumulated list;
// the accumulated success carries the status, headers and raw handle of the
// most recently merged success. Failure treatment depends on policy.
func Merge[T any](ctx context.Context, primary Result[[]T], others []Result[[]T], policy MergePolicy) Result[[]T] {
	if !IsNil(ctx.Err()) {
		return primary
	}

	inputs := make([]Result[[]T], 0, len(others)+1)
	inputs = append(inputs, primary)
	inputs = append(inputs, others...)

	acc := make([]T, 0)
	merged := Result[[]T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		kind:      kindSuccess,
		hasData:   true,
	}

	for _, in := range inputs {
		if in.IsFailure() {
			if policy == PreferredFailure {
				return in
			}
			continue
		}

		if in.hasData {
			acc = append(acc, in.data...)
		}
		merged.status = in.status
		merged.headers = in.headers
		merged.raw = in.raw
	}

	merged.data = acc
	return merged
}
