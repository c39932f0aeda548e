// Package matcher holds gomock matchers shared by service and delivery tests.
package matcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"
)

type deadlineMatcher struct {
	max time.Duration
}

func (m deadlineMatcher) Matches(x any) bool {
	ctx, ok := x.(context.Context)
	if !ok {
		return false
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return false
	}
	remaining := time.Until(deadline)
	return remaining > 0 && remaining <= m.max
}

func (m deadlineMatcher) String() string {
	return fmt.Sprintf("context with a deadline at most %s away", m.max)
}

// ContextWithDeadlineWithin matches a context that carries a deadline no
// later than max from now.
func ContextWithDeadlineWithin(max time.Duration) gomock.Matcher {
	return deadlineMatcher{max: max}
}

type valueMatcher struct {
	key  any
	want any
}

func (m valueMatcher) Matches(x any) bool {
	ctx, ok := x.(context.Context)
	return ok && ctx.Value(m.key) == m.want
}

func (m valueMatcher) String() string {
	return fmt.Sprintf("context with %v = %v", m.key, m.want)
}

// ContextWithValue matches a context whose Value(key) equals want.
func ContextWithValue(key, want any) gomock.Matcher {
	return valueMatcher{key: key, want: want}
}
