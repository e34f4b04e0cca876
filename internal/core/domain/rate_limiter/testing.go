package ratelimiter

import "context"

// FakeRateLimiter records every key it was asked about and answers with a
// fixed verdict.
type FakeRateLimiter struct {
	IsAllowed   bool
	CheckedKeys []string
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed}
}

func (rl *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	rl.CheckedKeys = append(rl.CheckedKeys, key)
	if rl.IsAllowed {
		return Result{IsAllowed: true}
	}
	return Result{IsAllowed: false}
}
