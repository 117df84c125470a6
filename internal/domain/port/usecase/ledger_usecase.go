package usecase

import "context"

// PointsLedger credits and reads per-user point totals
type PointsLedger interface {
	// Add credits delta (> 0) points and returns the new total.
	// The display name is stored alongside the points.
	Add(ctx context.Context, userID int64, displayName string, delta int64) (int64, error)

	// Get returns the stored total, 0 when the user has no record
	Get(ctx context.Context, userID int64) (int64, error)
}

// RewardEvaluator names the rewards reached at an exact point total
type RewardEvaluator interface {
	Evaluate(points int64) []string
}
