package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
)

// RewardThreshold maps an exact point total to an announcement label
type RewardThreshold struct {
	Points int64  `mapstructure:"points"`
	Label  string `mapstructure:"label"`
}

// DefaultRewardThresholds returns the built-in reward table in ascending order
func DefaultRewardThresholds() []RewardThreshold {
	return []RewardThreshold{
		{Points: 10, Label: "🥉 Бронзова нагорода!"},
		{Points: 25, Label: "🥈 Срібна нагорода!"},
		{Points: 50, Label: "🥇 Золота нагорода!"},
		{Points: 100, Label: "🏆 Платинова нагорода!"},
	}
}

// ValidateThresholds checks that every threshold is positive, labelled and unique
func ValidateThresholds(thresholds []RewardThreshold) error {
	seen := make(map[int64]struct{}, len(thresholds))
	for _, t := range thresholds {
		if t.Points <= 0 {
			return fmt.Errorf("%w: points must be positive, got %d", errs.ErrInvalidThreshold, t.Points)
		}
		if t.Label == "" {
			return fmt.Errorf("%w: empty label for %d points", errs.ErrInvalidThreshold, t.Points)
		}
		if _, ok := seen[t.Points]; ok {
			return fmt.Errorf("%w: duplicate threshold %d", errs.ErrInvalidThreshold, t.Points)
		}
		seen[t.Points] = struct{}{}
	}
	return nil
}
