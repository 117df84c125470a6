package reward

import (
	"sort"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/usecase"
)

// Evaluator matches point totals against a fixed reward table
type Evaluator struct {
	thresholds []entity.RewardThreshold
}

// NewEvaluator validates the table and keeps a sorted copy of it.
// An empty table falls back to entity.DefaultRewardThresholds.
func NewEvaluator(thresholds []entity.RewardThreshold) (usecase.RewardEvaluator, error) {
	if len(thresholds) == 0 {
		thresholds = entity.DefaultRewardThresholds()
	}
	if err := entity.ValidateThresholds(thresholds); err != nil {
		return nil, err
	}

	sorted := make([]entity.RewardThreshold, len(thresholds))
	copy(sorted, thresholds)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Points < sorted[j].Points
	})

	return &Evaluator{thresholds: sorted}, nil
}

// Evaluate returns the labels whose threshold equals points exactly.
// Totals that jump over a threshold earn nothing for it.
func (e *Evaluator) Evaluate(points int64) []string {
	var labels []string
	for _, t := range e.thresholds {
		if t.Points == points {
			labels = append(labels, t.Label)
		}
		if t.Points > points {
			break
		}
	}
	return labels
}
