package reward

import (
	"testing"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_DefaultTable(t *testing.T) {
	evaluator, err := NewEvaluator(nil)
	require.NoError(t, err)

	testCases := []struct {
		points   int64
		expected []string
	}{
		{10, []string{"🥉 Бронзова нагорода!"}},
		{25, []string{"🥈 Срібна нагорода!"}},
		{50, []string{"🥇 Золота нагорода!"}},
		{100, []string{"🏆 Платинова нагорода!"}},
		{0, nil},
		{9, nil},
		{11, nil},
		{12, nil},
		{101, nil},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, evaluator.Evaluate(tc.points), "points=%d", tc.points)
	}
}

func TestEvaluator_IsPure(t *testing.T) {
	evaluator, err := NewEvaluator(nil)
	require.NoError(t, err)

	assert.Equal(t, evaluator.Evaluate(25), evaluator.Evaluate(25))
}

func TestEvaluator_CustomTableIsSorted(t *testing.T) {
	evaluator, err := NewEvaluator([]entity.RewardThreshold{
		{Points: 30, Label: "thirty"},
		{Points: 3, Label: "three"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"three"}, evaluator.Evaluate(3))
	assert.Equal(t, []string{"thirty"}, evaluator.Evaluate(30))
	assert.Empty(t, evaluator.Evaluate(10))
}

func TestEvaluator_InvalidTable(t *testing.T) {
	_, err := NewEvaluator([]entity.RewardThreshold{{Points: -1, Label: "bad"}})

	assert.ErrorIs(t, err, errs.ErrInvalidThreshold)
}
