package metrics

import (
	"time"

	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
)

// Noop drops every measurement. Used when metrics.enabled is false.
type Noop struct{}

func NewNoop() coreport.Metrics {
	return Noop{}
}

func (Noop) IncMessages(string) {}
func (Noop) AddPointsAwarded(int64) {}
func (Noop) IncRewards(string) {}
func (Noop) IncLedgerDegraded(string) {}
func (Noop) IncReplyFailures() {}
func (Noop) ObserveUpdate(string, time.Duration) {}
