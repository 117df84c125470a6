package core

import "time"

// Message kinds reported to Metrics
const (
	MessageKindGreeting = "greeting"
	MessageKindOther    = "other"
	MessageKindStart    = "start"
	MessageKindScore    = "score"
)

// Metrics records bot activity counters
type Metrics interface {
	// IncMessages counts a processed message of the given kind
	IncMessages(kind string)
	// AddPointsAwarded adds credited points to the running total
	AddPointsAwarded(points int64)
	// IncRewards counts an announced reward
	IncRewards(label string)
	// IncLedgerDegraded counts a ledger call answered without the store
	IncLedgerDegraded(operation string)
	// IncReplyFailures counts a reply the chat platform did not accept
	IncReplyFailures()
	// ObserveUpdate records how long one update took to handle
	ObserveUpdate(source string, elapsed time.Duration)
}
