package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// MaxDurationSeconds bounds the funding window of a campaign (100 years).
// Larger values would overflow time.Duration arithmetic on the deadline.
const MaxDurationSeconds uint64 = 100 * 365 * 24 * 60 * 60

// Campaign statuses reported to clients. They are derived from the stored
// fields, never persisted.
const (
	StatusOpen       = "open"
	StatusEnded      = "ended"
	StatusPaid       = "paid"
	StatusRefundable = "refundable"
)

// Campaign represents a fundraising campaign.
// Amounts are stored in the smallest value unit (e.g. wei).
type Campaign struct {
	ID        uint64
	Title     string
	Creator   common.Address
	Goal      Amount
	Deadline  time.Time
	Raised    Amount // historical total, not reduced by refunds
	Finalized bool
	CreatedAt time.Time
}

// Ended reports whether the funding window is closed at now. The deadline
// itself is the first instant at which contributions stop.
func (c *Campaign) Ended(now time.Time) bool {
	return !now.Before(c.Deadline)
}

// GoalReached reports whether raised >= goal.
func (c *Campaign) GoalReached() bool {
	return !c.Raised.Lt(&c.Goal)
}

// Refundable reports whether contributors may withdraw their funds.
func (c *Campaign) Refundable() bool {
	return c.Finalized && !c.GoalReached()
}

// Status returns a display status for the campaign at now.
func (c *Campaign) Status(now time.Time) string {
	switch {
	case c.Finalized && c.GoalReached():
		return StatusPaid
	case c.Finalized:
		return StatusRefundable
	case c.Ended(now):
		return StatusEnded
	default:
		return StatusOpen
	}
}
