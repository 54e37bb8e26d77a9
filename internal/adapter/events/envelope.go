// Package events delivers outbox events to external sinks.
package events

import (
	"encoding/json"
	"strconv"
	"time"

	"crowdfund-ledger/internal/core/domain"
)

// Envelope is the wire form of an event shared by all sinks.
type Envelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	CampaignID uint64          `json:"campaign_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// Encode returns the JSON envelope of e.
func Encode(e domain.Event) ([]byte, error) {
	return json.Marshal(Envelope{
		ID:         e.ID,
		Type:       e.Type,
		CampaignID: e.CampaignID,
		OccurredAt: e.CreatedAt.UTC(),
		Payload:    e.Payload,
	})
}

// partitionKey keeps all events of one campaign on one partition.
func partitionKey(e domain.Event) string {
	return strconv.FormatUint(e.CampaignID, 10)
}
