package ws

import (
	"encoding/json"
	"time"
)

const (
	MessageTypeCriteria    = "criteria"
	MessageTypeRetry       = "retry"
	MessageTypeListing     = "listing"
	MessageTypeJobsUpdated = "jobs_updated"
	MessageTypeError       = "error"
)

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
}

// NotifyJobsUpdated tells every listing session that the open job set
// changed. Sessions decide themselves whether to re-apply their criteria.
func (h *Hub) NotifyJobsUpdated(reason string) {
	if h == nil {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      MessageTypeJobsUpdated,
		Reason:    reason,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
