// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

const DefaultIndex = "restaurant-audit-logs"

type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	UserID        string          `json:"user_id"`
	Action        string          `json:"action"`
	ResourceType  string          `json:"resource_type"`
	ResourceID    string          `json:"resource_id"`
	Success       bool            `json:"success"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// ChangeDetails encodes the before and after snapshots of a mutation.
func ChangeDetails(before, after interface{}) json.RawMessage {
	data, err := json.Marshal(map[string]interface{}{
		"before": before,
		"after":  after,
	})
	if err != nil {
		return nil
	}
	return data
}
