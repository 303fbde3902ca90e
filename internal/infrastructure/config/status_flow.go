package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"moto_garage/internal/domain/entities"
)

// DefaultStatusFlow is the stock workshop flow used when STATUS_FLOW_JSON is
// not set. Workshops with custom stages override it with their own list.
func DefaultStatusFlow() entities.StatusFlow {
	flow, err := entities.NewStatusFlow([]entities.Status{
		{Code: "received", Label: "Received"},
		{Code: "diagnosing", Label: "Diagnosing"},
		{Code: "awaiting_approval", Label: "Awaiting approval"},
		{Code: "in_repair", Label: "In repair"},
		{Code: "ready", Label: "Ready for pickup", IsReady: true},
		{Code: "delivered", Label: "Delivered", IsTerminal: true, IsDelivered: true},
	})
	if err != nil {
		// The default list is static; a validation failure is a programming error.
		panic(err)
	}
	return flow
}

// LoadStatusFlow builds the order status flow from STATUS_FLOW_JSON, a JSON
// array of status objects. An unset variable yields the default flow; a set
// but invalid one is a hard startup error, not a silent fallback.
func LoadStatusFlow() (entities.StatusFlow, error) {
	raw := os.Getenv("STATUS_FLOW_JSON")
	if raw == "" {
		return DefaultStatusFlow(), nil
	}

	var statuses []entities.Status
	if err := json.Unmarshal([]byte(raw), &statuses); err != nil {
		return entities.StatusFlow{}, fmt.Errorf("parse STATUS_FLOW_JSON: %w", err)
	}

	flow, err := entities.NewStatusFlow(statuses)
	if err != nil {
		return entities.StatusFlow{}, fmt.Errorf("invalid STATUS_FLOW_JSON: %w", err)
	}
	log.Printf("[config][status_flow] custom flow loaded statuses=%d", len(flow.Statuses))
	return flow, nil
}
