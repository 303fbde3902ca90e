package entities

import "errors"

// Status is one entry of a workshop's configured order flow.
//
// The flow is data, not a hard-coded enum: workshops rename and reorder their
// states. Two states are structurally significant regardless of naming and are
// identified by flag, never by code string:
//   - IsReady: gates the "finalize and collect payment" action
//   - IsDelivered: ends the order's operational life (always terminal)

type Status struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	IsTerminal  bool   `json:"is_terminal"`
	IsReady     bool   `json:"is_ready"`
	IsDelivered bool   `json:"is_delivered"`
}

// StatusFlow is the ordered status list injected into the order engine.
type StatusFlow struct {
	Statuses []Status
}

var (
	ErrEmptyStatusFlow      = errors.New("status flow has no statuses")
	ErrNoReadyStatus        = errors.New("status flow needs exactly one ready status")
	ErrNoDeliveredStatus    = errors.New("status flow needs exactly one delivered status")
	ErrDeliveredNotTerminal = errors.New("delivered status must be terminal")
	ErrFirstStatusTerminal  = errors.New("first status must not be terminal")
	ErrDuplicateStatusCode  = errors.New("duplicate status code in flow")
)

func NewStatusFlow(statuses []Status) (StatusFlow, error) {
	if len(statuses) == 0 {
		return StatusFlow{}, ErrEmptyStatusFlow
	}
	if statuses[0].IsTerminal {
		return StatusFlow{}, ErrFirstStatusTerminal
	}

	seen := make(map[string]bool, len(statuses))
	ready, delivered := 0, 0
	for _, s := range statuses {
		if seen[s.Code] {
			return StatusFlow{}, ErrDuplicateStatusCode
		}
		seen[s.Code] = true
		if s.IsReady {
			ready++
		}
		if s.IsDelivered {
			delivered++
			if !s.IsTerminal {
				return StatusFlow{}, ErrDeliveredNotTerminal
			}
		}
	}
	if ready != 1 {
		return StatusFlow{}, ErrNoReadyStatus
	}
	if delivered != 1 {
		return StatusFlow{}, ErrNoDeliveredStatus
	}
	return StatusFlow{Statuses: statuses}, nil
}

// Initial returns the configured first state of the flow.
func (f StatusFlow) Initial() Status {
	return f.Statuses[0]
}

// ByCode resolves a status code. ok is false for codes outside the flow.
func (f StatusFlow) ByCode(code string) (Status, bool) {
	for _, s := range f.Statuses {
		if s.Code == code {
			return s, true
		}
	}
	return Status{}, false
}

// Next returns the status after the given code in the configured order.
// ok is false when the code is unknown or already last.
func (f StatusFlow) Next(code string) (Status, bool) {
	for i, s := range f.Statuses {
		if s.Code == code {
			if i+1 < len(f.Statuses) {
				return f.Statuses[i+1], true
			}
			return Status{}, false
		}
	}
	return Status{}, false
}
