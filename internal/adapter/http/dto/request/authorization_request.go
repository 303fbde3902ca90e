package request

import (
	"strings"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase"
)

// ProposeUpdateRequest is additional work discovered mid-repair, proposed to
// the client through the order's public link.
type ProposeUpdateRequest struct {
	Type                  string   `json:"type" binding:"required"`
	Title                 string   `json:"title" binding:"required"`
	Description           string   `json:"description"`
	EstimatedPrice        float64  `json:"estimated_price"`
	RequiresAuthorization bool     `json:"requires_authorization"`
	Photos                []string `json:"photos"`
}

func (r ProposeUpdateRequest) ToCommand(orderID string) usecase.ProposeUpdateCommand {
	return usecase.ProposeUpdateCommand{
		OrderID:               orderID,
		Type:                  strings.TrimSpace(r.Type),
		Title:                 strings.TrimSpace(r.Title),
		Description:           strings.TrimSpace(r.Description),
		EstimatedPrice:        entities.CentsFromFloat(r.EstimatedPrice),
		RequiresAuthorization: r.RequiresAuthorization,
		Photos:                r.Photos,
	}
}

// DecisionRequest is the client's verdict on a pending update.
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}
