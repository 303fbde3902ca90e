package request

// InitiatePaymentRequest starts commission settlement from a master to one
// of their auxiliaries.
type InitiatePaymentRequest struct {
	MasterID    string `json:"master_id" binding:"required"`
	AuxiliaryID string `json:"auxiliary_id" binding:"required"`
	Notes       string `json:"notes"`
}
