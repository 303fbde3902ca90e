package entities

// MechanicRole distinguishes supervising masters from auxiliaries, whose
// orders require approval and whose commission is settled via PaymentRequest.
type MechanicRole string

const (
	MechanicRoleMaster    MechanicRole = "master"
	MechanicRoleAuxiliary MechanicRole = "auxiliary"
)

// DefaultCommissionPercentage applies when a mechanic has no configured rate.
const DefaultCommissionPercentage int64 = 10

// Mechanic is the directory record the workflow engines consult for
// commission rates, contacts and the master/auxiliary relationship.
//
// Storage model (DynamoDB): PK id. The permission system itself lives
// upstream; this record only answers "who supervises whom" and "what rate".

type Mechanic struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Contact              string       `json:"contact,omitempty"`
	Role                 MechanicRole `json:"role"`
	MasterID             string       `json:"master_id,omitempty"`
	CommissionPercentage int64        `json:"commission_percentage,omitempty"`
}

// CommissionRate returns the configured rate or the default.
func (m Mechanic) CommissionRate() int64 {
	if m.CommissionPercentage > 0 {
		return m.CommissionPercentage
	}
	return DefaultCommissionPercentage
}
