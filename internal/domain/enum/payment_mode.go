package enum

// PaymentMode is how a payment was collected
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeOnline PaymentMode = "ONLINE"
	PaymentModeCard   PaymentMode = "CARD"
)

// Valid reports whether the mode is one of the known values.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeOnline, PaymentModeCard:
		return true
	}
	return false
}

// Role is a user's fixed role. There is no permission table; each role
// maps to a set of route groups in the router.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleInventory Role = "inventory"
	RoleBiller    Role = "biller"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleInventory, RoleBiller:
		return true
	}
	return false
}
