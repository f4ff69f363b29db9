package domain

import "time"

type User struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	Permissions  []string  `json:"permissions"`
	Blocked      bool      `json:"blocked"`
	CreatedOn    time.Time `json:"created_on"`
}

// Capability is the read-only view of the caller's identity and
// permissions. It is passed explicitly to any operation that needs to make
// an authorization decision; there is no ambient/global current-user state.
type Capability struct {
	UserID      int32
	Name        string
	Roles       []string
	Permissions []string
}

const (
	PermRentalsExtend = "rentals.extend"
	PermRentalsWrite  = "rentals.write"
	PermStockWrite    = "stock.write"
	PermPaymentsRead  = "payments.read"
	PermAuditRead     = "audit.read"
)

// Has reports whether the capability carries the named permission. The
// admin role implies every permission.
func (c Capability) Has(perm string) bool {
	for _, r := range c.Roles {
		if r == "admin" {
			return true
		}
	}
	for _, p := range c.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// AuditEntry is one row of the admin audit log.
type AuditEntry struct {
	ID        int32     `json:"id"`
	ActorID   int32     `json:"actor_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  int32     `json:"entity_id"`
	Detail    string    `json:"detail"`
	CreatedOn time.Time `json:"created_on"`
}
