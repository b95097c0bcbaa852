package models

import "time"

// Key types accepted by the security_keys.type check constraint.
const (
	KeyTypePassword = "password"
	KeyTypeAPIKey   = "api_key"
	KeyTypePasskey  = "passkey"
	KeyTypeOther    = "other"
)

// ValidKeyType reports whether t is one of the four supported key types.
func ValidKeyType(t string) bool {
	switch t {
	case KeyTypePassword, KeyTypeAPIKey, KeyTypePasskey, KeyTypeOther:
		return true
	}
	return false
}

// SecurityKey is one stored secret owned by UserID.
type SecurityKey struct {
	ID          string
	UserID      string
	Name        string
	Type        string
	Description string
	Value       string
	URL         string
	Username    string
	Tags        []string
	ExpiresAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// KeyFilter narrows a listing to rows where Column equals Value. Column must
// be one of the names accepted by the keys service.
type KeyFilter struct {
	Column string
	Value  string
}

// KeyQuery describes a listing of one user's keys.
type KeyQuery struct {
	UserID     string
	Filter     *KeyFilter
	OrderBy    string
	Descending bool
}
