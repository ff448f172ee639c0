package access

import (
	"encoding/json"
	"strings"

	"logistics/internal/pkg/errs"
)

const (
	RoleAdmin           = "admin"
	RoleSales           = "handlowiec"
	RoleWarehouse       = "magazyn"
	warehouseRolePrefix = "magazyn_"
)

// User is the normalized view of an authenticated identity.
type User struct {
	email       string
	name        string
	role        string
	isAdmin     bool
	permissions map[Permission]bool
}

// NewUser builds a User from the stored row. rawPermissions is the JSON permission
// document; a document that cannot be parsed yields an empty permission set.
// rawAdmin is the legacy admin column in any of its encodings.
func NewUser(email, name, role string, rawPermissions []byte, rawAdmin any) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, errs.NewValueIsRequiredError("email")
	}

	doc := parseDocument(rawPermissions)
	u := User{
		email:       email,
		name:        strings.TrimSpace(name),
		role:        strings.ToLower(strings.TrimSpace(role)),
		permissions: doc.permissions(),
	}
	u.isAdmin = u.role == RoleAdmin || IsTruthy(rawAdmin) || doc.adminFlag()
	return u, nil
}

func (u User) Email() string { return u.email }
func (u User) Role() string  { return u.role }
func (u User) IsAdmin() bool { return u.isAdmin }

// Name returns the display name, falling back to the email.
func (u User) Name() string {
	if u.name == "" {
		return u.email
	}
	return u.name
}

func (u User) HasPermission(p Permission) bool {
	return u.permissions[p]
}

// CanPerform answers whether the user holds a capability. Admins hold all of
// them; otherwise the role shortcut or the permission document grants it.
func (u User) CanPerform(c Capability) bool {
	if c.Validate() != nil {
		return false
	}
	if u.isAdmin {
		return true
	}
	switch c { //nolint:exhaustive // respond has no role shortcut
	case SubmitTransportRequests:
		if u.role == RoleSales {
			return true
		}
	case ApproveTransportRequests:
		if u.role == RoleWarehouse || strings.HasPrefix(u.role, warehouseRolePrefix) {
			return true
		}
	}
	return u.HasPermission(c.Permission())
}

// IsTruthy accepts the legacy encodings of the admin flag.
func IsTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int:
		return t == 1
	case int64:
		return t == 1
	case float64:
		return t == 1
	case json.Number:
		return t.String() == "1"
	case []byte:
		return IsTruthy(string(t))
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "t", "yes", "tak":
			return true
		}
	}
	return false
}

type document map[string]any

func parseDocument(raw []byte) document {
	if len(raw) == 0 {
		return document{}
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return document{}
	}
	return doc
}

func (d document) adminFlag() bool {
	return IsTruthy(d["isAdmin"]) || IsTruthy(d["is_admin"])
}

func (d document) permissions() map[Permission]bool {
	out := make(map[Permission]bool)
	for section, value := range d {
		keys, ok := value.(map[string]any)
		if !ok {
			continue
		}
		for key, granted := range keys {
			if flag, ok := granted.(bool); ok && flag {
				out[Permission(section+"."+key)] = true
			}
		}
	}
	return out
}
