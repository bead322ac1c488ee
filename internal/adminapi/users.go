package adminapi

import (
	"strings"

	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/domain"
)

// registerUserRoutes registers back-office operator accounts
func registerUserRoutes() {
	mount("users", screen[domain.User]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.User] { return c.Users },
		prepare: func(v *domain.User) {
			v.Username = strings.TrimSpace(v.Username)
			v.Email = strings.ToLower(strings.TrimSpace(v.Email))
			v.Role = strings.ToLower(strings.TrimSpace(v.Role))
		},
		unique:     func(v domain.User) string { return v.Username },
		uniqueCode: "USER_EXISTS",
	})
}
