package adminapi

import (
	"strings"

	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/domain"
)

// registerVendorRoutes registers trademark CRUD routes
func registerVendorRoutes() {
	mount("trademarks", screen[domain.Trademark]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Trademark] { return c.Trademarks },
		prepare: func(v *domain.Trademark) {
			v.Name = strings.TrimSpace(v.Name)
			v.Owner = strings.TrimSpace(v.Owner)
			v.Logo = strings.TrimSpace(v.Logo)
		},
		unique:     func(v domain.Trademark) string { return v.Name },
		uniqueCode: "TRADEMARK_EXISTS",
	})
}
