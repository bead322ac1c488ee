package adminapi

import (
	"strings"

	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/domain"
)

// registerPartnersRoutes registers partners and offices
func registerPartnersRoutes() {
	mount("partners", screen[domain.Partner]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Partner] { return c.Partners },
		prepare: func(v *domain.Partner) {
			v.Name = strings.TrimSpace(v.Name)
			v.URL = strings.TrimSpace(v.URL)
			v.Logo = strings.TrimSpace(v.Logo)
		},
		unique:     func(v domain.Partner) string { return v.Name },
		uniqueCode: "DUPLICATE_PARTNER",
	})

	mount("offices", screen[domain.Office]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Office] { return c.Offices },
		prepare: func(v *domain.Office) {
			v.City = strings.TrimSpace(v.City)
			v.Address = strings.TrimSpace(v.Address)
			v.Phone = strings.TrimSpace(v.Phone)
			v.Email = strings.TrimSpace(v.Email)
		},
	})
}
