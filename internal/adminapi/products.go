package adminapi

import (
	"strings"

	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/domain"
	"github.com/talkincode/backoffice/pkg/common"
)

// registerProductRoutes registers the catalog screens: categories,
// advantages, products and solutions
func registerProductRoutes() {
	mount("categories", screen[domain.Category]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Category] { return c.Categories },
		prepare: func(v *domain.Category) {
			v.Title = strings.TrimSpace(v.Title)
			v.Slug = common.Slugify(common.IfEmptyStr(v.Slug, v.Title))
		},
		unique:     func(v domain.Category) string { return v.Slug },
		uniqueCode: "CATEGORY_EXISTS",
	})

	mount("advantages", screen[domain.Advantage]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Advantage] { return c.Advantages },
		prepare: func(v *domain.Advantage) {
			v.Title = strings.TrimSpace(v.Title)
			v.Icon = strings.TrimSpace(v.Icon)
		},
	})

	mount("products", screen[domain.Product]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Product] { return c.Products },
		prepare: func(v *domain.Product) {
			v.Title = strings.TrimSpace(v.Title)
			v.Image = strings.TrimSpace(v.Image)
			v.Category = strings.TrimSpace(v.Category)
			v.Status = common.IfEmptyStr(v.Status, domain.ProductDraft)
			v.Advantages = common.TrimAll(v.Advantages)
		},
		unique:     func(v domain.Product) string { return v.Title },
		uniqueCode: "PRODUCT_EXISTS",
	})

	mount("solutions", screen[domain.Solution]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Solution] { return c.Solutions },
		prepare: func(v *domain.Solution) {
			v.Title = strings.TrimSpace(v.Title)
			v.Products = common.TrimAll(v.Products)
		},
	})
}
