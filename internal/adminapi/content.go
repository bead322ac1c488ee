package adminapi

import (
	"strings"

	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/domain"
	"github.com/talkincode/backoffice/pkg/common"
)

// registerContentRoutes registers pages, blog posts and the FAQ
func registerContentRoutes() {
	mount("pages", screen[domain.Page]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Page] { return c.Pages },
		prepare: func(v *domain.Page) {
			v.Title = strings.TrimSpace(v.Title)
			v.Slug = common.Slugify(common.IfEmptyStr(v.Slug, v.Title))
		},
		unique:     func(v domain.Page) string { return v.Slug },
		uniqueCode: "PAGE_EXISTS",
	})

	mount("posts", screen[domain.Post]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Post] { return c.Posts },
		prepare: func(v *domain.Post) {
			v.Title = strings.TrimSpace(v.Title)
			v.Slug = common.Slugify(common.IfEmptyStr(v.Slug, v.Title))
			v.Tags = common.TrimAll(v.Tags)
			if v.PublishedAt != nil && v.PublishedAt.IsZero() {
				v.PublishedAt = nil
			}
		},
		unique:     func(v domain.Post) string { return v.Slug },
		uniqueCode: "POST_EXISTS",
	})

	mount("qaas", screen[domain.QaA]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.QaA] { return c.QaAs },
		prepare: func(v *domain.QaA) {
			v.Question = strings.TrimSpace(v.Question)
			v.Answer = strings.TrimSpace(v.Answer)
		},
	})
}
