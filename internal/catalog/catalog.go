package catalog

import (
	"sort"

	"github.com/talkincode/backoffice/internal/backend"
	"github.com/talkincode/backoffice/internal/domain"
	"github.com/talkincode/backoffice/pkg/tableview"
)

// Catalog holds the resource of every back-office screen
type Catalog struct {
	Categories    *Resource[domain.Category]
	Advantages    *Resource[domain.Advantage]
	Products      *Resource[domain.Product]
	Solutions     *Resource[domain.Solution]
	Prices        *Resource[domain.Price]
	ServicePacks  *Resource[domain.ServicePack]
	BonusServices *Resource[domain.BonusService]
	Partners      *Resource[domain.Partner]
	Trademarks    *Resource[domain.Trademark]
	Offices       *Resource[domain.Office]
	Pages         *Resource[domain.Page]
	Posts         *Resource[domain.Post]
	Users         *Resource[domain.User]
	QaAs          *Resource[domain.QaA]
}

// New wires every screen to client
func New(client *backend.Client) *Catalog {
	c := &Catalog{}

	c.Categories = &Resource[domain.Category]{
		API:          backend.NewResource[domain.Category](client, "category", "categories"),
		Label:        "Categories",
		DisplayField: "title",
		Display:      func(v domain.Category) string { return v.Title },
		Columns: map[string]tableview.Column[domain.Category]{
			"id":    func(v domain.Category) any { return v.ID },
			"title": func(v domain.Category) any { return v.Title },
			"slug":  func(v domain.Category) any { return v.Slug },
		},
		DefaultSort: "title",
		Defaults:    domain.DefaultCategory,
	}

	c.Advantages = &Resource[domain.Advantage]{
		API:          backend.NewResource[domain.Advantage](client, "advantage", ""),
		Label:        "Advantages",
		DisplayField: "title",
		Display:      func(v domain.Advantage) string { return v.Title },
		Columns: map[string]tableview.Column[domain.Advantage]{
			"id":    func(v domain.Advantage) any { return v.ID },
			"title": func(v domain.Advantage) any { return v.Title },
		},
		DefaultSort: "title",
		Defaults:    domain.DefaultAdvantage,
	}

	c.Products = &Resource[domain.Product]{
		API:          backend.NewResource[domain.Product](client, "product", ""),
		Label:        "Products",
		DisplayField: "title",
		Display:      func(v domain.Product) string { return v.Title },
		Columns: map[string]tableview.Column[domain.Product]{
			"id":       func(v domain.Product) any { return v.ID },
			"title":    func(v domain.Product) any { return v.Title },
			"category": func(v domain.Product) any { return v.Category },
			"status":   func(v domain.Product) any { return v.Status },
		},
		DefaultSort: "title",
		Defaults:    domain.DefaultProduct,
		Options: []OptionLoader{
			OptionsFrom("category", c.Categories),
			OptionsFrom("advantages", c.Advantages),
		},
	}

	c.Solutions = &Resource[domain.Solution]{
		API:          backend.NewResource[domain.Solution](client, "solution", ""),
		Label:        "Solutions",
		DisplayField: "title",
		Display:      func(v domain.Solution) string { return v.Title },
		Columns: map[string]tableview.Column[domain.Solution]{
			"id":       func(v domain.Solution) any { return v.ID },
			"title":    func(v domain.Solution) any { return v.Title },
			"products": func(v domain.Solution) any { return len(v.Products) },
		},
		DefaultSort: "title",
		Defaults:    domain.DefaultSolution,
		Options: []OptionLoader{
			OptionsFrom("products", c.Products),
		},
	}

	c.Prices = &Resource[domain.Price]{
		API:          backend.NewResource[domain.Price](client, "price", ""),
		Label:        "Prices",
		DisplayField: "title",
		Display:      func(v domain.Price) string { return v.Title },
		Columns: map[string]tableview.Column[domain.Price]{
			"id":       func(v domain.Price) any { return v.ID },
			"title":    func(v domain.Price) any { return v.Title },
			"amount":   func(v domain.Price) any { return v.Amount },
			"currency": func(v domain.Price) any { return v.Currency },
			"period":   func(v domain.Price) any { return v.Period },
		},
		DefaultSort: "title",
		Defaults:    domain.DefaultPrice,
	}

	c.BonusServices = &Resource[domain.BonusService]{
		API:          backend.NewResource[domain.BonusService](client, "bonus-service", ""),
		Label:        "Bonus services",
		DisplayField: "title",
		Display:      func(v domain.BonusService) string { return v.Title },
		Columns: map[string]tableview.Column[domain.BonusService]{
			"id":    func(v domain.BonusService) any { return v.ID },
			"title": func(v domain.BonusService) any { return v.Title },
			"unit":  func(v domain.BonusService) any { return v.Unit },
			"min":   func(v domain.BonusService) any { return v.Min },
			"max":   func(v domain.BonusService) any { return v.Max },
			"price": func(v domain.BonusService) any { return v.Price },
		},
		DefaultSort: "title",
		Defaults:    domain.DefaultBonusService,
	}

	c.ServicePacks = &Resource[domain.ServicePack]{
		API:          backend.NewResource[domain.ServicePack](client, "service-pack", ""),
		Label:        "Service packs",
		DisplayField: "title",
		Display:      func(v domain.ServicePack) string { return v.Title },
		Columns: map[string]tableview.Column[domain.ServicePack]{
			"id":     func(v domain.ServicePack) any { return v.ID },
			"title":  func(v domain.ServicePack) any { return v.Title },
			"prices": func(v domain.ServicePack) any { return len(v.Prices) },
		},
		DefaultSort: "title",
		Defaults:    domain.DefaultServicePack,
		Options: []OptionLoader{
			OptionsFrom("prices", c.Prices),
			OptionsFrom("bonus_services", c.BonusServices),
		},
	}

	c.Partners = &Resource[domain.Partner]{
		API:          backend.NewResource[domain.Partner](client, "partner", ""),
		Label:        "Partners",
		DisplayField: "name",
		Display:      func(v domain.Partner) string { return v.Name },
		Columns: map[string]tableview.Column[domain.Partner]{
			"id":   func(v domain.Partner) any { return v.ID },
			"name": func(v domain.Partner) any { return v.Name },
			"url":  func(v domain.Partner) any { return v.URL },
		},
		DefaultSort: "name",
		Defaults:    domain.DefaultPartner,
	}

	c.Trademarks = &Resource[domain.Trademark]{
		API:          backend.NewResource[domain.Trademark](client, "trademark", ""),
		Label:        "Trademarks",
		DisplayField: "name",
		Display:      func(v domain.Trademark) string { return v.Name },
		Columns: map[string]tableview.Column[domain.Trademark]{
			"id":    func(v domain.Trademark) any { return v.ID },
			"name":  func(v domain.Trademark) any { return v.Name },
			"owner": func(v domain.Trademark) any { return v.Owner },
		},
		DefaultSort: "name",
		Defaults:    domain.DefaultTrademark,
	}

	c.Offices = &Resource[domain.Office]{
		API:          backend.NewResource[domain.Office](client, "office", ""),
		Label:        "Offices",
		DisplayField: "city",
		Display:      func(v domain.Office) string { return v.City },
		Columns: map[string]tableview.Column[domain.Office]{
			"id":      func(v domain.Office) any { return v.ID },
			"city":    func(v domain.Office) any { return v.City },
			"address": func(v domain.Office) any { return v.Address },
		},
		DefaultSort: "city",
		Defaults:    domain.DefaultOffice,
		Check:       domain.CheckOfficeContact,
	}

	c.Pages = &Resource[domain.Page]{
		API:          backend.NewResource[domain.Page](client, "page", ""),
		Label:        "Pages",
		DisplayField: "title",
		Display:      func(v domain.Page) string { return v.Title },
		Columns: map[string]tableview.Column[domain.Page]{
			"id":        func(v domain.Page) any { return v.ID },
			"title":     func(v domain.Page) any { return v.Title },
			"slug":      func(v domain.Page) any { return v.Slug },
			"published": func(v domain.Page) any { return v.Published },
		},
		DefaultSort: "title",
		Defaults:    domain.DefaultPage,
	}

	c.Posts = &Resource[domain.Post]{
		API:          backend.NewResource[domain.Post](client, "post", ""),
		Label:        "Posts",
		DisplayField: "title",
		Display:      func(v domain.Post) string { return v.Title },
		Columns: map[string]tableview.Column[domain.Post]{
			"id":    func(v domain.Post) any { return v.ID },
			"title": func(v domain.Post) any { return v.Title },
			"slug":  func(v domain.Post) any { return v.Slug },
			"published_at": func(v domain.Post) any {
				if v.PublishedAt == nil || v.PublishedAt.IsZero() {
					return nil
				}
				return v.PublishedAt.Time
			},
		},
		DefaultSort:  "published_at",
		DefaultOrder: tableview.Desc,
		Defaults:     domain.DefaultPost,
	}

	c.Users = &Resource[domain.User]{
		API:          backend.NewResource[domain.User](client, "user", ""),
		Label:        "Users",
		DisplayField: "username",
		Display:      func(v domain.User) string { return v.Username },
		Columns: map[string]tableview.Column[domain.User]{
			"id":       func(v domain.User) any { return v.ID },
			"username": func(v domain.User) any { return v.Username },
			"email":    func(v domain.User) any { return v.Email },
			"role":     func(v domain.User) any { return v.Role },
			"active":   func(v domain.User) any { return v.Active },
		},
		DefaultSort: "username",
		Defaults:    domain.DefaultUser,
	}

	c.QaAs = &Resource[domain.QaA]{
		API:          backend.NewResource[domain.QaA](client, "qaa", ""),
		Label:        "Questions and answers",
		DisplayField: "question",
		Display:      func(v domain.QaA) string { return v.Question },
		Columns: map[string]tableview.Column[domain.QaA]{
			"id":       func(v domain.QaA) any { return v.ID },
			"question": func(v domain.QaA) any { return v.Question },
			"position": func(v domain.QaA) any { return v.Position },
		},
		DefaultSort: "position",
		Defaults:    domain.DefaultQaA,
	}

	return c
}

// All returns every screen ordered by plural name
func (c *Catalog) All() []Descriptor {
	all := []Descriptor{
		c.Categories, c.Advantages, c.Products, c.Solutions,
		c.Prices, c.ServicePacks, c.BonusServices,
		c.Partners, c.Trademarks, c.Offices,
		c.Pages, c.Posts, c.Users, c.QaAs,
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Meta().Plural < all[j].Meta().Plural })
	return all
}

// Lookup finds a screen by singular or plural name
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	for _, d := range c.All() {
		m := d.Meta()
		if m.Name == name || m.Plural == name {
			return d, true
		}
	}
	return nil, false
}
