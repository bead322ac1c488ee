package domain

// Product status values
const (
	ProductDraft    = "draft"
	ProductActive   = "active"
	ProductArchived = "archived"
)

// Category groups products in the catalog
type Category struct {
	ID          string `json:"id" csv:"id"`
	Title       string `json:"title" csv:"title" validate:"required,min=1,max=200"`
	Slug        string `json:"slug" csv:"slug" validate:"required,max=200"`
	Description string `json:"description" csv:"description" validate:"omitempty,max=2000"`
}

func (c Category) Key() string { return c.ID }

// Advantage is a selling point shown on product pages
type Advantage struct {
	ID          string `json:"id" csv:"id"`
	Title       string `json:"title" csv:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" csv:"description" validate:"omitempty,max=2000"`
	Icon        string `json:"icon" csv:"icon" validate:"omitempty,max=1024"` // URL returned by the icon upload endpoint
}

func (a Advantage) Key() string { return a.ID }

// Product is a sellable hosting/telecom offering
type Product struct {
	ID          string `json:"id" csv:"id"`
	Title       string `json:"title" csv:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" csv:"description" validate:"omitempty,max=5000"`
	Category    string `json:"category" csv:"category" validate:"required"` // Category ID
	Image       string `json:"image" csv:"image" validate:"omitempty,max=1024"`
	Advantages  IDs    `json:"advantages" csv:"advantages"`
	Status      string `json:"status" csv:"status" validate:"required,oneof=draft active archived"`
}

func (p Product) Key() string { return p.ID }

// Solution bundles products for a customer segment
type Solution struct {
	ID          string `json:"id" csv:"id"`
	Title       string `json:"title" csv:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" csv:"description" validate:"omitempty,max=5000"`
	Icon        string `json:"icon" csv:"icon" validate:"omitempty,max=1024"`
	Products    IDs    `json:"products" csv:"products" validate:"min=1,dive,required"`
}

func (s Solution) Key() string { return s.ID }

func DefaultCategory() Category { return Category{} }

func DefaultAdvantage() Advantage { return Advantage{} }

func DefaultProduct() Product {
	return Product{Status: ProductDraft, Advantages: IDs{}}
}

func DefaultSolution() Solution {
	return Solution{Products: IDs{}}
}
