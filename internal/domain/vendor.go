package domain

// Trademark is a registered brand shown alongside products
type Trademark struct {
	ID    string `json:"id" csv:"id"`
	Name  string `json:"name" csv:"name" validate:"required,min=1,max=200"`
	Logo  string `json:"logo" csv:"logo" validate:"omitempty,max=1024"`
	Owner string `json:"owner" csv:"owner" validate:"omitempty,max=200"`
}

func (t Trademark) Key() string { return t.ID }

func DefaultTrademark() Trademark { return Trademark{} }
