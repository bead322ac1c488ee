package domain

// Page is a static site page
type Page struct {
	ID        string `json:"id" csv:"id"`
	Title     string `json:"title" csv:"title" validate:"required,min=1,max=200"`
	Slug      string `json:"slug" csv:"slug" validate:"required,max=200"`
	Content   string `json:"content" csv:"content"`
	Published bool   `json:"published" csv:"published"`
}

func (p Page) Key() string { return p.ID }

// Post is a blog post
type Post struct {
	ID          string    `json:"id" csv:"id"`
	Title       string    `json:"title" csv:"title" validate:"required,min=1,max=200"`
	Slug        string    `json:"slug" csv:"slug" validate:"required,max=200"`
	Excerpt     string    `json:"excerpt" csv:"excerpt" validate:"omitempty,max=1000"`
	Content     string    `json:"content" csv:"content" validate:"required"`
	Cover       string    `json:"cover" csv:"cover" validate:"omitempty,max=1024"`
	Tags        IDs       `json:"tags" csv:"tags"`
	PublishedAt *FlexTime `json:"published_at,omitempty" csv:"published_at"`
}

func (p Post) Key() string { return p.ID }

// QaA is one FAQ entry
type QaA struct {
	ID       string `json:"id" csv:"id"`
	Question string `json:"question" csv:"question" validate:"required,max=500"`
	Answer   string `json:"answer" csv:"answer" validate:"required"`
	Position int    `json:"position" csv:"position" validate:"gte=0"`
}

func (q QaA) Key() string { return q.ID }

func DefaultPage() Page { return Page{} }

func DefaultPost() Post { return Post{Tags: IDs{}} }

func DefaultQaA() QaA { return QaA{} }
