package domain

import "strings"

// User roles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// User is a back-office operator account
type User struct {
	ID        string `json:"id" csv:"id"`
	Username  string `json:"username" csv:"username" validate:"required,min=3,max=64,alphanumunicode"`
	Email     string `json:"email" csv:"email" validate:"required,email"`
	FirstName string `json:"first_name" csv:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" csv:"last_name" validate:"omitempty,max=100"`
	Role      string `json:"role" csv:"role" validate:"required,oneof=admin editor viewer"`
	Active    bool   `json:"active" csv:"active"`
}

func (u User) Key() string { return u.ID }

// Partner represents a partner company shown on the partners page
type Partner struct {
	ID          string `json:"id" csv:"id"`
	Name        string `json:"name" csv:"name" validate:"required,min=1,max=200"`
	Logo        string `json:"logo" csv:"logo" validate:"omitempty,max=1024"`
	URL         string `json:"url" csv:"url" validate:"omitempty,url"`
	Description string `json:"description" csv:"description" validate:"omitempty,max=2000"`
}

func (p Partner) Key() string { return p.ID }

// Office is a sales/support office location
type Office struct {
	ID        string  `json:"id" csv:"id"`
	City      string  `json:"city" csv:"city" validate:"required,max=100"`
	Address   string  `json:"address" csv:"address" validate:"required,max=500"`
	Phone     string  `json:"phone" csv:"phone" validate:"omitempty,max=50"`
	Email     string  `json:"email" csv:"email" validate:"omitempty,email"`
	Schedule  string  `json:"schedule" csv:"schedule" validate:"omitempty,max=200"`
	Latitude  float64 `json:"latitude" csv:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" csv:"longitude" validate:"gte=-180,lte=180"`
}

func (o Office) Key() string { return o.ID }

// CheckOfficeContact requires at least one way to reach the office
func CheckOfficeContact(o Office) error {
	if strings.TrimSpace(o.Phone) == "" && strings.TrimSpace(o.Email) == "" {
		return ValidationErrors{"phone": "phone or email is required"}
	}
	return nil
}

func DefaultUser() User {
	return User{Role: RoleViewer, Active: true}
}

func DefaultPartner() Partner { return Partner{} }

func DefaultOffice() Office {
	return Office{Schedule: "Mon-Fri 09:00-18:00"}
}
