package domain

import "time"

type Guest struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"first_name" validate:"required,max=100"`
	LastName         string    `json:"last_name" validate:"required,max=150"`
	Email            string    `json:"email" validate:"required,email,max=254"`
	Phone            string    `json:"phone" validate:"required,e164"`
	Passport         string    `json:"passport" validate:"required,max=100"`
	RegistrationDate time.Time `json:"registration_date"`
}

type GuestPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Passport  *string `json:"passport"`
}

func (p GuestPatch) Apply(g *Guest) {
	if p.FirstName != nil {
		g.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		g.LastName = *p.LastName
	}
	if p.Email != nil {
		g.Email = *p.Email
	}
	if p.Phone != nil {
		g.Phone = *p.Phone
	}
	if p.Passport != nil {
		g.Passport = *p.Passport
	}
}
