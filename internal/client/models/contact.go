// Package models defines the wire and view types shared by the client's
// transport, services and views.
package models

// Contact is a record of the remote contact collection. Nullable text
// columns that the views always display decode to "" when null; the rest
// stay nil so the table can substitute a placeholder.
type Contact struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Company   string `json:"company"`

	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	State   *string `json:"state,omitempty"`
	Zip     *string `json:"zip,omitempty"`
	Website *string `json:"website,omitempty"`

	// ISO-8601 date or datetime strings as sent by the backend.
	AddedAt          *string `json:"added_at,omitempty"`
	LastModifiedDate *string `json:"lastmodifieddate,omitempty"`
}

// ContactInput is the add/edit form. Timestamps are assigned by the backend.
type ContactInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Input returns the editable fields of c, used to prefill an update.
func (c Contact) Input() ContactInput {
	return ContactInput{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Company:   c.Company,
		Phone:     Deref(c.Phone),
		Address:   Deref(c.Address),
		State:     Deref(c.State),
		Zip:       Deref(c.Zip),
		Website:   Deref(c.Website),
	}
}

// Row is the table projection of a Contact.
type Row struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Company          string  `json:"company"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address"`
	State            string  `json:"state"`
	Zip              string  `json:"zip"`
	AddedAt          *string `json:"added_at"`
	LastModifiedDate *string `json:"lastmodifieddate"`
}

// Deref returns "" for nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Ptr is a convenience for building optional fields.
func Ptr(s string) *string { return &s }
