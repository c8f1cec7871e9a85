package contacts

import (
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/client/models"
)

// NotAvailable replaces missing phone, address, state and zip values.
const NotAvailable = "N/A"

// FilterAndProject keeps contacts whose first name, last name, company or
// email contains query, ignoring case, and projects them to table rows.
// Input order is preserved and an empty query keeps everything.
func FilterAndProject(list []models.Contact, query string) []models.Row {
	q := strings.ToLower(query)

	rows := make([]models.Row, 0, len(list))
	for _, c := range list {
		if q != "" && !matches(c, q) {
			continue
		}
		rows = append(rows, Project(c))
	}
	return rows
}

func matches(c models.Contact, q string) bool {
	for _, f := range []string{c.FirstName, c.LastName, c.Company, c.Email} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Project maps a contact to its table row. Timestamps pass through as-is.
func Project(c models.Contact) models.Row {
	return models.Row{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Company:          c.Company,
		Phone:            orNA(c.Phone),
		Address:          orNA(c.Address),
		State:            orNA(c.State),
		Zip:              orNA(c.Zip),
		AddedAt:          c.AddedAt,
		LastModifiedDate: c.LastModifiedDate,
	}
}

func orNA(p *string) string {
	if p == nil || *p == "" {
		return NotAvailable
	}
	return *p
}
