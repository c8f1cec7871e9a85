package contacts

import "github.com/dmitrijs2005/contactdesk/internal/client/models"

// Append returns a new slice with c at the end; list is not modified.
func Append(list []models.Contact, c models.Contact) []models.Contact {
	out := make([]models.Contact, 0, len(list)+1)
	out = append(out, list...)
	return append(out, c)
}

// Replace swaps in c for the element with the same ID. Unknown IDs leave
// the collection unchanged.
func Replace(list []models.Contact, c models.Contact) []models.Contact {
	out := make([]models.Contact, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == c.ID {
			out[i] = c
		}
	}
	return out
}

func Remove(list []models.Contact, id int64) []models.Contact {
	out := make([]models.Contact, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the contact with the given ID.
func Find(list []models.Contact, id int64) (models.Contact, bool) {
	for _, c := range list {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}
