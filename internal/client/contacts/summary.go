package contacts

import (
	"sort"

	"github.com/dmitrijs2005/contactdesk/internal/client/models"
)

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Summary struct {
	Total             int `json:"total"`
	DistinctCompanies int `json:"distinct_companies"`
	// Contacts that carry the respective timestamp at all.
	WithAddedAt    int         `json:"with_added_at"`
	WithModifiedAt int         `json:"with_modified_at"`
	AddedByDate    []DateCount `json:"added_by_date"`
	ModifiedByDate []DateCount `json:"modified_by_date"`
}

// Summarize counts the collection. Companies are compared verbatim, so
// "Acme" and "ACME" are two companies; a missing or null company decodes
// to "" and counts as the empty one. Bucket lists are ordered by date.
func Summarize(list []models.Contact) Summary {
	companies := make(map[string]struct{}, len(list))
	added := map[string]int{}
	modified := map[string]int{}

	s := Summary{Total: len(list)}
	for _, c := range list {
		companies[c.Company] = struct{}{}

		if key, ok := DateKey(models.Deref(c.AddedAt)); ok {
			added[key]++
			s.WithAddedAt++
		}
		if key, ok := DateKey(models.Deref(c.LastModifiedDate)); ok {
			modified[key]++
			s.WithModifiedAt++
		}
	}

	s.DistinctCompanies = len(companies)
	s.AddedByDate = buckets(added)
	s.ModifiedByDate = buckets(modified)
	return s
}

func buckets(m map[string]int) []DateCount {
	out := make([]DateCount, 0, len(m))
	for date, n := range m {
		out = append(out, DateCount{Date: date, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
