// Package export writes a dashboard report (summary plus the filtered table)
// as JSON to a local directory or to an S3-compatible bucket.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/client/contacts"
	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/google/uuid"
)

type Report struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Query       string           `json:"query"`
	Summary     contacts.Summary `json:"summary"`
	Rows        []models.Row     `json:"rows"`
}

// NewReport summarizes list and keeps the rows matching query.
func NewReport(list []models.Contact, query string, now time.Time) Report {
	return Report{
		ID:          uuid.NewString(),
		GeneratedAt: now.UTC(),
		Query:       query,
		Summary:     contacts.Summarize(list),
		Rows:        contacts.FilterAndProject(list, query),
	}
}

// Name is the object/file name the report is stored under.
func (r Report) Name() string {
	return fmt.Sprintf("contacts-report-%s-%s.json", r.GeneratedAt.Format("20060102T150405Z"), r.ID[:8])
}

func (r Report) Encode() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return b, nil
}

// Exporter stores a report and returns where it went.
type Exporter interface {
	Export(ctx context.Context, r Report) (location string, err error)
}
