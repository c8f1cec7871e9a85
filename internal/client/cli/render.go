package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/contactdesk/internal/client/contacts"
	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/client/views"
	dto "github.com/prometheus/client_model/go"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func (a *App) renderDashboard() {
	st := a.dashboard.State()
	if st.Message != "" {
		fmt.Fprintln(a.out, st.Message)
		return
	}
	if !st.Loaded {
		return
	}
	renderSummary(a.out, st.Summary)
}

func renderSummary(w io.Writer, s contacts.Summary) {
	fmt.Fprintf(w, "Contacts: %d  Companies: %d  With added date: %d  With modified date: %d\n",
		s.Total, s.DistinctCompanies, s.WithAddedAt, s.WithModifiedAt)

	renderBuckets(w, "ADDED ON", s.AddedByDate)
	renderBuckets(w, "MODIFIED ON", s.ModifiedByDate)
}

func renderBuckets(w io.Writer, title string, buckets []contacts.DateCount) {
	if len(buckets) == 0 {
		return
	}
	tw := newTable(w)
	fmt.Fprintf(tw, "%s\tCOUNT\n", title)
	for _, b := range buckets {
		fmt.Fprintf(tw, "%s\t%d\n", b.Date, b.Count)
	}
	tw.Flush()
}

func (a *App) renderTables() {
	st := a.tables.State()
	if st.Message != "" {
		fmt.Fprintln(a.out, st.Message)
		return
	}
	rows := a.tables.Rows()
	renderRows(a.out, rows)
	if st.Query != "" {
		fmt.Fprintf(a.out, "%d of %d contacts match %q\n", len(rows), len(st.Contacts), st.Query)
	} else {
		fmt.Fprintf(a.out, "%d contacts\n", len(rows))
	}
}

func renderRows(w io.Writer, rows []models.Row) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCOMPANY\tPHONE\tADDRESS\tSTATE\tZIP\tADDED\tMODIFIED")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, strings.TrimSpace(r.FirstName+" "+r.LastName), r.Email, r.Company,
			r.Phone, r.Address, r.State, r.Zip,
			models.Deref(r.AddedAt), models.Deref(r.LastModifiedDate))
	}
	tw.Flush()
}

// renderOutcome prints the message or notice of the last table operation.
func (a *App) renderOutcome() {
	st := a.tables.State()
	switch {
	case st.Message != "":
		fmt.Fprintln(a.out, st.Message)
	case st.Notice != "":
		fmt.Fprintln(a.out, st.Notice)
	}
}

func (a *App) renderContact(c models.Contact) {
	row := contacts.Project(c)
	tw := newTable(a.out)
	fmt.Fprintf(tw, "ID\t%d\n", c.ID)
	fmt.Fprintf(tw, "Name\t%s %s\n", c.FirstName, c.LastName)
	fmt.Fprintf(tw, "Email\t%s\n", c.Email)
	fmt.Fprintf(tw, "Company\t%s\n", c.Company)
	fmt.Fprintf(tw, "Phone\t%s\n", row.Phone)
	fmt.Fprintf(tw, "Address\t%s\n", row.Address)
	fmt.Fprintf(tw, "State\t%s\n", row.State)
	fmt.Fprintf(tw, "Zip\t%s\n", row.Zip)
	if c.Website != nil {
		fmt.Fprintf(tw, "Website\t%s\n", *c.Website)
	}
	fmt.Fprintf(tw, "Added\t%s\n", models.Deref(c.AddedAt))
	fmt.Fprintf(tw, "Modified\t%s\n", models.Deref(c.LastModifiedDate))
	tw.Flush()
}

func (a *App) renderVerify() {
	st := a.verify.State()
	switch st.Status {
	case views.Verified:
		fmt.Fprintln(a.out, "Email verified.")
	case views.VerificationFailed:
		fmt.Fprintln(a.out, st.Message)
	default:
		if st.Token == "" {
			fmt.Fprintln(a.out, "The link carries no verification token.")
			return
		}
		fmt.Fprintln(a.out, "Verifying email...")
	}
}

// renderMetrics prints counters and histograms from a registry snapshot,
// one line per label set.
func renderMetrics(w io.Writer, families []*dto.MetricFamily) {
	tw := newTable(w)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName() + formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(tw, "%s\t%g\n", name, m.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				fmt.Fprintf(tw, "%s\t%g\n", name, m.GetGauge().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				fmt.Fprintf(tw, "%s\tcount=%d sum=%.3fs\n", name, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	tw.Flush()
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}
