package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/client/export"
	"github.com/dmitrijs2005/contactdesk/internal/client/router"
)

// Export writes a report of the dashboard's collection, with the table rows
// filtered by query, to the configured destination.
func (a *App) Export(ctx context.Context, query string) error {
	if a.location != router.DashboardPath || !a.dashboard.State().Loaded {
		a.goTo(ctx, router.DashboardPath)
	}
	if a.location != router.DashboardPath {
		return nil
	}
	st := a.dashboard.State()
	if !st.Loaded {
		return nil
	}

	report := export.NewReport(st.Contacts, query, a.now())
	where, err := a.exporter.Export(ctx, report)
	if err != nil {
		return fmt.Errorf("export report: %w", err)
	}
	a.log.Info(ctx, "report exported", "location", where, "rows", len(report.Rows))
	fmt.Fprintf(a.out, "Report with %d of %d contacts written to %s\n", len(report.Rows), report.Summary.Total, where)
	return nil
}

func (a *App) Metrics(ctx context.Context) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	renderMetrics(a.out, families)
	return nil
}
