package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
)

func (a *App) Dashboard(ctx context.Context) error {
	a.goTo(ctx, router.DashboardPath)
	return nil
}

// Tables opens the contacts table filtered by query, fetching the
// collection anew.
func (a *App) Tables(ctx context.Context, query string) error {
	a.tables.SetQuery(query)
	a.goTo(ctx, router.TablesPath)
	return nil
}

// Filter re-filters the fetched collection without a round trip.
func (a *App) Filter(ctx context.Context, query string) error {
	if a.location != router.TablesPath {
		return a.Tables(ctx, query)
	}
	a.tables.SetQuery(query)
	a.renderTables()
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if !a.at(ctx, router.TablesPath) {
		return nil
	}
	in, err := a.contactForm(models.ContactInput{})
	if err != nil {
		return err
	}
	return a.submit(ctx, func() error { return a.tables.Add(in) })
}

// Edit fetches the contact, prompts for each field with the current value
// as default and saves the result.
func (a *App) Edit(ctx context.Context, id int64) error {
	if !a.at(ctx, router.TablesPath) {
		return nil
	}
	a.tables.Show(id)
	st := a.tables.State()
	if st.Message != "" || st.Selected == nil {
		a.renderOutcome()
		a.settle(ctx)
		return nil
	}

	fmt.Fprintln(a.out, "Press Enter to keep a value, '-' to clear it.")
	in, err := a.contactForm(st.Selected.Input())
	if err != nil {
		return err
	}
	return a.submit(ctx, func() error { return a.tables.Update(id, in) })
}

func (a *App) Delete(ctx context.Context, id int64) error {
	if !a.at(ctx, router.TablesPath) {
		return nil
	}
	return a.submit(ctx, func() error { return a.tables.Delete(id) })
}

func (a *App) Show(ctx context.Context, id int64) error {
	if !a.at(ctx, router.TablesPath) {
		return nil
	}
	a.tables.Show(id)
	st := a.tables.State()
	if st.Message != "" || st.Selected == nil {
		a.renderOutcome()
	} else {
		a.renderContact(*st.Selected)
	}
	a.settle(ctx)
	return nil
}

// submit runs a gated table edit and renders its outcome.
func (a *App) submit(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		if errors.Is(err, services.ErrSubmissionInProgress) {
			fmt.Fprintln(a.out, msgBusy)
			return nil
		}
		return err
	}
	a.renderOutcome()
	if a.tables.State().Message == "" {
		a.renderTables()
	}
	a.settle(ctx)
	return nil
}

func (a *App) contactForm(in models.ContactInput) (models.ContactInput, error) {
	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"First name", &in.FirstName},
		{"Last name", &in.LastName},
		{"Email", &in.Email},
		{"Company", &in.Company},
		{"Phone", &in.Phone},
		{"Address", &in.Address},
		{"State", &in.State},
		{"Zip", &in.Zip},
		{"Website", &in.Website},
	} {
		prompt := f.label + ": "
		if *f.dst != "" {
			prompt = fmt.Sprintf("%s [%s]: ", f.label, *f.dst)
		}
		v, err := a.in.Line(prompt)
		if err != nil {
			return in, err
		}
		switch v {
		case "":
		case "-":
			*f.dst = ""
		default:
			*f.dst = v
		}
	}
	return in, nil
}
