package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/billbreak/internal/client/client"
)

func (a *App) Groups(ctx context.Context) error {
	groups, err := a.ledger.Groups(ctx)
	if err != nil {
		return a.reportAPIError(err)
	}
	if len(groups) == 0 {
		fmt.Fprintln(a.out, "No groups yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMEMBERS")
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%s\t%d\n", g.ID, g.Name, len(g.Members))
	}
	return w.Flush()
}

func (a *App) Expenses(ctx context.Context, groupID string) error {
	ov, err := a.ledger.Overview(ctx, groupID)
	if err != nil {
		return a.reportAPIError(err)
	}

	if ov.Group != nil {
		fmt.Fprintln(a.out, ov.Group.Name)
	}
	if len(ov.Expenses) == 0 {
		fmt.Fprintln(a.out, "No expenses yet")
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tSPLIT\tDESCRIPTION")
	for _, e := range ov.Expenses {
		split := "-"
		if splits, err := e.Splits(); err != nil {
			a.log.Warn(ctx, "unreadable split data", "expense_id", e.ID, "error", err)
		} else if len(splits) > 0 {
			split = fmt.Sprintf("%d ways", len(splits))
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%s\n", e.Date.Format("2006-01-02"), e.Amount, e.Category, split, e.Description)
	}
	return w.Flush()
}

func (a *App) Balances(ctx context.Context, groupID string) error {
	ov, err := a.ledger.Overview(ctx, groupID)
	if err != nil {
		return a.reportAPIError(err)
	}

	if ov.Balances == nil {
		fmt.Fprintln(a.out, "No balances yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MEMBER\tBALANCE")
	for _, b := range ov.Balances.Balances {
		fmt.Fprintf(w, "%s\t%+.2f\n", b.Name, b.Amount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, s := range ov.Balances.Settlements {
		fmt.Fprintf(a.out, "%s pays %s %.2f\n", s.FromName, s.ToName, s.Amount)
	}
	return nil
}

func (a *App) Voice(ctx context.Context, groupID, path string) error {
	res, err := a.ledger.VoiceExpenseFromFile(ctx, groupID, path)
	if err != nil {
		return a.reportAPIError(err)
	}
	fmt.Fprintf(a.out, "Heard: %q\n", res.Transcribed)
	fmt.Fprintf(a.out, "Added %.2f (%s) %s\n", res.Amount, res.Category, res.Description)
	return nil
}

func (a *App) reportAPIError(err error) error {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Error: session rejected by server, please login again")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Error: server unavailable")
	default:
		if msg := client.ServerMessage(err); msg != "" {
			fmt.Fprintln(a.out, "Error:", msg)
		} else {
			fmt.Fprintln(a.out, "Error:", err)
		}
	}
	return err
}
