// Package printers renders the notification center and the payment
// history to the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/shopspring/decimal"

	"github.com/santoshphuyala/sambat/pkg/ledger"
	"github.com/santoshphuyala/sambat/pkg/remind"
)

type PrettyPrint struct {
	ShowIdentity bool
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Badge prints the unread count under the title.
func (pp *PrettyPrint) Badge(unread int) {
	c := color.New(color.Faint)
	switch unread {
	case 0:
		_, _ = c.Fprintln(color.Output, "no unread reminders")
	case 1:
		_, _ = c.Fprintln(color.Output, "1 unread reminder")
	default:
		_, _ = c.Fprintf(color.Output, "%d unread reminders\n", unread)
	}
}

// Inbox prints the notification center, newest first.
func (pp *PrettyPrint) Inbox(items []remind.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Separator = "  "
	tbl.AddRow(bold(""), bold("Reminder"), bold("Due"), bold("Urgency"), boldIf(pp.ShowIdentity, "Identity"))
	for _, item := range items {
		marker := "●"
		if item.Read {
			marker = " "
		}
		icon := "•"
		if k, err := item.KindOf(); err == nil {
			icon = k.Icon()
		}
		identity := ""
		if pp.ShowIdentity {
			identity = item.Identity
		}
		tbl.AddRow(marker, fmt.Sprintf("%s %s — %s", icon, item.Title, item.Body), item.DueDate, item.Urgency, identity)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output)
}

// History prints settlement records, newest first, then per-source
// totals.
func (pp *PrettyPrint) History(records []ledger.PaymentRecord) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 40
	tbl.Separator = "  "
	tbl.AddRow(bold("#"), bold("Name"), bold("Source"), bold("Amount"), bold("Paid"), bold("Settled Due"), bold("Method"))
	for i, rec := range records {
		amount := rec.Amount.String()
		if rec.Currency != "" {
			amount = amount + " " + rec.Currency
		}
		tbl.AddRow(i+1, rec.DisplayName, rec.Source, amount, rec.PaidDate, rec.SettledDueDate, rec.PaymentMethod)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, rec := range records {
		if _, ok := totals[rec.Source]; !ok {
			order = append(order, rec.Source)
		}
		totals[rec.Source] = totals[rec.Source].Add(rec.Amount)
	}
	f := color.New(color.Faint)
	parts := make([]string, 0, len(order))
	for _, source := range order {
		parts = append(parts, fmt.Sprintf("%s %s", source, totals[source]))
	}
	_, _ = f.Fprintf(color.Output, "totals: %s\n\n", strings.Join(parts, " · "))
}

// Today prints the current date in both calendars.
func (pp *PrettyPrint) Today(bs, gregorian string) {
	t := color.New(color.Bold)
	_, _ = t.Fprintf(color.Output, "%s BS", bs)
	f := color.New(color.Faint)
	_, _ = f.Fprintf(color.Output, "  (%s AD)\n", gregorian)
}

// Delivered reports a scan pass result.
func (pp *PrettyPrint) Delivered(n int, unread int) {
	switch n {
	case 0:
		f := color.New(color.Faint)
		_, _ = f.Fprintln(color.Output, "nothing new")
	case 1:
		_, _ = fmt.Fprintln(color.Output, "1 reminder delivered")
	default:
		_, _ = fmt.Fprintf(color.Output, "%d reminders delivered\n", n)
	}
	pp.Badge(unread)
}

func bold(s string) string {
	if s == "" {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}

func boldIf(cond bool, s string) string {
	if !cond {
		return ""
	}
	return bold(s)
}
