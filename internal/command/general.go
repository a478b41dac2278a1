package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// General command words.
const (
	HelpWord   = "help"
	ExitWord   = "exit"
	ProfitWord = "profit"
)

// General command usage.
const (
	HelpUsage   = HelpWord + ": Shows every command and its parameters.\nExample: " + HelpWord
	ExitUsage   = ExitWord + ": Exits the program."
	ProfitUsage = ProfitWord + ": Shows revenue, expenses and profit for a month. " +
		"Fixed expenses count in every month from their date.\n" +
		"Parameters: m/MONTH y/YEAR\n" +
		"Example: " + ProfitWord + " m/10 y/2026"
)

// usages is every usage text in the order help prints them.
var usages = []string{
	AddClientUsage, EditClientUsage, DeleteClientUsage, FindClientUsage, ListClientUsage, ClearClientUsage,
	AddServiceUsage, EditServiceUsage, DeleteServiceUsage, FindServiceUsage, ListServiceUsage, ClearServiceUsage,
	AddExpenseUsage, EditExpenseUsage, DeleteExpenseUsage, FindExpenseUsage, ListExpenseUsage, ClearExpenseUsage,
	AddAppointmentUsage, EditAppointmentUsage, DeleteAppointmentUsage, DoneAppointmentUsage, UndoneAppointmentUsage,
	FindAppointmentUsage, ListAppointmentUsage, ClearAppointmentUsage,
	FindRevenueUsage, ListRevenueUsage, ClearRevenueUsage,
	ProfitUsage, HelpUsage, ExitUsage,
}

// HelpText returns the help shown by the help command.
func HelpText() string {
	return strings.Join(usages, "\n\n")
}

// Help shows every command.
type Help struct{}

func (Help) Word() string  { return HelpWord }
func (Help) Usage() string { return HelpUsage }

func (Help) Execute(*model.Model) (Result, error) {
	return Result{Feedback: HelpText(), ShowHelp: true}, nil
}

// Exit ends the session.
type Exit struct{}

func (Exit) Word() string  { return ExitWord }
func (Exit) Usage() string { return ExitUsage }

func (Exit) Execute(*model.Model) (Result, error) {
	return Result{Feedback: "Exiting homebiz as requested ...", Exit: true}, nil
}

// Profit totals revenues and expenses for one month.
type Profit struct {
	Month time.Month
	Year  int
}

func (Profit) Word() string  { return ProfitWord }
func (Profit) Usage() string { return ProfitUsage }

func (c Profit) Execute(m *model.Model) (Result, error) {
	revenue := decimal.Zero
	for _, r := range m.Revenues.Items() {
		if r.InMonth(c.Month, c.Year) {
			revenue = revenue.Add(r.Amount)
		}
	}
	expenses := decimal.Zero
	for _, e := range m.Expenses.Items() {
		if e.InMonth(c.Month, c.Year) {
			expenses = expenses.Add(e.Amount)
		}
	}
	profit := revenue.Sub(expenses)
	return Result{
		Feedback: fmt.Sprintf("%s %d: revenue %s, expenses %s, profit %s",
			c.Month, c.Year, types.FormatAmount(revenue), types.FormatAmount(expenses), types.FormatAmount(profit)),
	}, nil
}
