package command

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// Expense command words.
const (
	AddExpenseWord    = "addexp"
	EditExpenseWord   = "editexp"
	DeleteExpenseWord = "deleteexp"
	FindExpenseWord   = "findexp"
	ListExpenseWord   = "listexp"
	ClearExpenseWord  = "clearexp"
)

// Expense command usage.
const (
	AddExpenseUsage = AddExpenseWord + ": Adds an expense. The date defaults to today and f/ to n.\n" +
		"Parameters: d/DESCRIPTION v/AMOUNT [dt/DATE] [f/IS_FIXED] [t/TAG]...\n" +
		"Example: " + AddExpenseWord + " d/Nail polish v/15.50 dt/28-10-2026 f/n t/supplies"
	EditExpenseUsage = EditExpenseWord + ": Edits the expense at INDEX in the displayed expense list. " +
		"t/ with no value removes every tag.\n" +
		"Parameters: INDEX [d/DESCRIPTION] [v/AMOUNT] [dt/DATE] [f/IS_FIXED] [t/TAG]...\n" +
		"Example: " + EditExpenseWord + " 1 v/12"
	DeleteExpenseUsage = DeleteExpenseWord + ": Deletes the expense at INDEX in the displayed expense list.\n" +
		"Parameters: INDEX\n" +
		"Example: " + DeleteExpenseWord + " 1"
	FindExpenseUsage = FindExpenseWord + ": Finds expenses whose descriptions contain any of the keywords " +
		"(case-insensitive) and/or match the given date and tag.\n" +
		"Parameters: [d/KEYWORD]... [dt/DATE] [t/TAG]\n" +
		"Example: " + FindExpenseWord + " d/polish dt/28-10-2026"
	ListExpenseUsage  = ListExpenseWord + ": Lists all expenses."
	ClearExpenseUsage = ClearExpenseWord + ": Removes every expense."
)

// AddExpense records an expense. A zero Date means today.
type AddExpense struct {
	Expense types.Expense
}

func (AddExpense) Word() string  { return AddExpenseWord }
func (AddExpense) Usage() string { return AddExpenseUsage }

func (c AddExpense) Execute(m *model.Model) (Result, error) {
	exp := c.Expense
	if exp.Date.IsZero() {
		exp.Date = m.Today()
	}
	if err := m.Expenses.Add(exp); err != nil {
		return Result{}, wrapDuplicate(err, "this expense already exists")
	}
	return Result{
		Feedback: fmt.Sprintf("New expense added: %s", exp),
		Tab:      TabExpenses,
		Mutated:  true,
	}, nil
}

// ExpenseChanges lists the fields an edit overwrites. Nil fields are kept.
type ExpenseChanges struct {
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Fixed       *bool
	Tags        *[]string
}

// Any reports whether at least one field is changed.
func (ch ExpenseChanges) Any() bool {
	return ch.Description != nil || ch.Amount != nil || ch.Date != nil || ch.Fixed != nil || ch.Tags != nil
}

// Apply returns e with the changes applied.
func (ch ExpenseChanges) Apply(e types.Expense) types.Expense {
	if ch.Description != nil {
		e.Description = *ch.Description
	}
	if ch.Amount != nil {
		e.Amount = *ch.Amount
	}
	if ch.Date != nil {
		e.Date = *ch.Date
	}
	if ch.Fixed != nil {
		e.Fixed = *ch.Fixed
	}
	if ch.Tags != nil {
		e.Tags = append([]string(nil), (*ch.Tags)...)
	}
	return e
}

// EditExpense changes a displayed expense.
type EditExpense struct {
	Index   Index
	Changes ExpenseChanges
}

func (EditExpense) Word() string  { return EditExpenseWord }
func (EditExpense) Usage() string { return EditExpenseUsage }

func (c EditExpense) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Expenses, c.Index, "expense")
	if err != nil {
		return Result{}, err
	}
	edited := c.Changes.Apply(target)
	if err := m.Expenses.SetItem(target, edited); err != nil {
		return Result{}, wrapDuplicate(err, "this expense already exists")
	}
	return Result{
		Feedback: fmt.Sprintf("Edited expense: %s", edited),
		Tab:      TabExpenses,
		Mutated:  true,
	}, nil
}

// DeleteExpense removes a displayed expense.
type DeleteExpense struct {
	Index Index
}

func (DeleteExpense) Word() string  { return DeleteExpenseWord }
func (DeleteExpense) Usage() string { return DeleteExpenseUsage }

func (c DeleteExpense) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Expenses, c.Index, "expense")
	if err != nil {
		return Result{}, err
	}
	if err := m.Expenses.Remove(target); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted expense: %s", target),
		Tab:      TabExpenses,
		Mutated:  true,
	}, nil
}

// FindExpense displays expenses matching every given criterion.
type FindExpense struct {
	DescriptionKeywords []string
	Date                *time.Time
	Tag                 string
}

func (FindExpense) Word() string  { return FindExpenseWord }
func (FindExpense) Usage() string { return FindExpenseUsage }

func (c FindExpense) Execute(m *model.Model) (Result, error) {
	m.Expenses.SetFilter(func(e types.Expense) bool {
		if c.Date != nil && !e.Date.Equal(*c.Date) {
			return false
		}
		if c.Tag != "" && !e.HasTag(c.Tag) {
			return false
		}
		return matchesAnyWord(e.Description, c.DescriptionKeywords)
	})
	return Result{Feedback: listed(len(m.Expenses.Visible()), "expenses"), Tab: TabExpenses}, nil
}

// ListExpenses displays every expense.
type ListExpenses struct{}

func (ListExpenses) Word() string  { return ListExpenseWord }
func (ListExpenses) Usage() string { return ListExpenseUsage }

func (ListExpenses) Execute(m *model.Model) (Result, error) {
	m.Expenses.ShowAll()
	return Result{Feedback: "Listed all expenses", Tab: TabExpenses}, nil
}

// ClearExpenses removes every expense.
type ClearExpenses struct{}

func (ClearExpenses) Word() string  { return ClearExpenseWord }
func (ClearExpenses) Usage() string { return ClearExpenseUsage }

func (ClearExpenses) Execute(m *model.Model) (Result, error) {
	m.Expenses.Clear()
	m.Expenses.ShowAll()
	return Result{Feedback: "Expense list has been cleared!", Tab: TabExpenses, Mutated: true}, nil
}
