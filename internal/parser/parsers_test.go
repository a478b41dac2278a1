package parser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/homebiz/internal/command"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

func ptr[T any](v T) *T { return &v }

var day = time.Date(2026, time.October, 28, 0, 0, 0, 0, time.UTC)

func dispatch(t *testing.T, input string) command.Command {
	t.Helper()
	c, err := NewDispatcher().Dispatch(input)
	require.NoError(t, err, input)
	return c
}

// assertArgError checks input fails with an argument error that embeds usage.
func assertArgError(t *testing.T, input, usage string, cause error) {
	t.Helper()
	_, err := NewDispatcher().Dispatch(input)
	require.Error(t, err, input)
	assert.ErrorIs(t, err, ErrArgumentParse, input)
	assert.Contains(t, err.Error(), usage, input)
	if cause != nil {
		assert.ErrorIs(t, err, cause, input)
	}
	var pe *ParseError
	assert.True(t, errors.As(err, &pe), input)
}

func TestParseClientCommands(t *testing.T) {
	got := dispatch(t, "addcli n/Alice Tan p/91234567 e/alice@example.com t/vip t/vip")
	assert.Equal(t, command.AddClient{Client: types.Client{
		Name: "Alice Tan", Phone: "91234567", Email: "alice@example.com", Tags: []string{"vip"},
	}}, got)

	got = dispatch(t, "editcli 2 n/Bob t/")
	assert.Equal(t, command.EditClient{Index: 1, Changes: command.ClientChanges{
		Name: ptr("Bob"), Tags: ptr([]string{}),
	}}, got)

	got = dispatch(t, "findcli n/alice bob p/91234567")
	assert.Equal(t, command.FindClient{NameKeywords: []string{"alice", "bob"}, Phone: "91234567"}, got)

	u := command.AddClientUsage
	assertArgError(t, "addcli n/Alice p/91234567", u, nil)
	assertArgError(t, "addcli junk n/Alice p/91234567 e/a@b.com", u, nil)
	assertArgError(t, "addcli n/Alice p/12 e/a@b.com", u, types.ErrInvalidPhone)
	assertArgError(t, "addcli n/Alice p/91234567 e/nope", u, types.ErrInvalidEmail)
	assertArgError(t, "addcli n/Alice p/91234567 p/98765432 e/a@b.com", u, nil)
	assertArgError(t, "addcli n/Alice p/91234567 e/a@b.com t/not ok", u, types.ErrInvalidTag)
	assertArgError(t, "addcli n/Åp/1 p/91234567 e/a@b.com", u, types.ErrInvalidName)

	assertArgError(t, "editcli 1", command.EditClientUsage, nil)
	assertArgError(t, "editcli n/Bob", command.EditClientUsage, nil)
	assertArgError(t, "editcli 1 e/bad", command.EditClientUsage, types.ErrInvalidEmail)

	assertArgError(t, "findcli", command.FindClientUsage, nil)
	assertArgError(t, "findcli alice", command.FindClientUsage, nil)
	assertArgError(t, "findcli n/", command.FindClientUsage, nil)
}

func TestParseServiceCommands(t *testing.T) {
	got := dispatch(t, "addsvc t/Lash Lift du/1.5 pr/38")
	add, ok := got.(command.AddService)
	require.True(t, ok)
	assert.Equal(t, "Lash Lift", add.Title)
	assert.True(t, add.Duration.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, add.Price.Equal(decimal.NewFromInt(38)))

	got = dispatch(t, "editsvc 1 pr/40")
	edit, ok := got.(command.EditService)
	require.True(t, ok)
	assert.Equal(t, command.Index(0), edit.Index)
	assert.Nil(t, edit.Changes.Title)
	require.NotNil(t, edit.Changes.Price)
	assert.True(t, edit.Changes.Price.Equal(decimal.NewFromInt(40)))

	got = dispatch(t, "findsvc s/SC001 t/lash")
	assert.Equal(t, command.FindService{TitleKeywords: []string{"lash"}, Code: "SC001"}, got)

	assertArgError(t, "addsvc t/Lash du/1.5", command.AddServiceUsage, nil)
	assertArgError(t, "addsvc t/Lash du/1.2 pr/38", command.AddServiceUsage, types.ErrInvalidDuration)
	assertArgError(t, "addsvc t/Lash du/1 pr/-3", command.AddServiceUsage, types.ErrInvalidAmount)
	assertArgError(t, "editsvc 1", command.EditServiceUsage, nil)
	assertArgError(t, "findsvc s/X1", command.FindServiceUsage, types.ErrInvalidServiceCode)
}

func TestParseExpenseCommands(t *testing.T) {
	got := dispatch(t, "addexp d/Nail polish v/15.50 dt/28-10-2026 f/y t/supplies")
	add, ok := got.(command.AddExpense)
	require.True(t, ok)
	assert.Equal(t, "Nail polish", add.Expense.Description)
	assert.True(t, add.Expense.Amount.Equal(decimal.RequireFromString("15.5")))
	assert.Equal(t, day, add.Expense.Date)
	assert.True(t, add.Expense.Fixed)
	assert.Equal(t, []string{"supplies"}, add.Expense.Tags)

	got = dispatch(t, "addexp d/Rent v/1000")
	add = got.(command.AddExpense)
	assert.True(t, add.Expense.Date.IsZero(), "date left for execution to fill")
	assert.False(t, add.Expense.Fixed)

	got = dispatch(t, "editexp 1 f/n dt/28-10-2026")
	edit := got.(command.EditExpense)
	assert.Equal(t, ptr(false), edit.Changes.Fixed)
	assert.Equal(t, ptr(day), edit.Changes.Date)

	got = dispatch(t, "findexp d/polish t/supplies")
	assert.Equal(t, command.FindExpense{DescriptionKeywords: []string{"polish"}, Tag: "supplies"}, got)

	assertArgError(t, "addexp v/10", command.AddExpenseUsage, nil)
	assertArgError(t, "addexp d/Rent v/10 dt/2026-10-01", command.AddExpenseUsage, types.ErrInvalidDate)
	assertArgError(t, "addexp d/Rent v/10 f/maybe", command.AddExpenseUsage, types.ErrInvalidFixed)
	assertArgError(t, "addexp d/Rent v/0", command.AddExpenseUsage, types.ErrInvalidAmount)
	assertArgError(t, "addexp d/Rent v/0.00", command.AddExpenseUsage, types.ErrInvalidAmount)
	assertArgError(t, "editexp x v/10", command.EditExpenseUsage, nil)
	assertArgError(t, "editexp 1 v/0", command.EditExpenseUsage, types.ErrInvalidAmount)
	assertArgError(t, "findexp", command.FindExpenseUsage, nil)
}

func TestParseAppointmentCommands(t *testing.T) {
	got := dispatch(t, "addapt p/98765432 s/SC000 dt/28-10-2026 st/1400")
	assert.Equal(t, command.AddAppointment{
		Phone: "98765432", ServiceCode: "SC000", Date: day, At: 14 * time.Hour,
	}, got)

	got = dispatch(t, "editapt 1 st/1530")
	assert.Equal(t, command.EditAppointment{Index: 0, Changes: command.AppointmentChanges{
		At: ptr(15*time.Hour + 30*time.Minute),
	}}, got)

	got = dispatch(t, "findapt dt/28-10-2026 s/SC000")
	assert.Equal(t, command.FindAppointment{ServiceCode: "SC000", Date: ptr(day)}, got)

	assertArgError(t, "addapt p/98765432 s/SC000 dt/28-10-2026", command.AddAppointmentUsage, nil)
	assertArgError(t, "addapt p/98765432 s/SC000 dt/28-10-2026 st/2500", command.AddAppointmentUsage, types.ErrInvalidTime)
	assertArgError(t, "editapt 1", command.EditAppointmentUsage, nil)
	assertArgError(t, "findapt", command.FindAppointmentUsage, nil)
}

func TestParseRevenueAndProfit(t *testing.T) {
	got := dispatch(t, "findrev s/SC001")
	assert.Equal(t, command.FindRevenue{ServiceCode: "SC001"}, got)

	got = dispatch(t, "profit m/10 y/2026")
	assert.Equal(t, command.Profit{Month: time.October, Year: 2026}, got)

	assertArgError(t, "findrev", command.FindRevenueUsage, nil)
	assertArgError(t, "profit m/10", command.ProfitUsage, nil)
	assertArgError(t, "profit m/13 y/2026", command.ProfitUsage, types.ErrInvalidMonth)
	assertArgError(t, "profit m/1 y/26", command.ProfitUsage, types.ErrInvalidYear)
}

func TestParseServiceCommands_FreePriceAllowed(t *testing.T) {
	add := dispatch(t, "addsvc t/Consult du/0.5 pr/0").(command.AddService)
	assert.True(t, add.Price.IsZero())
}

func TestHelpExamplesParse(t *testing.T) {
	var examples int
	for _, line := range strings.Split(command.HelpText(), "\n") {
		example, ok := strings.CutPrefix(line, "Example: ")
		if !ok {
			continue
		}
		examples++
		_, err := NewDispatcher().Dispatch(example)
		assert.NoError(t, err, example)
	}
	assert.GreaterOrEqual(t, examples, 20)
}
