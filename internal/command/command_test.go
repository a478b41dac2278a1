package command

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

var (
	alice = types.Client{Name: "Alice Tan", Phone: "91234567", Email: "alice@example.com"}
	bob   = types.Client{Name: "Bob Lim", Phone: "98765432", Email: "bob@example.com"}
	day   = time.Date(2026, time.October, 28, 0, 0, 0, 0, time.UTC)
)

func ptr[T any](v T) *T { return &v }

// newModel returns a model with two clients, one service and one booked
// appointment for alice at 14:00.
func newModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.New()
	m.Now = func() time.Time { return day.Add(9 * time.Hour) }

	run(t, m, AddClient{Client: alice})
	run(t, m, AddClient{Client: bob})
	run(t, m, AddService{Title: "Manicure", Duration: decimal.NewFromInt(1), Price: decimal.NewFromInt(30)})
	run(t, m, AddAppointment{Phone: alice.Phone, ServiceCode: "SC000", Date: day, At: 14 * time.Hour})
	return m
}

func run(t *testing.T, m *model.Model, c Command) Result {
	t.Helper()
	res, err := c.Execute(m)
	require.NoError(t, err, "%s", c.Word())
	return res
}

func TestAddClient_Duplicate(t *testing.T) {
	m := newModel(t)

	renamed := alice
	renamed.Name = "Someone Else"
	_, err := AddClient{Client: renamed}.Execute(m)
	assert.ErrorIs(t, err, types.ErrDuplicateItem)
	assert.Contains(t, err.Error(), "this client already exists")
	assert.Equal(t, 2, m.Clients.Len())
}

func TestEditClient(t *testing.T) {
	t.Run("rename keeps position and updates appointments", func(t *testing.T) {
		m := newModel(t)
		res := run(t, m, EditClient{Index: 0, Changes: ClientChanges{Name: ptr("Alice Ng")}})
		assert.True(t, res.Mutated)
		assert.Equal(t, TabClients, res.Tab)

		first, _ := m.Clients.Get(0)
		assert.Equal(t, "Alice Ng", first.Name)
		appt, _ := m.Appointments.Get(0)
		assert.Equal(t, "Alice Ng", appt.Client.Name)
	})

	t.Run("phone of another client is a duplicate", func(t *testing.T) {
		m := newModel(t)
		_, err := EditClient{Index: 0, Changes: ClientChanges{Phone: ptr(bob.Phone)}}.Execute(m)
		assert.ErrorIs(t, err, types.ErrDuplicateItem)
		assert.Equal(t, []types.Client{alice, bob}, m.Clients.Items())
	})

	t.Run("index beyond displayed list", func(t *testing.T) {
		m := newModel(t)
		run(t, m, FindClient{NameKeywords: []string{"bob"}})
		_, err := EditClient{Index: 1, Changes: ClientChanges{Name: ptr("X")}}.Execute(m)
		assert.ErrorIs(t, err, ErrInvalidIndex)
	})

	t.Run("index refers to displayed list", func(t *testing.T) {
		m := newModel(t)
		run(t, m, FindClient{NameKeywords: []string{"bob"}})
		run(t, m, EditClient{Index: 0, Changes: ClientChanges{Tags: ptr([]string{"vip"})}})
		second, _ := m.Clients.Get(1)
		assert.Equal(t, []string{"vip"}, second.Tags)
	})
}

func TestDeleteClient(t *testing.T) {
	m := newModel(t)

	_, err := DeleteClient{Index: 0}.Execute(m)
	assert.ErrorIs(t, err, ErrInUse, "alice has an appointment")

	run(t, m, DeleteClient{Index: 1})
	assert.Equal(t, []types.Client{alice}, m.Clients.Items())
}

func TestFindAndListClients(t *testing.T) {
	m := newModel(t)

	res := run(t, m, FindClient{NameKeywords: []string{"TAN"}})
	assert.Equal(t, "1 clients listed!", res.Feedback)
	assert.False(t, res.Mutated)
	assert.Equal(t, []types.Client{alice}, m.Clients.Visible())

	run(t, m, FindClient{Phone: bob.Phone})
	assert.Equal(t, []types.Client{bob}, m.Clients.Visible())

	run(t, m, ListClients{})
	assert.Len(t, m.Clients.Visible(), 2)
}

func TestClearClients(t *testing.T) {
	m := newModel(t)
	_, err := ClearClients{}.Execute(m)
	assert.ErrorIs(t, err, ErrInUse)

	run(t, m, ClearAppointments{})
	run(t, m, ClearClients{})
	assert.Zero(t, m.Clients.Len())
}

func TestServiceCommands(t *testing.T) {
	m := newModel(t)

	res := run(t, m, AddService{Title: "Pedicure", Duration: decimal.RequireFromString("1.5"), Price: decimal.NewFromInt(40)})
	assert.Contains(t, res.Feedback, "SC001")

	_, err := AddService{Title: "manicure", Duration: decimal.NewFromInt(1), Price: decimal.NewFromInt(1)}.Execute(m)
	assert.ErrorIs(t, err, types.ErrDuplicateItem)

	run(t, m, EditService{Index: 0, Changes: ServiceChanges{Price: ptr(decimal.NewFromInt(35))}})
	appt, _ := m.Appointments.Get(0)
	assert.True(t, appt.Service.Price.Equal(decimal.NewFromInt(35)), "appointment follows the service")

	_, err = DeleteService{Index: 0}.Execute(m)
	assert.ErrorIs(t, err, ErrInUse)
	run(t, m, DeleteService{Index: 1})
	assert.Equal(t, 1, m.Services.Len())

	run(t, m, FindService{Code: "SC000"})
	assert.Len(t, m.Services.Visible(), 1)
	run(t, m, FindService{TitleKeywords: []string{"pedicure"}})
	assert.Empty(t, m.Services.Visible())
}

func TestExpenseCommands(t *testing.T) {
	m := newModel(t)

	run(t, m, AddExpense{Expense: types.Expense{Description: "Nail polish", Amount: decimal.NewFromInt(15)}})
	exp, _ := m.Expenses.Get(0)
	assert.Equal(t, day, exp.Date, "missing date defaults to today")

	_, err := AddExpense{Expense: types.Expense{Description: "nail POLISH", Amount: decimal.NewFromInt(15), Date: day}}.Execute(m)
	assert.ErrorIs(t, err, types.ErrDuplicateItem)

	run(t, m, EditExpense{Index: 0, Changes: ExpenseChanges{Fixed: ptr(true), Tags: ptr([]string{"supplies"})}})
	exp, _ = m.Expenses.Get(0)
	assert.True(t, exp.Fixed)

	run(t, m, FindExpense{Tag: "SUPPLIES"})
	assert.Len(t, m.Expenses.Visible(), 1)
	run(t, m, FindExpense{Date: ptr(day.AddDate(0, 0, 1))})
	assert.Empty(t, m.Expenses.Visible())

	_, err = DeleteExpense{Index: 0}.Execute(m)
	assert.ErrorIs(t, err, ErrInvalidIndex, "filtered view is empty")
	run(t, m, ListExpenses{})
	run(t, m, DeleteExpense{Index: 0})
	assert.Zero(t, m.Expenses.Len())
}

func TestAppointmentCommands(t *testing.T) {
	t.Run("unknown client and service", func(t *testing.T) {
		m := newModel(t)
		_, err := AddAppointment{Phone: "000", ServiceCode: "SC000", Date: day}.Execute(m)
		assert.ErrorIs(t, err, ErrUnknownClient)
		_, err = AddAppointment{Phone: bob.Phone, ServiceCode: "SC123", Date: day}.Execute(m)
		assert.ErrorIs(t, err, ErrUnknownService)
	})

	t.Run("same start is a duplicate", func(t *testing.T) {
		m := newModel(t)
		_, err := AddAppointment{Phone: bob.Phone, ServiceCode: "SC000", Date: day, At: 14 * time.Hour}.Execute(m)
		assert.ErrorIs(t, err, types.ErrDuplicateItem)
	})

	t.Run("edit moves the start", func(t *testing.T) {
		m := newModel(t)
		run(t, m, EditAppointment{Index: 0, Changes: AppointmentChanges{At: ptr(16 * time.Hour), Phone: ptr(bob.Phone)}})
		appt, _ := m.Appointments.Get(0)
		assert.Equal(t, day.Add(16*time.Hour), appt.Start)
		assert.Equal(t, bob, appt.Client)
	})

	t.Run("done records revenue and undone removes it", func(t *testing.T) {
		m := newModel(t)
		run(t, m, DoneAppointment{Index: 0})
		appt, _ := m.Appointments.Get(0)
		assert.True(t, appt.Done)
		require.Equal(t, 1, m.Revenues.Len())

		_, err := DoneAppointment{Index: 0}.Execute(m)
		assert.ErrorIs(t, err, ErrAppointmentDone)
		_, err = EditAppointment{Index: 0, Changes: AppointmentChanges{At: ptr(time.Hour)}}.Execute(m)
		assert.ErrorIs(t, err, ErrAppointmentDone)

		run(t, m, UndoneAppointment{Index: 0})
		assert.Zero(t, m.Revenues.Len())
		_, err = UndoneAppointment{Index: 0}.Execute(m)
		assert.ErrorIs(t, err, ErrAppointmentNotDone)
	})

	t.Run("find by date", func(t *testing.T) {
		m := newModel(t)
		run(t, m, FindAppointment{Date: ptr(day)})
		assert.Len(t, m.Appointments.Visible(), 1)
		run(t, m, FindAppointment{ServiceCode: "SC001"})
		assert.Empty(t, m.Appointments.Visible())
		run(t, m, ListAppointments{})
		run(t, m, DeleteAppointment{Index: 0})
		assert.Zero(t, m.Appointments.Len())
	})
}

func TestRevenueCommandsAndProfit(t *testing.T) {
	m := newModel(t)
	run(t, m, DoneAppointment{Index: 0})
	run(t, m, AddExpense{Expense: types.Expense{Description: "Rent", Amount: decimal.NewFromInt(10), Date: day.AddDate(0, -1, 0), Fixed: true}})
	run(t, m, AddExpense{Expense: types.Expense{Description: "Polish", Amount: decimal.NewFromInt(5), Date: day}})

	res := run(t, m, Profit{Month: time.October, Year: 2026})
	assert.Equal(t, "October 2026: revenue $30.00, expenses $15.00, profit $15.00", res.Feedback)

	run(t, m, FindRevenue{ServiceCode: "SC000", Date: ptr(day)})
	assert.Len(t, m.Revenues.Visible(), 1)
	run(t, m, ListRevenues{})
	run(t, m, ClearRevenues{})
	assert.Zero(t, m.Revenues.Len())
}

func TestHelpAndExit(t *testing.T) {
	m := model.New()
	res := run(t, m, Help{})
	assert.True(t, res.ShowHelp)
	assert.Contains(t, res.Feedback, AddClientUsage)
	assert.Contains(t, res.Feedback, ProfitUsage)

	res = run(t, m, Exit{})
	assert.True(t, res.Exit)
}
