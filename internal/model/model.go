// Package model holds the in-memory state of homebiz: one unique list per
// entity kind, each paired with the filter that decides which of its
// elements are currently displayed.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/homebiz/internal/uniquelist"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// ErrServicesExhausted is returned when every service code is in use.
var ErrServicesExhausted = errors.New("no service codes left")

// Collection is a unique list plus the predicate selecting its displayed
// elements. Indices typed by the user refer to the displayed elements.
type Collection[T types.Item[T]] struct {
	*uniquelist.List[T]
	show func(T) bool
}

func newCollection[T types.Item[T]]() *Collection[T] {
	return &Collection[T]{List: &uniquelist.List[T]{}}
}

// SetFilter changes which elements are displayed. A nil filter shows all.
func (c *Collection[T]) SetFilter(show func(T) bool) {
	c.show = show
}

// ShowAll removes the display filter.
func (c *Collection[T]) ShowAll() {
	c.show = nil
}

// Visible returns a snapshot of the displayed elements.
func (c *Collection[T]) Visible() []T {
	return c.Filter(c.show)
}

// VisibleAt returns the displayed element at zero-based position i.
func (c *Collection[T]) VisibleAt(i int) (T, bool) {
	visible := c.Visible()
	if i < 0 || i >= len(visible) {
		var zero T
		return zero, false
	}
	return visible[i], true
}

// Model is the full application state.
type Model struct {
	Clients      *Collection[types.Client]
	Services     *Collection[types.Service]
	Expenses     *Collection[types.Expense]
	Appointments *Collection[types.Appointment]
	Revenues     *Collection[types.Revenue]

	// Now returns the current time. Replaced in tests.
	Now func() time.Time
}

// New returns an empty model.
func New() *Model {
	return &Model{
		Clients:      newCollection[types.Client](),
		Services:     newCollection[types.Service](),
		Expenses:     newCollection[types.Expense](),
		Appointments: newCollection[types.Appointment](),
		Revenues:     newCollection[types.Revenue](),
		Now:          time.Now,
	}
}

// Today returns the current calendar day.
func (m *Model) Today() time.Time {
	return types.DateOnly(m.Now())
}

// NextServiceCode returns the lowest service code not currently in use.
func (m *Model) NextServiceCode() (string, error) {
	used := make(map[string]bool, m.Services.Len())
	for _, s := range m.Services.Items() {
		used[s.Code] = true
	}
	for n := 0; n < types.MaxServices; n++ {
		if code := types.FormatServiceCode(n); !used[code] {
			return code, nil
		}
	}
	return "", ErrServicesExhausted
}

// FindClient returns the stored client with the given phone number.
func (m *Model) FindClient(phone string) (types.Client, bool) {
	return findFirst(m.Clients, func(c types.Client) bool { return c.Phone == phone })
}

// FindService returns the stored service with the given code.
func (m *Model) FindService(code string) (types.Service, bool) {
	return findFirst(m.Services, func(s types.Service) bool { return s.Code == code })
}

func findFirst[T types.Item[T]](c *Collection[T], match func(T) bool) (T, bool) {
	found := c.Filter(match)
	if len(found) == 0 {
		var zero T
		return zero, false
	}
	return found[0], true
}

// ShowAll clears the display filter of every collection.
func (m *Model) ShowAll() {
	m.Clients.ShowAll()
	m.Services.ShowAll()
	m.Expenses.ShowAll()
	m.Appointments.ShowAll()
	m.Revenues.ShowAll()
}

// Snapshot is a copy of every collection, in order.
type Snapshot struct {
	Clients      []types.Client      `json:"clients"`
	Services     []types.Service     `json:"services"`
	Expenses     []types.Expense     `json:"expenses"`
	Appointments []types.Appointment `json:"appointments"`
	Revenues     []types.Revenue     `json:"revenues"`
}

// Snapshot copies the current state.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Clients:      m.Clients.Items(),
		Services:     m.Services.Items(),
		Expenses:     m.Expenses.Items(),
		Appointments: m.Appointments.Items(),
		Revenues:     m.Revenues.Items(),
	}
}

// Restore replaces the state with snap. Every collection is checked before
// any is replaced, so on error the model is unchanged.
func (m *Model) Restore(snap Snapshot) error {
	clients, err := uniquelist.New(snap.Clients...)
	if err != nil {
		return fmt.Errorf("clients: %w", err)
	}
	services, err := uniquelist.New(snap.Services...)
	if err != nil {
		return fmt.Errorf("services: %w", err)
	}
	expenses, err := uniquelist.New(snap.Expenses...)
	if err != nil {
		return fmt.Errorf("expenses: %w", err)
	}
	appointments, err := uniquelist.New(snap.Appointments...)
	if err != nil {
		return fmt.Errorf("appointments: %w", err)
	}
	revenues, err := uniquelist.New(snap.Revenues...)
	if err != nil {
		return fmt.Errorf("revenues: %w", err)
	}

	m.Clients.List = clients
	m.Services.List = services
	m.Expenses.List = expenses
	m.Appointments.List = appointments
	m.Revenues.List = revenues
	m.ShowAll()
	return nil
}
