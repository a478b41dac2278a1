package command

import (
	"time"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// Revenue command words. Revenues are created by DoneAppointment only.
const (
	FindRevenueWord  = "findrev"
	ListRevenueWord  = "listrev"
	ClearRevenueWord = "clearrev"
)

// Revenue command usage.
const (
	FindRevenueUsage = FindRevenueWord + ": Finds revenues matching every given criterion.\n" +
		"Parameters: [s/SERVICE_CODE] [dt/DATE]\n" +
		"Example: " + FindRevenueWord + " s/SC000 dt/28-10-2026"
	ListRevenueUsage  = ListRevenueWord + ": Lists all revenues."
	ClearRevenueUsage = ClearRevenueWord + ": Removes every revenue."
)

// FindRevenue displays revenues matching every given criterion.
type FindRevenue struct {
	ServiceCode string
	Date        *time.Time
}

func (FindRevenue) Word() string  { return FindRevenueWord }
func (FindRevenue) Usage() string { return FindRevenueUsage }

func (c FindRevenue) Execute(m *model.Model) (Result, error) {
	m.Revenues.SetFilter(func(r types.Revenue) bool {
		if c.ServiceCode != "" && r.ServiceCode != c.ServiceCode {
			return false
		}
		return c.Date == nil || r.Date().Equal(*c.Date)
	})
	return Result{Feedback: listed(len(m.Revenues.Visible()), "revenues"), Tab: TabRevenues}, nil
}

// ListRevenues displays every revenue.
type ListRevenues struct{}

func (ListRevenues) Word() string  { return ListRevenueWord }
func (ListRevenues) Usage() string { return ListRevenueUsage }

func (ListRevenues) Execute(m *model.Model) (Result, error) {
	m.Revenues.ShowAll()
	return Result{Feedback: "Listed all revenues", Tab: TabRevenues}, nil
}

// ClearRevenues removes every revenue.
type ClearRevenues struct{}

func (ClearRevenues) Word() string  { return ClearRevenueWord }
func (ClearRevenues) Usage() string { return ClearRevenueUsage }

func (ClearRevenues) Execute(m *model.Model) (Result, error) {
	m.Revenues.Clear()
	m.Revenues.ShowAll()
	return Result{Feedback: "Revenue list has been cleared!", Tab: TabRevenues, Mutated: true}, nil
}
