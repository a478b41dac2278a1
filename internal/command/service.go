package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// Service command words.
const (
	AddServiceWord    = "addsvc"
	EditServiceWord   = "editsvc"
	DeleteServiceWord = "deletesvc"
	FindServiceWord   = "findsvc"
	ListServiceWord   = "listsvc"
	ClearServiceWord  = "clearsvc"
)

// Service command usage.
const (
	AddServiceUsage = AddServiceWord + ": Adds a service. A service code is assigned automatically.\n" +
		"Parameters: t/TITLE du/DURATION pr/PRICE\n" +
		"Example: " + AddServiceWord + " t/Lash Lift du/1.5 pr/38"
	EditServiceUsage = EditServiceWord + ": Edits the service at INDEX in the displayed service list.\n" +
		"Parameters: INDEX [t/TITLE] [du/DURATION] [pr/PRICE]\n" +
		"Example: " + EditServiceWord + " 2 pr/40"
	DeleteServiceUsage = DeleteServiceWord + ": Deletes the service at INDEX in the displayed service list.\n" +
		"Parameters: INDEX\n" +
		"Example: " + DeleteServiceWord + " 1"
	FindServiceUsage = FindServiceWord + ": Finds services whose titles contain any of the keywords " +
		"(case-insensitive) and/or that have the given service code.\n" +
		"Parameters: [t/KEYWORD]... [s/SERVICE_CODE]\n" +
		"Example: " + FindServiceWord + " t/lash"
	ListServiceUsage  = ListServiceWord + ": Lists all services."
	ClearServiceUsage = ClearServiceWord + ": Removes every service."
)

// AddService adds a service under the next free service code.
type AddService struct {
	Title    string
	Duration decimal.Decimal
	Price    decimal.Decimal
}

func (AddService) Word() string  { return AddServiceWord }
func (AddService) Usage() string { return AddServiceUsage }

func (c AddService) Execute(m *model.Model) (Result, error) {
	code, err := m.NextServiceCode()
	if err != nil {
		return Result{}, err
	}
	svc := types.Service{Code: code, Title: c.Title, Duration: c.Duration, Price: c.Price}
	if err := m.Services.Add(svc); err != nil {
		return Result{}, wrapDuplicate(err, "a service with this title already exists")
	}
	return Result{
		Feedback: fmt.Sprintf("New service added: %s", svc),
		Tab:      TabServices,
		Mutated:  true,
	}, nil
}

// ServiceChanges lists the fields an edit overwrites. Nil fields are kept.
type ServiceChanges struct {
	Title    *string
	Duration *decimal.Decimal
	Price    *decimal.Decimal
}

// Any reports whether at least one field is changed.
func (ch ServiceChanges) Any() bool {
	return ch.Title != nil || ch.Duration != nil || ch.Price != nil
}

// Apply returns s with the changes applied. The code never changes.
func (ch ServiceChanges) Apply(s types.Service) types.Service {
	if ch.Title != nil {
		s.Title = *ch.Title
	}
	if ch.Duration != nil {
		s.Duration = *ch.Duration
	}
	if ch.Price != nil {
		s.Price = *ch.Price
	}
	return s
}

// EditService changes a displayed service. Appointments booked for it follow
// the edit; recorded revenues keep the values they were earned at.
type EditService struct {
	Index   Index
	Changes ServiceChanges
}

func (EditService) Word() string  { return EditServiceWord }
func (EditService) Usage() string { return EditServiceUsage }

func (c EditService) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Services, c.Index, "service")
	if err != nil {
		return Result{}, err
	}
	edited := c.Changes.Apply(target)
	if err := m.Services.SetItem(target, edited); err != nil {
		return Result{}, wrapDuplicate(err, "a service with this title already exists")
	}
	for _, a := range m.Appointments.Filter(func(a types.Appointment) bool { return a.Service.Code == target.Code }) {
		updated := a
		updated.Service = edited
		if err := m.Appointments.SetItem(a, updated); err != nil {
			return Result{}, fmt.Errorf("update appointment: %w", err)
		}
	}
	return Result{
		Feedback: fmt.Sprintf("Edited service: %s", edited),
		Tab:      TabServices,
		Mutated:  true,
	}, nil
}

// DeleteService removes a displayed service that has no appointments.
type DeleteService struct {
	Index Index
}

func (DeleteService) Word() string  { return DeleteServiceWord }
func (DeleteService) Usage() string { return DeleteServiceUsage }

func (c DeleteService) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Services, c.Index, "service")
	if err != nil {
		return Result{}, err
	}
	booked := m.Appointments.Filter(func(a types.Appointment) bool { return a.Service.Code == target.Code })
	if len(booked) > 0 {
		return Result{}, fmt.Errorf("service %s has %d appointment(s): %w", target.Code, len(booked), ErrInUse)
	}
	if err := m.Services.Remove(target); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted service: %s", target),
		Tab:      TabServices,
		Mutated:  true,
	}, nil
}

// FindService displays services matching every given criterion.
type FindService struct {
	TitleKeywords []string
	Code          string
}

func (FindService) Word() string  { return FindServiceWord }
func (FindService) Usage() string { return FindServiceUsage }

func (c FindService) Execute(m *model.Model) (Result, error) {
	m.Services.SetFilter(func(s types.Service) bool {
		if c.Code != "" && s.Code != c.Code {
			return false
		}
		return matchesAnyWord(s.Title, c.TitleKeywords)
	})
	return Result{Feedback: listed(len(m.Services.Visible()), "services"), Tab: TabServices}, nil
}

// ListServices displays every service.
type ListServices struct{}

func (ListServices) Word() string  { return ListServiceWord }
func (ListServices) Usage() string { return ListServiceUsage }

func (ListServices) Execute(m *model.Model) (Result, error) {
	m.Services.ShowAll()
	return Result{Feedback: "Listed all services", Tab: TabServices}, nil
}

// ClearServices removes every service. It is refused while appointments
// exist.
type ClearServices struct{}

func (ClearServices) Word() string  { return ClearServiceWord }
func (ClearServices) Usage() string { return ClearServiceUsage }

func (ClearServices) Execute(m *model.Model) (Result, error) {
	if n := m.Appointments.Len(); n > 0 {
		return Result{}, fmt.Errorf("services have %d appointment(s): %w", n, ErrInUse)
	}
	m.Services.Clear()
	m.Services.ShowAll()
	return Result{Feedback: "Service list has been cleared!", Tab: TabServices, Mutated: true}, nil
}
