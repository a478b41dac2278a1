package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// Appointment command words.
const (
	AddAppointmentWord    = "addapt"
	EditAppointmentWord   = "editapt"
	DeleteAppointmentWord = "deleteapt"
	FindAppointmentWord   = "findapt"
	ListAppointmentWord   = "listapt"
	ClearAppointmentWord  = "clearapt"
	DoneAppointmentWord   = "done"
	UndoneAppointmentWord = "undone"
)

// Appointment command usage.
const (
	AddAppointmentUsage = AddAppointmentWord + ": Books a service for a client.\n" +
		"Parameters: p/CLIENT_PHONE s/SERVICE_CODE dt/DATE st/START_TIME\n" +
		"Example: " + AddAppointmentWord + " p/98765432 s/SC000 dt/28-10-2026 st/1400"
	EditAppointmentUsage = EditAppointmentWord + ": Edits the appointment at INDEX in the displayed appointment list. " +
		"Done appointments cannot be edited.\n" +
		"Parameters: INDEX [p/CLIENT_PHONE] [s/SERVICE_CODE] [dt/DATE] [st/START_TIME]\n" +
		"Example: " + EditAppointmentWord + " 1 st/1500"
	DeleteAppointmentUsage = DeleteAppointmentWord + ": Deletes the appointment at INDEX in the displayed appointment list.\n" +
		"Parameters: INDEX\n" +
		"Example: " + DeleteAppointmentWord + " 1"
	FindAppointmentUsage = FindAppointmentWord + ": Finds appointments matching every given criterion.\n" +
		"Parameters: [p/CLIENT_PHONE] [s/SERVICE_CODE] [dt/DATE]\n" +
		"Example: " + FindAppointmentWord + " dt/28-10-2026"
	ListAppointmentUsage  = ListAppointmentWord + ": Lists all appointments."
	ClearAppointmentUsage = ClearAppointmentWord + ": Removes every appointment."
	DoneAppointmentUsage  = DoneAppointmentWord + ": Marks the appointment at INDEX as done and records its revenue.\n" +
		"Parameters: INDEX\n" +
		"Example: " + DoneAppointmentWord + " 1"
	UndoneAppointmentUsage = UndoneAppointmentWord + ": Marks the appointment at INDEX as not done and removes its revenue.\n" +
		"Parameters: INDEX\n" +
		"Example: " + UndoneAppointmentWord + " 1"
)

const duplicateAppointment = "another appointment already starts at this date and time"

// AddAppointment books a stored service for a stored client.
type AddAppointment struct {
	Phone       string
	ServiceCode string
	Date        time.Time
	At          time.Duration // offset from midnight
}

func (AddAppointment) Word() string  { return AddAppointmentWord }
func (AddAppointment) Usage() string { return AddAppointmentUsage }

func (c AddAppointment) Execute(m *model.Model) (Result, error) {
	client, err := lookupClient(m, c.Phone)
	if err != nil {
		return Result{}, err
	}
	svc, err := lookupService(m, c.ServiceCode)
	if err != nil {
		return Result{}, err
	}
	appt := types.Appointment{Client: client, Service: svc, Start: c.Date.Add(c.At)}
	if err := m.Appointments.Add(appt); err != nil {
		return Result{}, wrapDuplicate(err, duplicateAppointment)
	}
	return Result{
		Feedback: fmt.Sprintf("New appointment added: %s", appt),
		Tab:      TabAppointments,
		Mutated:  true,
	}, nil
}

// AppointmentChanges lists the fields an edit overwrites. Nil fields are
// kept.
type AppointmentChanges struct {
	Phone       *string
	ServiceCode *string
	Date        *time.Time
	At          *time.Duration
}

// Any reports whether at least one field is changed.
func (ch AppointmentChanges) Any() bool {
	return ch.Phone != nil || ch.ServiceCode != nil || ch.Date != nil || ch.At != nil
}

// EditAppointment changes a displayed appointment that is not done.
type EditAppointment struct {
	Index   Index
	Changes AppointmentChanges
}

func (EditAppointment) Word() string  { return EditAppointmentWord }
func (EditAppointment) Usage() string { return EditAppointmentUsage }

func (c EditAppointment) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Appointments, c.Index, "appointment")
	if err != nil {
		return Result{}, err
	}
	if target.Done {
		return Result{}, fmt.Errorf("mark it undone before editing: %w", ErrAppointmentDone)
	}

	edited := target
	if c.Changes.Phone != nil {
		if edited.Client, err = lookupClient(m, *c.Changes.Phone); err != nil {
			return Result{}, err
		}
	}
	if c.Changes.ServiceCode != nil {
		if edited.Service, err = lookupService(m, *c.Changes.ServiceCode); err != nil {
			return Result{}, err
		}
	}
	date := target.Date()
	at := target.Start.Sub(date)
	if c.Changes.Date != nil {
		date = *c.Changes.Date
	}
	if c.Changes.At != nil {
		at = *c.Changes.At
	}
	edited.Start = date.Add(at)

	if err := m.Appointments.SetItem(target, edited); err != nil {
		return Result{}, wrapDuplicate(err, duplicateAppointment)
	}
	return Result{
		Feedback: fmt.Sprintf("Edited appointment: %s", edited),
		Tab:      TabAppointments,
		Mutated:  true,
	}, nil
}

// DeleteAppointment removes a displayed appointment. Revenue already
// recorded for it is kept.
type DeleteAppointment struct {
	Index Index
}

func (DeleteAppointment) Word() string  { return DeleteAppointmentWord }
func (DeleteAppointment) Usage() string { return DeleteAppointmentUsage }

func (c DeleteAppointment) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Appointments, c.Index, "appointment")
	if err != nil {
		return Result{}, err
	}
	if err := m.Appointments.Remove(target); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted appointment: %s", target),
		Tab:      TabAppointments,
		Mutated:  true,
	}, nil
}

// DoneAppointment marks a displayed appointment done and records its
// revenue.
type DoneAppointment struct {
	Index Index
}

func (DoneAppointment) Word() string  { return DoneAppointmentWord }
func (DoneAppointment) Usage() string { return DoneAppointmentUsage }

func (c DoneAppointment) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Appointments, c.Index, "appointment")
	if err != nil {
		return Result{}, err
	}
	if target.Done {
		return Result{}, ErrAppointmentDone
	}
	rev := types.NewRevenue(target)
	if m.Revenues.Contains(rev) {
		return Result{}, fmt.Errorf("revenue for this appointment is already recorded: %w", types.ErrDuplicateItem)
	}

	done := target
	done.Done = true
	if err := m.Appointments.SetItem(target, done); err != nil {
		return Result{}, err
	}
	if err := m.Revenues.Add(rev); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Appointment marked as done: %s", done),
		Tab:      TabAppointments,
		Mutated:  true,
	}, nil
}

// UndoneAppointment reverses DoneAppointment.
type UndoneAppointment struct {
	Index Index
}

func (UndoneAppointment) Word() string  { return UndoneAppointmentWord }
func (UndoneAppointment) Usage() string { return UndoneAppointmentUsage }

func (c UndoneAppointment) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Appointments, c.Index, "appointment")
	if err != nil {
		return Result{}, err
	}
	if !target.Done {
		return Result{}, ErrAppointmentNotDone
	}

	undone := target
	undone.Done = false
	if err := m.Appointments.SetItem(target, undone); err != nil {
		return Result{}, err
	}
	// The revenue may already have been cleared by the user.
	if err := m.Revenues.Remove(types.NewRevenue(target)); err != nil && !errors.Is(err, types.ErrItemNotFound) {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Appointment marked as not done: %s", undone),
		Tab:      TabAppointments,
		Mutated:  true,
	}, nil
}

// FindAppointment displays appointments matching every given criterion.
type FindAppointment struct {
	Phone       string
	ServiceCode string
	Date        *time.Time
}

func (FindAppointment) Word() string  { return FindAppointmentWord }
func (FindAppointment) Usage() string { return FindAppointmentUsage }

func (c FindAppointment) Execute(m *model.Model) (Result, error) {
	m.Appointments.SetFilter(func(a types.Appointment) bool {
		if c.Phone != "" && a.Client.Phone != c.Phone {
			return false
		}
		if c.ServiceCode != "" && a.Service.Code != c.ServiceCode {
			return false
		}
		return c.Date == nil || a.Date().Equal(*c.Date)
	})
	return Result{Feedback: listed(len(m.Appointments.Visible()), "appointments"), Tab: TabAppointments}, nil
}

// ListAppointments displays every appointment.
type ListAppointments struct{}

func (ListAppointments) Word() string  { return ListAppointmentWord }
func (ListAppointments) Usage() string { return ListAppointmentUsage }

func (ListAppointments) Execute(m *model.Model) (Result, error) {
	m.Appointments.ShowAll()
	return Result{Feedback: "Listed all appointments", Tab: TabAppointments}, nil
}

// ClearAppointments removes every appointment. Recorded revenues are kept.
type ClearAppointments struct{}

func (ClearAppointments) Word() string  { return ClearAppointmentWord }
func (ClearAppointments) Usage() string { return ClearAppointmentUsage }

func (ClearAppointments) Execute(m *model.Model) (Result, error) {
	m.Appointments.Clear()
	m.Appointments.ShowAll()
	return Result{Feedback: "Appointment list has been cleared!", Tab: TabAppointments, Mutated: true}, nil
}

func lookupClient(m *model.Model, phone string) (types.Client, error) {
	c, ok := m.FindClient(phone)
	if !ok {
		return c, fmt.Errorf("%w: %s", ErrUnknownClient, phone)
	}
	return c, nil
}

func lookupService(m *model.Model, code string) (types.Service, error) {
	s, ok := m.FindService(code)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownService, code)
	}
	return s, nil
}
