package command

import (
	"fmt"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// Client command words.
const (
	AddClientWord    = "addcli"
	EditClientWord   = "editcli"
	DeleteClientWord = "deletecli"
	FindClientWord   = "findcli"
	ListClientWord   = "listcli"
	ClearClientWord  = "clearcli"
)

// Client command usage.
const (
	AddClientUsage = AddClientWord + ": Adds a client.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL [t/TAG]...\n" +
		"Example: " + AddClientWord + " n/John Doe p/98765432 e/johnd@example.com t/vip"
	EditClientUsage = EditClientWord + ": Edits the client at INDEX in the displayed client list. " +
		"Existing values are overwritten; t/ with no value removes every tag.\n" +
		"Parameters: INDEX [n/NAME] [p/PHONE] [e/EMAIL] [t/TAG]...\n" +
		"Example: " + EditClientWord + " 1 p/91234567 e/johndoe@example.com"
	DeleteClientUsage = DeleteClientWord + ": Deletes the client at INDEX in the displayed client list.\n" +
		"Parameters: INDEX\n" +
		"Example: " + DeleteClientWord + " 1"
	FindClientUsage = FindClientWord + ": Finds clients whose names contain any of the keywords " +
		"(case-insensitive) and/or who have the given phone number.\n" +
		"Parameters: [n/KEYWORD]... [p/PHONE]\n" +
		"Example: " + FindClientWord + " n/alice n/bob"
	ListClientUsage  = ListClientWord + ": Lists all clients."
	ClearClientUsage = ClearClientWord + ": Removes every client."
)

// AddClient adds a new client.
type AddClient struct {
	Client types.Client
}

func (AddClient) Word() string  { return AddClientWord }
func (AddClient) Usage() string { return AddClientUsage }

func (c AddClient) Execute(m *model.Model) (Result, error) {
	if err := m.Clients.Add(c.Client); err != nil {
		return Result{}, wrapDuplicate(err, "this client already exists")
	}
	return Result{
		Feedback: fmt.Sprintf("New client added: %s", c.Client),
		Tab:      TabClients,
		Mutated:  true,
	}, nil
}

// ClientChanges lists the fields an edit overwrites. Nil fields are kept.
type ClientChanges struct {
	Name  *string
	Phone *string
	Email *string
	Tags  *[]string
}

// Any reports whether at least one field is changed.
func (ch ClientChanges) Any() bool {
	return ch.Name != nil || ch.Phone != nil || ch.Email != nil || ch.Tags != nil
}

// Apply returns c with the changes applied.
func (ch ClientChanges) Apply(c types.Client) types.Client {
	if ch.Name != nil {
		c.Name = *ch.Name
	}
	if ch.Phone != nil {
		c.Phone = *ch.Phone
	}
	if ch.Email != nil {
		c.Email = *ch.Email
	}
	if ch.Tags != nil {
		c.Tags = append([]string(nil), (*ch.Tags)...)
	}
	return c
}

// EditClient changes the fields of a displayed client. Appointments and
// revenues of the client follow the edit.
type EditClient struct {
	Index   Index
	Changes ClientChanges
}

func (EditClient) Word() string  { return EditClientWord }
func (EditClient) Usage() string { return EditClientUsage }

func (c EditClient) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Clients, c.Index, "client")
	if err != nil {
		return Result{}, err
	}
	edited := c.Changes.Apply(target)
	if err := m.Clients.SetItem(target, edited); err != nil {
		return Result{}, wrapDuplicate(err, "another client already has this phone number")
	}

	for _, a := range m.Appointments.Filter(func(a types.Appointment) bool { return a.Client.IsSame(target) }) {
		updated := a
		updated.Client = edited
		if err := m.Appointments.SetItem(a, updated); err != nil {
			return Result{}, fmt.Errorf("update appointment: %w", err)
		}
	}
	if edited.Phone != target.Phone {
		for _, r := range m.Revenues.Filter(func(r types.Revenue) bool { return r.ClientPhone == target.Phone }) {
			updated := r
			updated.ClientPhone = edited.Phone
			if err := m.Revenues.SetItem(r, updated); err != nil {
				return Result{}, fmt.Errorf("update revenue: %w", err)
			}
		}
	}

	return Result{
		Feedback: fmt.Sprintf("Edited client: %s", edited),
		Tab:      TabClients,
		Mutated:  true,
	}, nil
}

// DeleteClient removes a displayed client that has no appointments.
type DeleteClient struct {
	Index Index
}

func (DeleteClient) Word() string  { return DeleteClientWord }
func (DeleteClient) Usage() string { return DeleteClientUsage }

func (c DeleteClient) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.Clients, c.Index, "client")
	if err != nil {
		return Result{}, err
	}
	booked := m.Appointments.Filter(func(a types.Appointment) bool { return a.Client.IsSame(target) })
	if len(booked) > 0 {
		return Result{}, fmt.Errorf("client %s has %d appointment(s): %w", target.Name, len(booked), ErrInUse)
	}
	if err := m.Clients.Remove(target); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted client: %s", target),
		Tab:      TabClients,
		Mutated:  true,
	}, nil
}

// FindClient displays clients matching every given criterion.
type FindClient struct {
	NameKeywords []string
	Phone        string
}

func (FindClient) Word() string  { return FindClientWord }
func (FindClient) Usage() string { return FindClientUsage }

func (c FindClient) Execute(m *model.Model) (Result, error) {
	m.Clients.SetFilter(func(cl types.Client) bool {
		if c.Phone != "" && cl.Phone != c.Phone {
			return false
		}
		return matchesAnyWord(cl.Name, c.NameKeywords)
	})
	return Result{Feedback: listed(len(m.Clients.Visible()), "clients"), Tab: TabClients}, nil
}

// ListClients displays every client.
type ListClients struct{}

func (ListClients) Word() string  { return ListClientWord }
func (ListClients) Usage() string { return ListClientUsage }

func (ListClients) Execute(m *model.Model) (Result, error) {
	m.Clients.ShowAll()
	return Result{Feedback: "Listed all clients", Tab: TabClients}, nil
}

// ClearClients removes every client. It is refused while appointments exist.
type ClearClients struct{}

func (ClearClients) Word() string  { return ClearClientWord }
func (ClearClients) Usage() string { return ClearClientUsage }

func (ClearClients) Execute(m *model.Model) (Result, error) {
	if n := m.Appointments.Len(); n > 0 {
		return Result{}, fmt.Errorf("clients have %d appointment(s): %w", n, ErrInUse)
	}
	m.Clients.Clear()
	m.Clients.ShowAll()
	return Result{Feedback: "Client list has been cleared!", Tab: TabClients, Mutated: true}, nil
}
