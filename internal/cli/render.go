package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/homebiz/internal/command"
	"github.com/mesh-intelligence/homebiz/internal/logic"
	"github.com/mesh-intelligence/homebiz/internal/model"
)

// render prints the feedback of res followed by the displayed elements of
// the collection it names.
func render(w io.Writer, res command.Result, m *model.Model) {
	if res.Feedback != "" {
		fmt.Fprintln(w, res.Feedback)
	}
	switch res.Tab {
	case command.TabClients:
		printList(w, res.Tab, m.Clients.Visible())
	case command.TabServices:
		printList(w, res.Tab, m.Services.Visible())
	case command.TabExpenses:
		printList(w, res.Tab, m.Expenses.Visible())
	case command.TabAppointments:
		printList(w, res.Tab, m.Appointments.Visible())
	case command.TabRevenues:
		printList(w, res.Tab, m.Revenues.Visible())
	}
}

func printList[T fmt.Stringer](w io.Writer, tab command.Tab, items []T) {
	fmt.Fprintf(w, "[%s]\n", tab)
	if len(items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for i, item := range items {
		fmt.Fprintf(w, "%3d. %s\n", i+1, item)
	}
}

// commandError classifies an error returned by logic.Manager.Execute.
func commandError(err error) error {
	if errors.Is(err, logic.ErrStorage) {
		return sysError(err)
	}
	return err
}
