// Package command defines the executable commands produced by the parser.
// A command carries only the values it needs and runs against a
// model.Model. Persisting the model afterwards is the caller's job.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// Command is one parsed user request.
type Command interface {
	// Word returns the command word that selects this command.
	Word() string
	// Usage returns the help text shown when arguments are malformed.
	Usage() string
	// Execute performs the request against m.
	Execute(m *model.Model) (Result, error)
}

// Tab names the collection a result should be displayed with.
type Tab int

// Displayable collections.
const (
	TabNone Tab = iota
	TabClients
	TabServices
	TabExpenses
	TabAppointments
	TabRevenues
)

func (t Tab) String() string {
	switch t {
	case TabClients:
		return "clients"
	case TabServices:
		return "services"
	case TabExpenses:
		return "expenses"
	case TabAppointments:
		return "appointments"
	case TabRevenues:
		return "revenues"
	default:
		return "none"
	}
}

// Result is the outcome of a successful Execute.
type Result struct {
	Feedback string // message for the user
	Tab      Tab    // collection to display
	Mutated  bool   // the model changed and should be saved
	ShowHelp bool
	Exit     bool
}

// Execution errors.
var (
	ErrInvalidIndex       = errors.New("the index provided is invalid")
	ErrUnknownClient      = errors.New("no client has this phone number")
	ErrUnknownService     = errors.New("no service has this service code")
	ErrInUse              = errors.New("still referenced by an appointment")
	ErrAppointmentDone    = errors.New("the appointment is already done")
	ErrAppointmentNotDone = errors.New("the appointment is not done yet")
)

// Index is a zero-based position in a displayed list. Users type one-based
// positions.
type Index int

// IndexFromOneBased converts a user-typed position.
func IndexFromOneBased(n int) Index {
	return Index(n - 1)
}

// OneBased returns the user-facing position.
func (i Index) OneBased() int {
	return int(i) + 1
}

// resolve returns the displayed element at idx.
func resolve[T types.Item[T]](c *model.Collection[T], idx Index, kind string) (T, error) {
	item, ok := c.VisibleAt(int(idx))
	if !ok {
		return item, fmt.Errorf("%w: no %s at position %d", ErrInvalidIndex, kind, idx.OneBased())
	}
	return item, nil
}

// wrapDuplicate rewords ErrDuplicateItem for the user, leaving other errors
// untouched.
func wrapDuplicate(err error, msg string) error {
	if errors.Is(err, types.ErrDuplicateItem) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return err
}

// matchesAnyWord reports whether any keyword equals a whole word of text,
// ignoring case. No keywords matches everything.
func matchesAnyWord(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	words := strings.Fields(text)
	for _, kw := range keywords {
		for _, w := range words {
			if types.SameText(w, kw) {
				return true
			}
		}
	}
	return false
}

func listed(n int, kind string) string {
	return fmt.Sprintf("%d %s listed!", n, kind)
}
