// Package parser turns a line of user input into a command.Command.
//
// The Dispatcher splits the line into a command word and the rest, then hands
// the rest to the ParseFunc registered for that word. Every failure is a
// *ParseError whose Kind is ErrInvalidCommandFormat, ErrUnknownCommand or
// ErrArgumentParse.
package parser

import (
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/mesh-intelligence/homebiz/internal/command"
)

// basicCommandFormat separates the command word from its arguments. The
// arguments keep their leading whitespace.
var basicCommandFormat = regexp.MustCompile(`^(\S+)((?s:.*))$`)

// ParseFunc builds a command from the text after the command word. It must
// not modify shared state.
type ParseFunc func(args string) (command.Command, error)

// Dispatcher maps command words to their parsers. It holds no state beyond
// the registry built by NewDispatcher and is safe to reuse for every line.
type Dispatcher struct {
	parsers map[string]ParseFunc
}

// NewDispatcher returns a dispatcher with every homebiz command registered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{parsers: map[string]ParseFunc{
		command.AddClientWord:    parseAddClient,
		command.EditClientWord:   parseEditClient,
		command.DeleteClientWord: indexOnly(command.DeleteClientUsage, func(i command.Index) command.Command { return command.DeleteClient{Index: i} }),
		command.FindClientWord:   parseFindClient,
		command.ListClientWord:   noArgs(command.ListClients{}),
		command.ClearClientWord:  noArgs(command.ClearClients{}),

		command.AddServiceWord:    parseAddService,
		command.EditServiceWord:   parseEditService,
		command.DeleteServiceWord: indexOnly(command.DeleteServiceUsage, func(i command.Index) command.Command { return command.DeleteService{Index: i} }),
		command.FindServiceWord:   parseFindService,
		command.ListServiceWord:   noArgs(command.ListServices{}),
		command.ClearServiceWord:  noArgs(command.ClearServices{}),

		command.AddExpenseWord:    parseAddExpense,
		command.EditExpenseWord:   parseEditExpense,
		command.DeleteExpenseWord: indexOnly(command.DeleteExpenseUsage, func(i command.Index) command.Command { return command.DeleteExpense{Index: i} }),
		command.FindExpenseWord:   parseFindExpense,
		command.ListExpenseWord:   noArgs(command.ListExpenses{}),
		command.ClearExpenseWord:  noArgs(command.ClearExpenses{}),

		command.AddAppointmentWord:    parseAddAppointment,
		command.EditAppointmentWord:   parseEditAppointment,
		command.DeleteAppointmentWord: indexOnly(command.DeleteAppointmentUsage, func(i command.Index) command.Command { return command.DeleteAppointment{Index: i} }),
		command.DoneAppointmentWord:   indexOnly(command.DoneAppointmentUsage, func(i command.Index) command.Command { return command.DoneAppointment{Index: i} }),
		command.UndoneAppointmentWord: indexOnly(command.UndoneAppointmentUsage, func(i command.Index) command.Command { return command.UndoneAppointment{Index: i} }),
		command.FindAppointmentWord:   parseFindAppointment,
		command.ListAppointmentWord:   noArgs(command.ListAppointments{}),
		command.ClearAppointmentWord:  noArgs(command.ClearAppointments{}),

		command.FindRevenueWord:  parseFindRevenue,
		command.ListRevenueWord:  noArgs(command.ListRevenues{}),
		command.ClearRevenueWord: noArgs(command.ClearRevenues{}),

		command.ProfitWord: parseProfit,
		command.HelpWord:   noArgs(command.Help{}),
		command.ExitWord:   noArgs(command.Exit{}),
	}}
}

// Dispatch parses one line of user input.
func (d *Dispatcher) Dispatch(input string) (command.Command, error) {
	match := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return nil, &ParseError{
			Message: MessageInvalidCommandFormat,
			Usage:   command.HelpUsage,
			Kind:    ErrInvalidCommandFormat,
		}
	}
	word, args := match[1], match[2]

	parse, ok := d.parsers[word]
	if !ok {
		return nil, &ParseError{Message: MessageUnknownCommand + ": " + word, Kind: ErrUnknownCommand}
	}
	return parse(args)
}

// Words returns every registered command word, sorted.
func (d *Dispatcher) Words() []string {
	return slices.Sorted(maps.Keys(d.parsers))
}

// noArgs returns a parser that ignores its arguments and always yields c.
func noArgs(c command.Command) ParseFunc {
	return func(string) (command.Command, error) {
		return c, nil
	}
}

// indexOnly returns a parser for commands whose only argument is an index.
func indexOnly(usage string, build func(command.Index) command.Command) ParseFunc {
	return func(args string) (command.Command, error) {
		idx, err := parseIndex(args, usage)
		if err != nil {
			return nil, err
		}
		return build(idx), nil
	}
}
