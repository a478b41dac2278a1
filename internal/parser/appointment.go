package parser

import (
	"github.com/mesh-intelligence/homebiz/internal/command"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

var appointmentPrefixes = []Prefix{PrefixPhone, PrefixServiceCode, PrefixDate, PrefixStartTime}

func parseAddAppointment(args string) (command.Command, error) {
	const usage = command.AddAppointmentUsage
	am := Tokenize(args, appointmentPrefixes...)
	if !am.Has(appointmentPrefixes...) || am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if err := checkSingle(am, usage, appointmentPrefixes...); err != nil {
		return nil, err
	}

	var add command.AddAppointment
	var err error
	if add.Phone, err = required(am, PrefixPhone, usage, types.ParsePhone); err != nil {
		return nil, err
	}
	if add.ServiceCode, err = required(am, PrefixServiceCode, usage, types.ParseServiceCode); err != nil {
		return nil, err
	}
	if add.Date, err = required(am, PrefixDate, usage, types.ParseDate); err != nil {
		return nil, err
	}
	if add.At, err = required(am, PrefixStartTime, usage, types.ParseTimeOfDay); err != nil {
		return nil, err
	}
	return add, nil
}

func parseEditAppointment(args string) (command.Command, error) {
	const usage = command.EditAppointmentUsage
	am := Tokenize(args, appointmentPrefixes...)
	idx, err := parseIndex(am.Preamble(), usage)
	if err != nil {
		return nil, err
	}
	if err := checkSingle(am, usage, appointmentPrefixes...); err != nil {
		return nil, err
	}

	var ch command.AppointmentChanges
	if ch.Phone, err = optional(am, PrefixPhone, usage, types.ParsePhone); err != nil {
		return nil, err
	}
	if ch.ServiceCode, err = optional(am, PrefixServiceCode, usage, types.ParseServiceCode); err != nil {
		return nil, err
	}
	if ch.Date, err = optional(am, PrefixDate, usage, types.ParseDate); err != nil {
		return nil, err
	}
	if ch.At, err = optional(am, PrefixStartTime, usage, types.ParseTimeOfDay); err != nil {
		return nil, err
	}
	if !ch.Any() {
		return nil, messageError(usage, MessageNotEdited)
	}
	return command.EditAppointment{Index: idx, Changes: ch}, nil
}

func parseFindAppointment(args string) (command.Command, error) {
	const usage = command.FindAppointmentUsage
	am := Tokenize(args, PrefixPhone, PrefixServiceCode, PrefixDate)
	if am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if !am.HasAny(PrefixPhone, PrefixServiceCode, PrefixDate) {
		return nil, messageError(usage, MessageNoCriteria)
	}
	if err := checkSingle(am, usage, PrefixPhone, PrefixServiceCode, PrefixDate); err != nil {
		return nil, err
	}

	var find command.FindAppointment
	var err error
	if am.Has(PrefixPhone) {
		if find.Phone, err = required(am, PrefixPhone, usage, types.ParsePhone); err != nil {
			return nil, err
		}
	}
	if am.Has(PrefixServiceCode) {
		if find.ServiceCode, err = required(am, PrefixServiceCode, usage, types.ParseServiceCode); err != nil {
			return nil, err
		}
	}
	if find.Date, err = optional(am, PrefixDate, usage, types.ParseDate); err != nil {
		return nil, err
	}
	return find, nil
}
