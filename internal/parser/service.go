package parser

import (
	"github.com/mesh-intelligence/homebiz/internal/command"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

func parseAddService(args string) (command.Command, error) {
	const usage = command.AddServiceUsage
	am := Tokenize(args, PrefixTitle, PrefixDuration, PrefixPrice)
	if !am.Has(PrefixTitle, PrefixDuration, PrefixPrice) || am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if err := checkSingle(am, usage, PrefixTitle, PrefixDuration, PrefixPrice); err != nil {
		return nil, err
	}

	title, err := required(am, PrefixTitle, usage, types.ParseTitle)
	if err != nil {
		return nil, err
	}
	duration, err := required(am, PrefixDuration, usage, types.ParseDuration)
	if err != nil {
		return nil, err
	}
	price, err := required(am, PrefixPrice, usage, types.ParseAmount)
	if err != nil {
		return nil, err
	}
	return command.AddService{Title: title, Duration: duration, Price: price}, nil
}

func parseEditService(args string) (command.Command, error) {
	const usage = command.EditServiceUsage
	am := Tokenize(args, PrefixTitle, PrefixDuration, PrefixPrice)
	idx, err := parseIndex(am.Preamble(), usage)
	if err != nil {
		return nil, err
	}
	if err := checkSingle(am, usage, PrefixTitle, PrefixDuration, PrefixPrice); err != nil {
		return nil, err
	}

	var ch command.ServiceChanges
	if ch.Title, err = optional(am, PrefixTitle, usage, types.ParseTitle); err != nil {
		return nil, err
	}
	if ch.Duration, err = optional(am, PrefixDuration, usage, types.ParseDuration); err != nil {
		return nil, err
	}
	if ch.Price, err = optional(am, PrefixPrice, usage, types.ParseAmount); err != nil {
		return nil, err
	}
	if !ch.Any() {
		return nil, messageError(usage, MessageNotEdited)
	}
	return command.EditService{Index: idx, Changes: ch}, nil
}

func parseFindService(args string) (command.Command, error) {
	const usage = command.FindServiceUsage
	am := Tokenize(args, PrefixTitle, PrefixServiceCode)
	if am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if !am.HasAny(PrefixTitle, PrefixServiceCode) {
		return nil, messageError(usage, MessageNoCriteria)
	}
	if err := checkSingle(am, usage, PrefixServiceCode); err != nil {
		return nil, err
	}

	find := command.FindService{TitleKeywords: keywords(am, PrefixTitle)}
	if am.Has(PrefixTitle) && len(find.TitleKeywords) == 0 {
		return nil, formatError(usage)
	}
	if am.Has(PrefixServiceCode) {
		code, err := required(am, PrefixServiceCode, usage, types.ParseServiceCode)
		if err != nil {
			return nil, err
		}
		find.Code = code
	}
	return find, nil
}
