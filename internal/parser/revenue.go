package parser

import (
	"github.com/mesh-intelligence/homebiz/internal/command"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

func parseFindRevenue(args string) (command.Command, error) {
	const usage = command.FindRevenueUsage
	am := Tokenize(args, PrefixServiceCode, PrefixDate)
	if am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if !am.HasAny(PrefixServiceCode, PrefixDate) {
		return nil, messageError(usage, MessageNoCriteria)
	}
	if err := checkSingle(am, usage, PrefixServiceCode, PrefixDate); err != nil {
		return nil, err
	}

	var find command.FindRevenue
	var err error
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

func parseProfit(args string) (command.Command, error) {
	const usage = command.ProfitUsage
	am := Tokenize(args, PrefixMonth, PrefixYear)
	if !am.Has(PrefixMonth, PrefixYear) || am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if err := checkSingle(am, usage, PrefixMonth, PrefixYear); err != nil {
		return nil, err
	}

	month, err := required(am, PrefixMonth, usage, types.ParseMonth)
	if err != nil {
		return nil, err
	}
	year, err := required(am, PrefixYear, usage, types.ParseYear)
	if err != nil {
		return nil, err
	}
	return command.Profit{Month: month, Year: year}, nil
}
