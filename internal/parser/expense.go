package parser

import (
	"github.com/mesh-intelligence/homebiz/internal/command"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

var expensePrefixes = []Prefix{PrefixDescription, PrefixAmount, PrefixDate, PrefixFixed, PrefixTag}

func parseAddExpense(args string) (command.Command, error) {
	const usage = command.AddExpenseUsage
	am := Tokenize(args, expensePrefixes...)
	if !am.Has(PrefixDescription, PrefixAmount) || am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if err := checkSingle(am, usage, PrefixDescription, PrefixAmount, PrefixDate, PrefixFixed); err != nil {
		return nil, err
	}

	var exp types.Expense
	var err error
	if exp.Description, err = required(am, PrefixDescription, usage, types.ParseDescription); err != nil {
		return nil, err
	}
	if exp.Amount, err = required(am, PrefixAmount, usage, types.ParsePositiveAmount); err != nil {
		return nil, err
	}
	if am.Has(PrefixDate) {
		if exp.Date, err = required(am, PrefixDate, usage, types.ParseDate); err != nil {
			return nil, err
		}
	}
	if am.Has(PrefixFixed) {
		if exp.Fixed, err = required(am, PrefixFixed, usage, types.ParseFixed); err != nil {
			return nil, err
		}
	}
	if exp.Tags, err = types.ParseTags(am.All(PrefixTag)); err != nil {
		return nil, fieldError(usage, err)
	}
	return command.AddExpense{Expense: exp}, nil
}

func parseEditExpense(args string) (command.Command, error) {
	const usage = command.EditExpenseUsage
	am := Tokenize(args, expensePrefixes...)
	idx, err := parseIndex(am.Preamble(), usage)
	if err != nil {
		return nil, err
	}
	if err := checkSingle(am, usage, PrefixDescription, PrefixAmount, PrefixDate, PrefixFixed); err != nil {
		return nil, err
	}

	var ch command.ExpenseChanges
	if ch.Description, err = optional(am, PrefixDescription, usage, types.ParseDescription); err != nil {
		return nil, err
	}
	if ch.Amount, err = optional(am, PrefixAmount, usage, types.ParsePositiveAmount); err != nil {
		return nil, err
	}
	if ch.Date, err = optional(am, PrefixDate, usage, types.ParseDate); err != nil {
		return nil, err
	}
	if ch.Fixed, err = optional(am, PrefixFixed, usage, types.ParseFixed); err != nil {
		return nil, err
	}
	if ch.Tags, err = editedTags(am, PrefixTag, usage, types.ParseTags); err != nil {
		return nil, err
	}
	if !ch.Any() {
		return nil, messageError(usage, MessageNotEdited)
	}
	return command.EditExpense{Index: idx, Changes: ch}, nil
}

func parseFindExpense(args string) (command.Command, error) {
	const usage = command.FindExpenseUsage
	am := Tokenize(args, PrefixDescription, PrefixDate, PrefixTag)
	if am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if !am.HasAny(PrefixDescription, PrefixDate, PrefixTag) {
		return nil, messageError(usage, MessageNoCriteria)
	}
	if err := checkSingle(am, usage, PrefixDate, PrefixTag); err != nil {
		return nil, err
	}

	find := command.FindExpense{DescriptionKeywords: keywords(am, PrefixDescription)}
	if am.Has(PrefixDescription) && len(find.DescriptionKeywords) == 0 {
		return nil, formatError(usage)
	}
	var err error
	if find.Date, err = optional(am, PrefixDate, usage, types.ParseDate); err != nil {
		return nil, err
	}
	if am.Has(PrefixTag) {
		if find.Tag, err = required(am, PrefixTag, usage, types.ParseTag); err != nil {
			return nil, err
		}
	}
	return find, nil
}
