package parser

import (
	"github.com/mesh-intelligence/homebiz/internal/command"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

func parseAddClient(args string) (command.Command, error) {
	const usage = command.AddClientUsage
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixTag)
	if !am.Has(PrefixName, PrefixPhone, PrefixEmail) || am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if err := checkSingle(am, usage, PrefixName, PrefixPhone, PrefixEmail); err != nil {
		return nil, err
	}

	name, err := required(am, PrefixName, usage, types.ParseName)
	if err != nil {
		return nil, err
	}
	phone, err := required(am, PrefixPhone, usage, types.ParsePhone)
	if err != nil {
		return nil, err
	}
	email, err := required(am, PrefixEmail, usage, types.ParseEmail)
	if err != nil {
		return nil, err
	}
	tags, err := types.ParseTags(am.All(PrefixTag))
	if err != nil {
		return nil, fieldError(usage, err)
	}
	return command.AddClient{Client: types.Client{Name: name, Phone: phone, Email: email, Tags: tags}}, nil
}

func parseEditClient(args string) (command.Command, error) {
	const usage = command.EditClientUsage
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixTag)
	idx, err := parseIndex(am.Preamble(), usage)
	if err != nil {
		return nil, err
	}
	if err := checkSingle(am, usage, PrefixName, PrefixPhone, PrefixEmail); err != nil {
		return nil, err
	}

	var ch command.ClientChanges
	if ch.Name, err = optional(am, PrefixName, usage, types.ParseName); err != nil {
		return nil, err
	}
	if ch.Phone, err = optional(am, PrefixPhone, usage, types.ParsePhone); err != nil {
		return nil, err
	}
	if ch.Email, err = optional(am, PrefixEmail, usage, types.ParseEmail); err != nil {
		return nil, err
	}
	if ch.Tags, err = editedTags(am, PrefixTag, usage, types.ParseTags); err != nil {
		return nil, err
	}
	if !ch.Any() {
		return nil, messageError(usage, MessageNotEdited)
	}
	return command.EditClient{Index: idx, Changes: ch}, nil
}

func parseFindClient(args string) (command.Command, error) {
	const usage = command.FindClientUsage
	am := Tokenize(args, PrefixName, PrefixPhone)
	if am.Preamble() != "" {
		return nil, formatError(usage)
	}
	if !am.HasAny(PrefixName, PrefixPhone) {
		return nil, messageError(usage, MessageNoCriteria)
	}
	if err := checkSingle(am, usage, PrefixPhone); err != nil {
		return nil, err
	}

	find := command.FindClient{NameKeywords: keywords(am, PrefixName)}
	if am.Has(PrefixName) && len(find.NameKeywords) == 0 {
		return nil, formatError(usage)
	}
	if am.Has(PrefixPhone) {
		phone, err := required(am, PrefixPhone, usage, types.ParsePhone)
		if err != nil {
			return nil, err
		}
		find.Phone = phone
	}
	return find, nil
}
