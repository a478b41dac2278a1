package parser

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/homebiz/internal/command"
)

// parseIndex parses a one-based index typed by the user.
func parseIndex(s, usage string) (command.Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, messageError(usage, MessageInvalidIndex)
	}
	return command.IndexFromOneBased(n), nil
}

// required parses the value of p, which the caller has checked is present.
func required[T any](am ArgMap, p Prefix, usage string, parse func(string) (T, error)) (T, error) {
	v, _ := am.Value(p)
	out, err := parse(v)
	if err != nil {
		var zero T
		return zero, fieldError(usage, err)
	}
	return out, nil
}

// optional parses the value of p if it was given and returns nil otherwise.
func optional[T any](am ArgMap, p Prefix, usage string, parse func(string) (T, error)) (*T, error) {
	if !am.Has(p) {
		return nil, nil
	}
	out, err := required(am, p, usage, parse)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// editedTags returns the tags given with p. A single empty t/ clears the
// tags. Nil means tags were not mentioned.
func editedTags(am ArgMap, p Prefix, usage string, parse func([]string) ([]string, error)) (*[]string, error) {
	if !am.Has(p) {
		return nil, nil
	}
	raw := am.All(p)
	if len(raw) == 1 && raw[0] == "" {
		empty := []string{}
		return &empty, nil
	}
	tags, err := parse(raw)
	if err != nil {
		return nil, fieldError(usage, err)
	}
	return &tags, nil
}

// keywords splits every value of p into words.
func keywords(am ArgMap, p Prefix) []string {
	var out []string
	for _, v := range am.All(p) {
		out = append(out, strings.Fields(v)...)
	}
	return out
}

// checkSingle rejects repeated single-valued prefixes.
func checkSingle(am ArgMap, usage string, ps ...Prefix) error {
	if dups := am.Repeated(ps...); len(dups) > 0 {
		return duplicatePrefixError(usage, dups)
	}
	return nil
}
