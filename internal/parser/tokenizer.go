package parser

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of an argument value, e.g. "n/" in "n/Alice".
type Prefix string

// Argument prefixes.
const (
	PrefixName        Prefix = "n/"
	PrefixPhone       Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixTag         Prefix = "t/"
	PrefixTitle       Prefix = "t/"
	PrefixDuration    Prefix = "du/"
	PrefixPrice       Prefix = "pr/"
	PrefixDescription Prefix = "d/"
	PrefixAmount      Prefix = "v/"
	PrefixDate        Prefix = "dt/"
	PrefixFixed       Prefix = "f/"
	PrefixServiceCode Prefix = "s/"
	PrefixStartTime   Prefix = "st/"
	PrefixMonth       Prefix = "m/"
	PrefixYear        Prefix = "y/"
)

// ArgMap holds the values found by Tokenize.
type ArgMap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first prefix.
func (a ArgMap) Preamble() string {
	return a.preamble
}

// Value returns the last value given for p.
func (a ArgMap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// All returns every value given for p, in order.
func (a ArgMap) All(p Prefix) []string {
	return slices.Clone(a.values[p])
}

// Has reports whether every prefix in ps was given.
func (a ArgMap) Has(ps ...Prefix) bool {
	for _, p := range ps {
		if len(a.values[p]) == 0 {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one prefix in ps was given.
func (a ArgMap) HasAny(ps ...Prefix) bool {
	return slices.ContainsFunc(ps, func(p Prefix) bool { return len(a.values[p]) > 0 })
}

// Repeated returns the prefixes in ps that were given more than once.
func (a ArgMap) Repeated(ps ...Prefix) []Prefix {
	var out []Prefix
	for _, p := range ps {
		if len(a.values[p]) > 1 {
			out = append(out, p)
		}
	}
	return out
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefixed values. A prefix is only
// recognised at the start of args or after whitespace, so "dt/" is never
// read as "t/". Values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgMap {
	var found []prefixPosition
	for _, p := range slices.Compact(slices.Sorted(slices.Values(prefixes))) {
		for from := 0; from < len(args); {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if before, _ := utf8.DecodeLastRuneInString(args[:at]); at == 0 || unicode.IsSpace(before) {
				found = append(found, prefixPosition{prefix: p, start: at})
			}
			from = at + len(p)
		}
	}
	slices.SortFunc(found, func(a, b prefixPosition) int { return a.start - b.start })

	am := ArgMap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(found) > 0 {
		end = found[0].start
	}
	am.preamble = strings.TrimSpace(args[:end])
	for i, pos := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		am.values[pos.prefix] = append(am.values[pos.prefix], value)
	}
	return am
}
