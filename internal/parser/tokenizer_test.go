package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	am := Tokenize(" 1 n/Alice Tan p/912 t/a t/b", PrefixName, PrefixPhone, PrefixTag)

	assert.Equal(t, "1", am.Preamble())
	name, ok := am.Value(PrefixName)
	assert.True(t, ok)
	assert.Equal(t, "Alice Tan", name)
	assert.Equal(t, []string{"a", "b"}, am.All(PrefixTag))
	assert.True(t, am.Has(PrefixName, PrefixPhone))
	assert.False(t, am.Has(PrefixEmail))
	assert.True(t, am.HasAny(PrefixEmail, PrefixPhone))
	assert.Equal(t, []Prefix{PrefixTag}, am.Repeated(PrefixName, PrefixTag))
}

func TestTokenize_PrefixNeedsLeadingSpace(t *testing.T) {
	am := Tokenize(" d/Rent dt/01-10-2026 t/shop", PrefixDescription, PrefixDate, PrefixTag)

	d, _ := am.Value(PrefixDescription)
	assert.Equal(t, "Rent", d)
	dt, _ := am.Value(PrefixDate)
	assert.Equal(t, "01-10-2026", dt)
	assert.Equal(t, []string{"shop"}, am.All(PrefixTag), "dt/ is not read as t/")
}

func TestTokenize_NoPrefixes(t *testing.T) {
	am := Tokenize("  just text  ", PrefixName)
	assert.Equal(t, "just text", am.Preamble())
	_, ok := am.Value(PrefixName)
	assert.False(t, ok)

	am = Tokenize("n/Alice", PrefixName)
	assert.Equal(t, "", am.Preamble())
	v, _ := am.Value(PrefixName)
	assert.Equal(t, "Alice", v, "prefix at the very start is recognised")
}

func TestTokenize_LastValueWins(t *testing.T) {
	am := Tokenize(" n/A n/B", PrefixName)
	v, _ := am.Value(PrefixName)
	assert.Equal(t, "B", v)
}

func TestTokenize_NonASCIIBeforePrefix(t *testing.T) {
	am := Tokenize(" n/Renàt/x", PrefixName, PrefixTag)
	v, _ := am.Value(PrefixName)
	assert.Equal(t, "Renàt/x", v)
	assert.Empty(t, am.All(PrefixTag))

	am = Tokenize(" n/Åp/1 p/91234567", PrefixName, PrefixPhone)
	v, _ = am.Value(PrefixName)
	assert.Equal(t, "Åp/1", v)
	assert.Empty(t, am.Repeated(PrefixPhone))

	am = Tokenize(" n/Zoë\u00a0p/912", PrefixName, PrefixPhone)
	v, _ = am.Value(PrefixName)
	assert.Equal(t, "Zoë", v)
	p, _ := am.Value(PrefixPhone)
	assert.Equal(t, "912", p, "a non-breaking space still separates prefixes")
}
