package gen

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// rules is the shared singularization ruleset. It is built once at package
// initialization and read-only afterwards, so concurrent blueprint
// processing shares it without locking.
var rules = ruleset()

// ruleset builds the singularization rules for option names. Rule order
// matters: irregular forms win over suffix rules, and among suffix rules the
// longest matching suffix wins. The ruleset prefers later additions, so the
// generic "s" rule is added first.
func ruleset() *inflect.Ruleset {
	r := inflect.NewRuleset()
	r.AddSingular("s", "")
	r.AddSingular("ies", "y")
	r.AddSingular("ses", "s")
	r.AddSingular("xes", "x")
	r.AddSingular("ches", "ch")
	r.AddSingular("shes", "sh")
	for _, w := range [][2]string{
		{"child", "children"},
		{"index", "indices"},
		{"vertex", "vertices"},
		{"matrix", "matrices"},
	} {
		r.AddIrregular(w[0], w[1])
	}
	return r
}

// Singularize returns the singular form of a collection option name.
// Words without a known plural suffix are returned unchanged ("data" stays
// "data"), as are single-character names. The heuristic only needs to cover
// common configuration-option plurals; a wrong result is corrected with an
// explicit singular override on the option.
func Singularize(word string) (string, error) {
	if err := validIdent("", word); err != nil {
		return "", err
	}
	// A single character is never a plural suffix of anything; the suffix
	// rules would strip "s" down to an empty name.
	if utf8.RuneCountInString(word) <= 1 {
		return word, nil
	}
	return rules.Singularize(word), nil
}

// validIdent checks that name is usable as an option or method identifier.
func validIdent(blueprint, name string) error {
	switch {
	case name == "":
		return NewNameError(blueprint, "", "name cannot be empty")
	case !token.IsIdentifier(name):
		return NewNameError(blueprint, name, "not a valid identifier")
	}
	return nil
}

var title = cases.Title(language.Und, cases.NoLower)

// pascal converts an option name to PascalCase. Underscore-separated words
// are joined with each word capitalized; camelCase input keeps its interior
// capitalization.
func pascal(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		words[i] = title.String(w)
	}
	return strings.Join(words, "")
}

// camel converts an option name to camelCase.
func camel(s string) string {
	p := pascal(s)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// snake converts a name to snake_case, used for generated file names.
func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// builderField returns the builder struct field for the given option name
// and ensures it doesn't conflict with Go keywords or the builder's own
// private fields, and that it is not exported.
func builderField(name string) string {
	name = camel(name)
	if _, ok := privateField[name]; ok || token.Lookup(name).IsKeyword() {
		return "_" + name
	}
	return name
}

// private fields used by the generated builders.
var privateField = map[string]struct{}{
	"pending":   {},
	"providers": {},
	"state":     {},
}
