package typecheck

import "maps"

// Args are the arguments of one call: positional values in order, plus
// values passed by parameter name.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// NewArgs builds positional-only arguments.
func NewArgs(positional ...any) Args {
	return Args{Positional: positional}
}

// WithKeyword returns a copy of a with name set to value. The receiver is
// left untouched.
func (a Args) WithKeyword(name string, value any) Args {
	keyword := make(map[string]any, len(a.Keyword)+1)
	maps.Copy(keyword, a.Keyword)
	keyword[name] = value

	return Args{Positional: a.Positional, Keyword: keyword}
}
