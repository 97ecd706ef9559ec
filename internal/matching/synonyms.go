package matching

import "strings"

// SynonymTable maps a selected term to extra substrings that count as a match
// when found inside a recipe ingredient. Keys and values are lower-case.
type SynonymTable map[string][]string

// DefaultSynonyms returns a fresh copy of the built-in table.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"pasta":     {"spaghetti", "penne", "linguine", "rigatoni"},
		"formaggio": {"parmigiano", "pecorino", "mozzarella", "gorgonzola"},
	}
}

// With returns a copy of t where term also expands to substrings.
// Existing expansions for term are kept; the receiver is not modified.
func (t SynonymTable) With(term string, substrings ...string) SynonymTable {
	out := make(SynonymTable, len(t)+1)
	for k, v := range t {
		out[k] = append([]string(nil), v...)
	}
	key := strings.ToLower(strings.TrimSpace(term))
	if key == "" {
		return out
	}
	for _, s := range substrings {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out[key] = append(out[key], s)
		}
	}
	return out
}

// Merge layers extra on top of t, as With does for each entry.
func (t SynonymTable) Merge(extra map[string][]string) SynonymTable {
	out := t.With("")
	for term, subs := range extra {
		out = out.With(term, subs...)
	}
	return out
}

// Expand returns the extra substrings registered for a selected term.
func (t SynonymTable) Expand(term string) []string {
	return t[strings.ToLower(term)]
}
