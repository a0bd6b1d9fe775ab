package schema

import "strings"

type parsedTag struct {
	Column string
	Key    bool
	Skip   bool
}

// parseTag understands `db:"column"`, `db:"column,pk"`, `db:",pk"`, and
// `db:"-"`.
func parseTag(raw string) parsedTag {
	if raw == "" {
		return parsedTag{}
	}
	if raw == "-" {
		return parsedTag{Skip: true}
	}
	parts := strings.Split(raw, ",")
	t := parsedTag{Column: strings.TrimSpace(parts[0])}
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == "pk" {
			t.Key = true
		}
	}
	return t
}
