package schema

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// NamingStrategy converts Go identifiers to storage names.
type NamingStrategy interface {
	TableName(structName string) string
	ColumnName(fieldName string) string
}

// SnakeCase derives snake_case column names and, optionally pluralized,
// snake_case table names. The zero value keeps table names singular.
type SnakeCase struct {
	Plural bool
}

// DefaultNaming is snake_case with pluralized table names.
func DefaultNaming() NamingStrategy {
	return SnakeCase{Plural: true}
}

func (s SnakeCase) TableName(structName string) string {
	name := toSnakeCase(structName)
	if s.Plural {
		return pluralizeClient.Pluralize(name, 2, false)
	}
	return name
}

func (SnakeCase) ColumnName(fieldName string) string {
	return toSnakeCase(fieldName)
}

// toSnakeCase converts CamelCase and acronym-heavy names to snake_case.
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}
	switch name {
	case "ID":
		return "id"
	case "UUID":
		return "uuid"
	case "URL":
		return "url"
	}

	// Already snake_case: normalize and return.
	if strings.Contains(name, "_") && strings.ToLower(name) == name {
		return name
	}

	var result strings.Builder
	result.Grow(len(name) + 4)
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// aB -> a_b, a1B -> a1_b, and ABc -> a_bc for trailing acronyms
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteByte('_')
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}
