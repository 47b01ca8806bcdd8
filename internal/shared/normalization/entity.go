package normalization

import "strings"

// entityAliases maps the entity spellings accepted on the wire to their
// canonical plural form.
var entityAliases = map[string]string{
	"":        "",
	"-":       "",
	"default": "",

	"restaurant":  "restaurants",
	"restaurants": "restaurants",

	"reservation":  "reservations",
	"reservations": "reservations",

	"menu":  "menus",
	"menus": "menus",

	"user":       "users",
	"users":      "users",
	"auth":       "users",
	"auth-user":  "users",
	"auth-users": "users",
	"owner":      "users",
	"owners":     "users",
}

var validEntities = map[string]bool{
	"restaurants":  true,
	"reservations": true,
	"menus":        true,
	"users":        true,
}

// NormalizeEntity converts an entity name to its canonical plural form,
// accepting singular forms, underscores and common aliases.
func NormalizeEntity(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	normalized := strings.ReplaceAll(trimmed, "_", "-")

	if canonical, found := entityAliases[normalized]; found {
		return canonical
	}
	return normalized
}

// IsValidEntity reports whether the given name resolves to a known entity.
func IsValidEntity(raw string) bool {
	normalized := NormalizeEntity(raw)
	if normalized == "" {
		return false
	}
	return validEntities[normalized]
}
