package model

import "strings"

// TemplateCategory groups templates by visual family.
type TemplateCategory string

const (
	CategoryModern   TemplateCategory = "modern"
	CategoryClassic  TemplateCategory = "classic"
	CategoryCreative TemplateCategory = "creative"
)

// CategoryOf maps a template id to its category. Ids are expected to be either
// a bare category ("classic") or prefixed by one ("creative-bold").
// Unknown ids fall back to the modern family.
func CategoryOf(templateID string) TemplateCategory {
	id := strings.ToLower(strings.TrimSpace(templateID))
	for _, c := range []TemplateCategory{CategoryModern, CategoryClassic, CategoryCreative} {
		if id == string(c) || strings.HasPrefix(id, string(c)+"-") {
			return c
		}
	}
	return CategoryModern
}
