package service

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"cvapi/internal/model"
	"cvapi/internal/validation"
)

const (
	maxTitleLength     = 200
	maxEntriesPerField = 100
)

// maxDecodeRounds bounds how often decoded entities are fed back through the
// policy. Input still changing after that many rounds keeps its escaped form.
const maxDecodeRounds = 5

// sanitizer strips markup from free text. Values are stored as plain text, so
// entities are decoded, and the decoded text is run through the policy again
// until it stops changing. Encoded markup never survives as live markup.
type sanitizer struct {
	policy *bluemonday.Policy
}

func newSanitizer() *sanitizer {
	return &sanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *sanitizer) text(v string) string {
	if v == "" {
		return v
	}
	for range maxDecodeRounds {
		clean := html.UnescapeString(s.policy.Sanitize(v))
		if clean == v {
			return strings.TrimSpace(clean)
		}
		v = clean
	}
	return strings.TrimSpace(s.policy.Sanitize(v))
}

// patch returns a sanitized copy of p. Only fields present in the patch are
// touched, so stored text the caller did not send is never rewritten.
func (s *sanitizer) patch(p model.CVPatch) model.CVPatch {
	out := p.Clone()
	if out.Title.Set {
		out.Title.Value = s.text(out.Title.Value)
	}
	if out.TemplateID.Set {
		out.TemplateID.Value = s.text(out.TemplateID.Value)
	}
	if out.PersonalInfo.Set {
		pi := &out.PersonalInfo.Value
		s.fields(&pi.FirstName, &pi.LastName, &pi.Email, &pi.Phone, &pi.Location, &pi.Summary, &pi.Website, &pi.LinkedIn)
	}

	for i := range out.Experience.Value {
		e := &out.Experience.Value[i]
		s.fields(&e.ID, &e.Position, &e.Company, &e.Location, &e.StartDate, &e.EndDate, &e.Description)
	}
	for i := range out.Education.Value {
		e := &out.Education.Value[i]
		s.fields(&e.ID, &e.Degree, &e.Institution, &e.Location, &e.StartDate, &e.EndDate, &e.GPA, &e.Description)
	}
	for i := range out.Skills.Value {
		sk := &out.Skills.Value[i]
		s.fields(&sk.ID, &sk.Name, &sk.Category)
	}
	for i := range out.Projects.Value {
		pr := &out.Projects.Value[i]
		s.fields(&pr.ID, &pr.Name, &pr.Description, &pr.URL, &pr.StartDate, &pr.EndDate)
		for j := range pr.Technologies {
			pr.Technologies[j] = s.text(pr.Technologies[j])
		}
	}
	for i := range out.Certifications.Value {
		ce := &out.Certifications.Value[i]
		s.fields(&ce.ID, &ce.Name, &ce.Issuer, &ce.Date, &ce.ExpiryDate, &ce.CredentialID, &ce.URL)
	}
	return out
}

func (s *sanitizer) fields(fs ...*string) {
	for _, f := range fs {
		*f = s.text(*f)
	}
}

// checkStructure enforces the shape every stored CV must have. Content rules
// (required fields, lengths) are left to the validation package and never block a save.
// Missing entry ids are generated.
func checkStructure(c *model.CV) []string {
	var errs []string

	if utf8.RuneCountInString(c.Title) > maxTitleLength {
		errs = append(errs, fmt.Sprintf("Title must be at most %d characters", maxTitleLength))
	}

	errs = append(errs, validation.Customization(c.Customization).Errors...)

	sections := []struct {
		name string
		ids  []*string
	}{
		{"experience", idsOf(c.Experience, func(e *model.Experience) *string { return &e.ID })},
		{"education", idsOf(c.Education, func(e *model.Education) *string { return &e.ID })},
		{"skills", idsOf(c.Skills, func(e *model.Skill) *string { return &e.ID })},
		{"projects", idsOf(c.Projects, func(e *model.Project) *string { return &e.ID })},
		{"certifications", idsOf(c.Certifications, func(e *model.Certification) *string { return &e.ID })},
	}
	for _, sec := range sections {
		if len(sec.ids) > maxEntriesPerField {
			errs = append(errs, fmt.Sprintf("Too many %s entries (maximum %d)", sec.name, maxEntriesPerField))
			continue
		}
		seen := make(map[string]struct{}, len(sec.ids))
		dup := false
		for _, id := range sec.ids {
			if *id == "" {
				*id = uuid.NewString()
			}
			if _, ok := seen[*id]; ok {
				dup = true
			}
			seen[*id] = struct{}{}
		}
		if dup {
			errs = append(errs, fmt.Sprintf("Duplicate %s entry ids are not allowed", sec.name))
		}
	}

	return errs
}

func idsOf[T any](items []T, id func(*T) *string) []*string {
	out := make([]*string, len(items))
	for i := range items {
		out[i] = id(&items[i])
	}
	return out
}
