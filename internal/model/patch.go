package model

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Optional carries a value together with whether it was present in the input.
// An absent field decodes to Set == false; an explicit JSON null decodes to the
// zero value with Set == true.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Ptr returns a pointer to the value when present, nil otherwise.
func (o Optional[T]) Ptr() *T {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// IsZero lets `omitzero` drop absent fields when encoding.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// CVPatch is a partial update of a CV. Only fields that are Set are applied.
type CVPatch struct {
	Title          Optional[string]          `json:"title,omitzero"`
	PersonalInfo   Optional[PersonalInfo]    `json:"personal_info,omitzero"`
	Education      Optional[[]Education]     `json:"education,omitzero"`
	Experience     Optional[[]Experience]    `json:"experience,omitzero"`
	Skills         Optional[[]Skill]         `json:"skills,omitzero"`
	Projects       Optional[[]Project]       `json:"projects,omitzero"`
	Certifications Optional[[]Certification] `json:"certifications,omitzero"`
	TemplateID     Optional[string]          `json:"template_id,omitzero"`
	Customization  Optional[Customization]   `json:"customization,omitzero"`
	IsPublic       Optional[bool]            `json:"is_public,omitzero"`

	// ExpectedVersion, when non-nil, must match the stored version.
	ExpectedVersion *int `json:"expected_version,omitempty"`
}

// Apply copies every present field of p onto c. Slug handling is left to the caller.
func (p CVPatch) Apply(c *CV) {
	if p.Title.Set {
		c.Title = p.Title.Value
	}
	if p.PersonalInfo.Set {
		c.PersonalInfo = p.PersonalInfo.Value
	}
	if p.Education.Set {
		c.Education = p.Education.Value
	}
	if p.Experience.Set {
		c.Experience = p.Experience.Value
	}
	if p.Skills.Set {
		c.Skills = p.Skills.Value
	}
	if p.Projects.Set {
		c.Projects = p.Projects.Value
	}
	if p.Certifications.Set {
		c.Certifications = p.Certifications.Value
	}
	if p.TemplateID.Set {
		c.TemplateID = p.TemplateID.Value
	}
	if p.Customization.Set {
		c.Customization = p.Customization.Value
	}
	if p.IsPublic.Set {
		c.IsPublic = p.IsPublic.Value
	}
}

// Merge returns p overlaid with every present field of next.
func (p CVPatch) Merge(next CVPatch) CVPatch {
	out := p
	if next.Title.Set {
		out.Title = next.Title
	}
	if next.PersonalInfo.Set {
		out.PersonalInfo = next.PersonalInfo
	}
	if next.Education.Set {
		out.Education = next.Education
	}
	if next.Experience.Set {
		out.Experience = next.Experience
	}
	if next.Skills.Set {
		out.Skills = next.Skills
	}
	if next.Projects.Set {
		out.Projects = next.Projects
	}
	if next.Certifications.Set {
		out.Certifications = next.Certifications
	}
	if next.TemplateID.Set {
		out.TemplateID = next.TemplateID
	}
	if next.Customization.Set {
		out.Customization = next.Customization
	}
	if next.IsPublic.Set {
		out.IsPublic = next.IsPublic
	}
	if next.ExpectedVersion != nil {
		out.ExpectedVersion = next.ExpectedVersion
	}
	return out
}

// Clone returns a copy of p that shares no slices or pointers with it.
func (p CVPatch) Clone() CVPatch {
	out := p
	out.Education.Value = slices.Clone(p.Education.Value)
	out.Experience.Value = slices.Clone(p.Experience.Value)
	out.Skills.Value = slices.Clone(p.Skills.Value)
	out.Certifications.Value = slices.Clone(p.Certifications.Value)
	out.Projects.Value = slices.Clone(p.Projects.Value)
	for i := range out.Projects.Value {
		out.Projects.Value[i].Technologies = slices.Clone(out.Projects.Value[i].Technologies)
	}
	if p.ExpectedVersion != nil {
		v := *p.ExpectedVersion
		out.ExpectedVersion = &v
	}
	return out
}

// Empty reports whether the patch changes nothing.
func (p CVPatch) Empty() bool {
	return !p.Title.Set && !p.PersonalInfo.Set && !p.Education.Set && !p.Experience.Set &&
		!p.Skills.Set && !p.Projects.Set && !p.Certifications.Set && !p.TemplateID.Set &&
		!p.Customization.Set && !p.IsPublic.Set
}
