// Package validation checks CV sections against their business rules.
//
// Every function is pure: it never mutates its input and reports problems as
// data in a Result rather than as an error.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"cvapi/internal/model"
)

const (
	SummaryMinLength     = 50
	SummaryMaxLength     = 500
	DescriptionMinLength = 20
	MinSkills            = 3
	MinSkillLevel        = 1
	MaxSkillLevel        = 5
)

// Step indices used by the step-by-step editor.
const (
	StepTemplate = iota
	StepPersonalInfo
	StepExperience
	StepEducation
	StepSkills
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern   = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneSeparator = regexp.MustCompile(`[\s\-().]`)
)

// Result is the outcome of a validation call.
type Result struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

func newResult(errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func length(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// PersonalInfo validates the contact block and summary.
func PersonalInfo(p model.PersonalInfo) Result {
	var errs []string

	if blank(p.FirstName) {
		errs = append(errs, "First name is required")
	}
	if blank(p.LastName) {
		errs = append(errs, "Last name is required")
	}

	if blank(p.Email) {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(strings.TrimSpace(p.Email)) {
		errs = append(errs, "Please enter a valid email address")
	}

	if blank(p.Phone) {
		errs = append(errs, "Phone number is required")
	} else if !phonePattern.MatchString(phoneSeparator.ReplaceAllString(strings.TrimSpace(p.Phone), "")) {
		errs = append(errs, "Please enter a valid phone number")
	}

	if blank(p.Location) {
		errs = append(errs, "Location is required")
	}

	if blank(p.Summary) {
		errs = append(errs, "Professional summary is required")
	} else {
		switch n := length(p.Summary); {
		case n < SummaryMinLength:
			errs = append(errs, fmt.Sprintf("Professional summary is too short (minimum %d characters)", SummaryMinLength))
		case n > SummaryMaxLength:
			errs = append(errs, fmt.Sprintf("Professional summary is too long (maximum %d characters)", SummaryMaxLength))
		}
	}

	return newResult(errs)
}

// Experience validates the work history. An empty history yields a single error.
func Experience(items []model.Experience) Result {
	if len(items) == 0 {
		return newResult([]string{"At least one work experience entry is required"})
	}

	var errs []string
	for i, e := range items {
		n := i + 1
		if blank(e.Position) {
			errs = append(errs, fmt.Sprintf("Experience %d: Position is required", n))
		}
		if blank(e.Company) {
			errs = append(errs, fmt.Sprintf("Experience %d: Company is required", n))
		}
		if blank(e.StartDate) {
			errs = append(errs, fmt.Sprintf("Experience %d: Start date is required", n))
		}
		if blank(e.Description) {
			errs = append(errs, fmt.Sprintf("Experience %d: Description is required", n))
		} else if length(e.Description) < DescriptionMinLength {
			errs = append(errs, fmt.Sprintf("Experience %d: Description must be at least %d characters", n, DescriptionMinLength))
		}
		if !e.Current && startsAfter(e.StartDate, e.EndDate) {
			errs = append(errs, fmt.Sprintf("Experience %d: Start date cannot be after end date", n))
		}
	}
	return newResult(errs)
}

// Education validates the education history. An empty history yields a single error.
func Education(items []model.Education) Result {
	if len(items) == 0 {
		return newResult([]string{"At least one education entry is required"})
	}

	var errs []string
	for i, e := range items {
		n := i + 1
		if blank(e.Degree) {
			errs = append(errs, fmt.Sprintf("Education %d: Degree is required", n))
		}
		if blank(e.Institution) {
			errs = append(errs, fmt.Sprintf("Education %d: Institution is required", n))
		}
		if blank(e.StartDate) {
			errs = append(errs, fmt.Sprintf("Education %d: Start date is required", n))
		}
		if blank(e.EndDate) {
			errs = append(errs, fmt.Sprintf("Education %d: End date is required", n))
		}
		if startsAfter(e.StartDate, e.EndDate) {
			errs = append(errs, fmt.Sprintf("Education %d: Start date cannot be after end date", n))
		}
	}
	return newResult(errs)
}

// Skills validates the skill list. Duplicate names are reported once, no
// matter how many collide.
func Skills(items []model.Skill) Result {
	if len(items) == 0 {
		return newResult([]string{fmt.Sprintf("Please add at least %d skills", MinSkills)})
	}

	var errs []string
	if len(items) < MinSkills {
		errs = append(errs, fmt.Sprintf("Please add at least %d skills", MinSkills))
	}

	seen := make(map[string]struct{}, len(items))
	duplicate := false
	for i, s := range items {
		n := i + 1
		if blank(s.Name) {
			errs = append(errs, fmt.Sprintf("Skill %d: Name is required", n))
		} else {
			key := strings.ToLower(strings.TrimSpace(s.Name))
			if _, ok := seen[key]; ok {
				duplicate = true
			}
			seen[key] = struct{}{}
		}
		if s.Level < MinSkillLevel || s.Level > MaxSkillLevel {
			errs = append(errs, fmt.Sprintf("Skill %d: Level must be between %d and %d", n, MinSkillLevel, MaxSkillLevel))
		}
	}
	if duplicate {
		errs = append(errs, "Duplicate skills are not allowed")
	}
	return newResult(errs)
}

// Template requires a template to be selected.
func Template(templateID string) Result {
	if blank(templateID) {
		return newResult([]string{"Please select a template"})
	}
	return newResult(nil)
}

// Projects validates optional project entries. An empty list is valid.
func Projects(items []model.Project) Result {
	var errs []string
	for i, p := range items {
		n := i + 1
		if blank(p.Name) {
			errs = append(errs, fmt.Sprintf("Project %d: Name is required", n))
		}
		if blank(p.Description) {
			errs = append(errs, fmt.Sprintf("Project %d: Description is required", n))
		}
		if startsAfter(p.StartDate, p.EndDate) {
			errs = append(errs, fmt.Sprintf("Project %d: Start date cannot be after end date", n))
		}
	}
	return newResult(errs)
}

// Certifications validates optional certification entries. An empty list is valid.
func Certifications(items []model.Certification) Result {
	var errs []string
	for i, c := range items {
		n := i + 1
		if blank(c.Name) {
			errs = append(errs, fmt.Sprintf("Certification %d: Name is required", n))
		}
		if blank(c.Issuer) {
			errs = append(errs, fmt.Sprintf("Certification %d: Issuer is required", n))
		}
		if startsAfter(c.Date, c.ExpiryDate) {
			errs = append(errs, fmt.Sprintf("Certification %d: Issue date cannot be after expiry date", n))
		}
	}
	return newResult(errs)
}

// Document runs the template, personal info, experience, education and skills
// validators in that order and concatenates their errors.
func Document(cv *model.CV) Result {
	results := []Result{
		Template(cv.TemplateID),
		PersonalInfo(cv.PersonalInfo),
		Experience(cv.Experience),
		Education(cv.Education),
		Skills(cv.Skills),
	}

	errs := []string{}
	valid := true
	for _, r := range results {
		valid = valid && r.IsValid
		errs = append(errs, r.Errors...)
	}
	return Result{IsValid: valid, Errors: errs}
}

// Step validates the single section edited at the given editor step.
// Unknown steps always pass.
func Step(step int, cv *model.CV) Result {
	switch step {
	case StepTemplate:
		return Template(cv.TemplateID)
	case StepPersonalInfo:
		return PersonalInfo(cv.PersonalInfo)
	case StepExperience:
		return Experience(cv.Experience)
	case StepEducation:
		return Education(cv.Education)
	case StepSkills:
		return Skills(cv.Skills)
	default:
		return newResult(nil)
	}
}

// Sections reports every section separately, including the optional ones
// that do not take part in Document.
func Sections(cv *model.CV) map[string]Result {
	return map[string]Result{
		"template":       Template(cv.TemplateID),
		"personal_info":  PersonalInfo(cv.PersonalInfo),
		"experience":     Experience(cv.Experience),
		"education":      Education(cv.Education),
		"skills":         Skills(cv.Skills),
		"projects":       Projects(cv.Projects),
		"certifications": Certifications(cv.Certifications),
		"customization":  Customization(cv.Customization),
	}
}

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// startsAfter reports whether both dates parse and start is after end.
func startsAfter(start, end string) bool {
	if blank(start) || blank(end) {
		return false
	}
	s, ok := parseDate(start)
	if !ok {
		return false
	}
	e, ok := parseDate(end)
	if !ok {
		return false
	}
	return s.After(e)
}
