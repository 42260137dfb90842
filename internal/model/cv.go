package model

import "time"

// DefaultTitle and DefaultTemplateID are applied when a CV is created without them.
const (
	DefaultTitle      = "Untitled CV"
	DefaultTemplateID = "modern"
)

// PersonalInfo is the contact and summary block shown at the top of a CV.
type PersonalInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Summary   string `json:"summary"`
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill level ranges from 1 (beginner) to 5 (expert).
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date,omitempty"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Customization holds the styling options applied by the presentation layer.
// Validation tags are evaluated by the validation package.
type Customization struct {
	PrimaryColor   string `json:"primary_color,omitempty" validate:"omitempty,hexcolor"`
	SecondaryColor string `json:"secondary_color,omitempty" validate:"omitempty,hexcolor"`
	FontFamily     string `json:"font_family,omitempty" validate:"omitempty,oneof=inter roboto lato georgia merriweather"`
	FontSize       string `json:"font_size,omitempty" validate:"omitempty,oneof=small medium large"`
	Spacing        string `json:"spacing,omitempty" validate:"omitempty,oneof=compact normal relaxed"`
	ShowPhoto      bool   `json:"show_photo,omitempty"`
}

// CV is one resume document owned by a user.
//
// Slug is set if and only if IsPublic is true. PhotoKey is the object storage
// key of the profile photo and is never serialized; PhotoURL is resolved per read.
type CV struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	Title          string          `json:"title"`
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	TemplateID     string          `json:"template_id"`
	Customization  Customization   `json:"customization"`
	IsPublic       bool            `json:"is_public"`
	Slug           *string         `json:"slug,omitempty"`
	PhotoKey       string          `json:"-"`
	PhotoURL       string          `json:"photo_url,omitempty"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PublicCV is the read-only projection served for a published slug.
type PublicCV struct {
	ID               string           `json:"id"`
	OwnerID          string           `json:"owner_id"`
	Title            string           `json:"title"`
	Slug             string           `json:"slug"`
	PersonalInfo     PersonalInfo     `json:"personal_info"`
	Education        []Education      `json:"education"`
	Experience       []Experience     `json:"experience"`
	Skills           []Skill          `json:"skills"`
	Projects         []Project        `json:"projects"`
	Certifications   []Certification  `json:"certifications"`
	TemplateID       string           `json:"template_id"`
	TemplateCategory TemplateCategory `json:"template_category"`
	Customization    Customization    `json:"customization"`
	PhotoURL         string           `json:"photo_url,omitempty"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Public builds the public projection of c. It must only be called for published CVs.
func (c *CV) Public() *PublicCV {
	p := &PublicCV{
		ID:               c.ID,
		OwnerID:          c.OwnerID,
		Title:            c.Title,
		PersonalInfo:     c.PersonalInfo,
		Education:        c.Education,
		Experience:       c.Experience,
		Skills:           c.Skills,
		Projects:         c.Projects,
		Certifications:   c.Certifications,
		TemplateID:       c.TemplateID,
		TemplateCategory: CategoryOf(c.TemplateID),
		Customization:    c.Customization,
		PhotoURL:         c.PhotoURL,
		UpdatedAt:        c.UpdatedAt,
	}
	if c.Slug != nil {
		p.Slug = *c.Slug
	}
	return p
}

// EnsureSequences replaces nil section slices with empty ones so they encode as [].
func (c *CV) EnsureSequences() {
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Skills == nil {
		c.Skills = []Skill{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	if c.Certifications == nil {
		c.Certifications = []Certification{}
	}
}
