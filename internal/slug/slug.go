// Package slug derives public URL identifiers for CVs and decides how a
// publish transition affects them.
package slug

import (
	"regexp"
	"strings"
)

// SuffixLength is the number of trailing id characters appended to every slug.
const SuffixLength = 8

const fallbackBase = "cv"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lower-cases title, collapses every run of characters outside [a-z0-9]
// into one hyphen, trims hyphens and appends the last SuffixLength characters of id.
func Make(title, id string) string {
	base := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = fallbackBase
	}
	return base + "-" + suffix(id)
}

func suffix(id string) string {
	if len(id) <= SuffixLength {
		return id
	}
	return id[len(id)-SuffixLength:]
}

// Action is what has to happen to the stored slug.
type Action int

const (
	Keep Action = iota
	Assign
	Clear
	Recompute
)

func (a Action) String() string {
	switch a {
	case Assign:
		return "assign"
	case Clear:
		return "clear"
	case Recompute:
		return "recompute"
	default:
		return "keep"
	}
}

// State is the stored publish state of a CV.
type State struct {
	IsPublic bool
	Title    string
	Slug     *string
}

// Request holds the requested publish state; nil fields were not requested.
type Request struct {
	IsPublic *bool
	Title    *string
}

// Decision is the outcome of Plan. Slug is the value to store: nil when the
// slug must be absent.
type Decision struct {
	Action Action
	Slug   *string
}

// Plan applies the publish transition rules for the CV with the given id:
//
//	private -> public            assign from (new title or old title)
//	public  -> private           clear
//	public  -> public, retitled  recompute from new title
//	otherwise                    keep
//
// A public CV that somehow lost its slug gets one assigned instead of keeping nothing.
func Plan(id string, prev State, req Request) Decision {
	nextPublic := prev.IsPublic
	if req.IsPublic != nil {
		nextPublic = *req.IsPublic
	}

	title := prev.Title
	if req.Title != nil {
		title = *req.Title
	}

	switch {
	case !prev.IsPublic && nextPublic:
		s := Make(title, id)
		return Decision{Action: Assign, Slug: &s}
	case prev.IsPublic && !nextPublic:
		return Decision{Action: Clear}
	case prev.IsPublic && nextPublic:
		if req.Title != nil && *req.Title != prev.Title {
			s := Make(*req.Title, id)
			return Decision{Action: Recompute, Slug: &s}
		}
		if prev.Slug == nil || *prev.Slug == "" {
			s := Make(title, id)
			return Decision{Action: Assign, Slug: &s}
		}
		return Decision{Action: Keep, Slug: prev.Slug}
	default:
		return Decision{Action: Keep}
	}
}
