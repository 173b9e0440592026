// Package profile composes the localized profile view from the base record
// and a locale overlay, and derives the summary statistics shown with it.
package profile

import (
	"slices"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/locale"
)

// ComposedProfile is the base profile with one locale's overlay applied.
// It shares no memory with the store it was built from.
type ComposedProfile struct {
	Locale locale.Locale `json:"locale"`
	content.BaseProfile
}

// ProfileComposer builds composed profiles by locale code.
type ProfileComposer interface {
	Compose(code string) (*ComposedProfile, error)
}

// Composer merges base content with locale overlays on every call.
type Composer struct {
	store *content.Store
}

func NewComposer(store *content.Store) *Composer {
	return &Composer{store: store}
}

// Compose returns the profile localized for code. Unsupported codes fail
// with a configuration error.
func (c *Composer) Compose(code string) (*ComposedProfile, error) {
	l, err := locale.Parse(code)
	if err != nil {
		return nil, err
	}
	ov, ok := c.store.Overlay(l)
	if !ok {
		return nil, apperr.Data(nil, "no overlay loaded for locale %q", l)
	}
	return compose(c.store.Base(), ov, l), nil
}

func compose(base content.BaseProfile, ov content.LocaleOverlay, l locale.Locale) *ComposedProfile {
	p := &ComposedProfile{Locale: l, BaseProfile: cloneBase(base)}
	p.Name = ov.Name
	p.Title = ov.Title
	p.Summary = ov.Summary

	exp := index(ov.Experience, func(o content.ExperienceOverlay) string { return o.ID })
	for i := range p.Experience {
		if o, ok := exp[p.Experience[i].ID]; ok {
			applyExperience(&p.Experience[i], o)
		}
	}
	edu := index(ov.Education, func(o content.EducationOverlay) string { return o.ID })
	for i := range p.Education {
		if o, ok := edu[p.Education[i].ID]; ok {
			applyEducation(&p.Education[i], o)
		}
	}
	prj := index(ov.Projects, func(o content.ProjectOverlay) string { return o.ID })
	for i := range p.Projects {
		if o, ok := prj[p.Projects[i].ID]; ok {
			applyProject(&p.Projects[i], o)
		}
	}
	refs := index(ov.References, func(o content.ReferenceOverlay) string { return o.ID })
	for i := range p.References {
		if o, ok := refs[p.References[i].ID]; ok {
			applyReference(&p.References[i], o)
		}
	}
	return p
}

// index keys overlay records by id. The first record for an id wins.
func index[T any](records []T, id func(T) string) map[string]T {
	m := make(map[string]T, len(records))
	for _, r := range records {
		k := id(r)
		if _, dup := m[k]; !dup {
			m[k] = r
		}
	}
	return m
}

func set(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyExperience(e *content.Experience, o content.ExperienceOverlay) {
	set(&e.Title, o.Title)
	set(&e.Description, o.Description)
	if o.Achievements != nil {
		e.Achievements = slices.Clone(o.Achievements)
	}
}

func applyEducation(e *content.Education, o content.EducationOverlay) {
	set(&e.Degree, o.Degree)
	set(&e.Field, o.Field)
	set(&e.Description, o.Description)
}

func applyProject(p *content.Project, o content.ProjectOverlay) {
	set(&p.Title, o.Title)
	set(&p.Description, o.Description)
	set(&p.LongDescription, o.LongDescription)
}

func applyReference(r *content.Reference, o content.ReferenceOverlay) {
	set(&r.Title, o.Title)
	set(&r.Company, o.Company)
	set(&r.Relationship, o.Relationship)
	set(&r.Recommendation, o.Recommendation)
}

// Clone returns a deep copy of p.
func (p *ComposedProfile) Clone() *ComposedProfile {
	if p == nil {
		return nil
	}
	return &ComposedProfile{Locale: p.Locale, BaseProfile: cloneBase(p.BaseProfile)}
}

func cloneBase(b content.BaseProfile) content.BaseProfile {
	out := b
	out.Experience = slices.Clone(b.Experience)
	for i := range out.Experience {
		out.Experience[i].Achievements = slices.Clone(b.Experience[i].Achievements)
		out.Experience[i].Technologies = slices.Clone(b.Experience[i].Technologies)
	}
	out.Education = slices.Clone(b.Education)
	out.Certificates = slices.Clone(b.Certificates)
	out.Projects = slices.Clone(b.Projects)
	for i := range out.Projects {
		out.Projects[i].Tech = slices.Clone(b.Projects[i].Tech)
	}
	out.Skills = content.Skills{
		Frontend: slices.Clone(b.Skills.Frontend),
		Backend:  slices.Clone(b.Skills.Backend),
		Database: slices.Clone(b.Skills.Database),
		Tools:    slices.Clone(b.Skills.Tools),
	}
	out.Languages = slices.Clone(b.Languages)
	out.References = slices.Clone(b.References)
	return out
}
