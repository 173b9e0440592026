package profile

import (
	"cmp"
	"slices"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/locale"
	"github.com/Zachkp/portfolio/internal/textutil"
)

// FeaturedProjects returns the featured projects in profile order.
func FeaturedProjects(p *ComposedProfile) []content.Project {
	out := make([]content.Project, 0, len(p.Projects))
	for _, pr := range p.Projects {
		if pr.Featured {
			out = append(out, pr)
		}
	}
	return out
}

// CertificatesNewestFirst returns a copy of the certificates sorted by date,
// most recent first. YYYY-MM tokens sort lexically.
func CertificatesNewestFirst(p *ComposedProfile) []content.Certificate {
	out := slices.Clone(p.Certificates)
	slices.SortStableFunc(out, func(a, b content.Certificate) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out
}

// TimelineEntry is an experience record with its display labels.
type TimelineEntry struct {
	content.Experience
	Period   string `json:"period"`
	Duration string `json:"duration"`
}

// Timeline labels each experience record for p's locale.
func Timeline(p *ComposedProfile, now time.Time) []TimelineEntry {
	out := make([]TimelineEntry, 0, len(p.Experience))
	for _, e := range p.Experience {
		d, err := locale.DurationBetween(e.From, e.To, p.Locale, now)
		if err != nil {
			d = ""
		}
		out = append(out, TimelineEntry{
			Experience: e,
			Period:     locale.FormatDate(e.From, p.Locale) + " - " + locale.FormatDate(e.To, p.Locale),
			Duration:   d,
		})
	}
	return out
}

// ReferenceCard is a reference with the avatar initials shown beside it.
type ReferenceCard struct {
	content.Reference
	Initials string `json:"initials"`
	Since    string `json:"since,omitempty"`
}

func ReferenceCards(p *ComposedProfile) []ReferenceCard {
	out := make([]ReferenceCard, 0, len(p.References))
	for _, r := range p.References {
		card := ReferenceCard{Reference: r, Initials: textutil.Initials(r.Name)}
		if r.Date != "" {
			card.Since = locale.FormatDate(r.Date, p.Locale)
		}
		out = append(out, card)
	}
	return out
}
