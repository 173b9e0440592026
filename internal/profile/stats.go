package profile

import (
	"time"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/Zachkp/portfolio/internal/locale"
)

// Stats are the counters displayed next to the profile summary.
type Stats struct {
	YearsOfExperience  int `json:"yearsOfExperience"`
	ProjectsCompleted  int `json:"projectsCompleted"`
	CertificatesEarned int `json:"certificatesEarned"`
	TechnologiesUsed   int `json:"technologiesUsed"`
}

// ComputeStats derives Stats from p as of now.
//
// YearsOfExperience counts whole years since the earliest experience start
// and is 0 when there is no experience. TechnologiesUsed counts skill entries
// across all four categories; a technology listed in two categories counts
// twice.
func ComputeStats(p *ComposedProfile, now time.Time) (Stats, error) {
	if p == nil {
		return Stats{}, apperr.Data(nil, "no profile to compute stats from")
	}
	years, err := yearsSinceEarliest(p, now)
	if err != nil {
		return Stats{}, err
	}
	s := p.Skills
	return Stats{
		YearsOfExperience:  years,
		ProjectsCompleted:  len(p.Projects),
		CertificatesEarned: len(p.Certificates),
		TechnologiesUsed:   len(s.Frontend) + len(s.Backend) + len(s.Database) + len(s.Tools),
	}, nil
}

func yearsSinceEarliest(p *ComposedProfile, now time.Time) (int, error) {
	if len(p.Experience) == 0 {
		return 0, nil
	}

	// Records sharing the earliest start yield the same count, so the first wins.
	ey, em := 0, 0
	for i, e := range p.Experience {
		y, m, err := locale.ParseMonth(e.From, now)
		if err != nil {
			return 0, apperr.Data(err, "experience %q", e.ID)
		}
		if i == 0 || y < ey || (y == ey && m < em) {
			ey, em = y, m
		}
	}

	years := now.Year() - ey
	if int(now.Month()) < em {
		years--
	}
	if years < 0 {
		return 0, nil
	}
	return years, nil
}

// Calculator computes Stats against a clock.
type Calculator struct {
	Now func() time.Time
}

func NewCalculator() *Calculator {
	return &Calculator{Now: time.Now}
}

func (c *Calculator) Compute(p *ComposedProfile) (Stats, error) {
	now := time.Now
	if c != nil && c.Now != nil {
		now = c.Now
	}
	return ComputeStats(p, now())
}
