// Package content loads the static profile documents: one language-neutral
// base record and one overlay per supported locale.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/Zachkp/portfolio/internal/locale"
	json "github.com/goccy/go-json"
)

//go:embed data
var embedded embed.FS

const (
	baseFile   = "base.json"
	localesDir = "locales"
)

// Store holds the loaded documents. It is never mutated after Load returns;
// callers must treat the records it hands out as read-only.
type Store struct {
	base     BaseProfile
	overlays map[locale.Locale]LocaleOverlay
}

// Load reads base.json and locales/<code>.json for every supported locale
// from fsys, validating each document against its schema.
func Load(fsys fs.FS) (*Store, error) {
	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}

	s := &Store{overlays: make(map[locale.Locale]LocaleOverlay)}
	if err := readDocument(fsys, baseFile, schemas.base, &s.base); err != nil {
		return nil, err
	}
	for _, l := range locale.Supported() {
		var ov LocaleOverlay
		name := path.Join(localesDir, l.String()+".json")
		if err := readDocument(fsys, name, schemas.overlay, &ov); err != nil {
			return nil, err
		}
		s.overlays[l] = ov
	}
	return s, nil
}

var loadDefault = sync.OnceValues(func() (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("content: embedded data: %w", err)
	}
	return Load(sub)
})

// LoadDefault loads the content compiled into the binary. Only the first
// call reads; later calls return the same store (or the same error).
func LoadDefault() (*Store, error) {
	return loadDefault()
}

// Base returns the language-neutral profile.
func (s *Store) Base() BaseProfile { return s.base }

// Overlay returns the overlay for l.
func (s *Store) Overlay(l locale.Locale) (LocaleOverlay, bool) {
	ov, ok := s.overlays[l]
	return ov, ok
}

// OrphanOverlayIDs lists overlay ids for l that match no base record. They
// are ignored during composition.
func (s *Store) OrphanOverlayIDs(l locale.Locale) []string {
	ov, ok := s.overlays[l]
	if !ok {
		return nil
	}
	known := make(map[string]struct{})
	for _, e := range s.base.Experience {
		known["experience/"+e.ID] = struct{}{}
	}
	for _, e := range s.base.Education {
		known["education/"+e.ID] = struct{}{}
	}
	for _, p := range s.base.Projects {
		known["projects/"+p.ID] = struct{}{}
	}
	for _, r := range s.base.References {
		known["references/"+r.ID] = struct{}{}
	}

	var orphans []string
	check := func(key string) {
		if _, ok := known[key]; !ok {
			orphans = append(orphans, key)
		}
	}
	for _, e := range ov.Experience {
		check("experience/" + e.ID)
	}
	for _, e := range ov.Education {
		check("education/" + e.ID)
	}
	for _, p := range ov.Projects {
		check("projects/" + p.ID)
	}
	for _, r := range ov.References {
		check("references/" + r.ID)
	}
	return orphans
}

func readDocument(fsys fs.FS, name string, schema documentSchema, dst any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return apperr.Data(err, "read %s", name)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return apperr.Data(err, "decode %s", name)
	}
	if err := schema.Validate(doc); err != nil {
		return apperr.Data(err, "invalid %s", name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperr.Data(err, "decode %s", name)
	}
	return nil
}
