package profile

import (
	"testing"
	"testing/fstest"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = `{
  "name": "Ada Lovelace", "title": "Dev", "summary": "base", "email": "ada@example.com",
  "experience": [
    {"id": "e1", "company": "Acme", "title": "Dev", "from": "2019-03", "to": "present",
     "description": "Built things", "achievements": ["a1"], "technologies": ["Go"]},
    {"id": "e2", "company": "Initech", "title": "Intern", "from": "2017-06", "to": "2019-02",
     "description": "Fixed printers", "achievements": ["b1", "b2"], "technologies": ["C"]}
  ],
  "education": [
    {"id": "u1", "institution": "MIT", "degree": "BSc", "field": "CS", "from": "2013-09", "to": "2017-05"}
  ],
  "certificates": [
    {"id": "c1", "name": "Old", "issuer": "X", "date": "2018-01"},
    {"id": "c2", "name": "New", "issuer": "X", "date": "2022-05"},
    {"id": "c3", "name": "Mid", "issuer": "X", "date": "2020-11"}
  ],
  "projects": [
    {"id": "p1", "title": "One", "description": "first", "tech": ["Go"], "featured": true, "link": "https://one"},
    {"id": "p2", "title": "Two", "description": "second", "tech": [], "featured": false},
    {"id": "p3", "title": "Three", "description": "third", "featured": true}
  ],
  "skills": {
    "frontend": [{"name": "a", "level": 10}, {"name": "b", "level": 20}],
    "backend": [{"name": "c", "level": 30}],
    "database": [],
    "tools": [{"name": "d", "level": 40}]
  },
  "references": [
    {"id": "r1", "name": "Grace Hopper", "title": "Admiral", "company": "Navy", "relationship": "Mentor",
     "recommendation": "Great", "date": "2021-04"}
  ]
}`

const testEN = `{
  "name": "Ada Lovelace", "title": "Developer", "summary": "english summary",
  "experience": [{"id": "e1", "title": "Developer"}],
  "projects": [{"id": "p3", "description": "third, translated"}, {"id": "zzz", "title": "orphan"}]
}`

const testES = `{
  "name": "Ada Lovelace", "title": "Desarrolladora", "summary": "resumen",
  "experience": [
    {"id": "e2", "title": "Practicante", "achievements": []},
    {"id": "e1", "title": "Desarrolladora", "description": "Construí cosas", "achievements": ["l1"]},
    {"id": "e1", "title": "duplicate ignored"}
  ],
  "education": [{"id": "u1", "degree": "Licenciatura", "field": "Computación"}],
  "projects": [{"id": "p1", "title": "Uno", "description": "primero", "longDescription": "largo"}],
  "references": [{"id": "r1", "title": "Almirante", "company": "Marina", "relationship": "Mentora", "recommendation": "Genial"}]
}`

func testStore(t *testing.T) *content.Store {
	t.Helper()
	s, err := content.Load(fstest.MapFS{
		"base.json":       {Data: []byte(testBase)},
		"locales/en.json": {Data: []byte(testEN)},
		"locales/es.json": {Data: []byte(testES)},
	})
	require.NoError(t, err)
	return s
}

func ids[T any](records []T, id func(T) string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, id(r))
	}
	return out
}

func TestCompose_OverlayOnlyTitle(t *testing.T) {
	p, err := NewComposer(testStore(t)).Compose("en")
	require.NoError(t, err)

	e1 := p.Experience[0]
	assert.Equal(t, "e1", e1.ID)
	assert.Equal(t, "Developer", e1.Title)
	assert.Equal(t, "2019-03", e1.From)
	assert.Equal(t, "present", e1.To)
	assert.Equal(t, "Built things", e1.Description)
	assert.Equal(t, []string{"a1"}, e1.Achievements)
}

func TestCompose_TopLevelFromOverlay(t *testing.T) {
	p, err := NewComposer(testStore(t)).Compose("es")
	require.NoError(t, err)
	assert.Equal(t, locale.ES, p.Locale)
	assert.Equal(t, "Desarrolladora", p.Title)
	assert.Equal(t, "resumen", p.Summary)
	assert.Equal(t, "ada@example.com", p.Email)
}

func TestCompose_Completeness(t *testing.T) {
	store := testStore(t)
	base := store.Base()
	for _, l := range locale.Supported() {
		p, err := NewComposer(store).Compose(l.String())
		require.NoError(t, err, l)

		expID := func(e content.Experience) string { return e.ID }
		eduID := func(e content.Education) string { return e.ID }
		prjID := func(p content.Project) string { return p.ID }
		refID := func(r content.Reference) string { return r.ID }
		certID := func(c content.Certificate) string { return c.ID }

		assert.Equal(t, ids(base.Experience, expID), ids(p.Experience, expID), l)
		assert.Equal(t, ids(base.Education, eduID), ids(p.Education, eduID), l)
		assert.Equal(t, ids(base.Projects, prjID), ids(p.Projects, prjID), l)
		assert.Equal(t, ids(base.References, refID), ids(p.References, refID), l)
		assert.Equal(t, ids(base.Certificates, certID), ids(p.Certificates, certID), l)
		assert.Equal(t, base.Skills, p.Skills, l)
	}
}

func TestCompose_OverlayPrecedence(t *testing.T) {
	store := testStore(t)
	base := store.Base()
	p, err := NewComposer(store).Compose("es")
	require.NoError(t, err)

	e1 := p.Experience[0]
	assert.Equal(t, "Desarrolladora", e1.Title, "first overlay record for an id wins")
	assert.Equal(t, "Construí cosas", e1.Description)
	assert.Equal(t, []string{"l1"}, e1.Achievements)
	assert.Equal(t, base.Experience[0].Company, e1.Company)
	assert.Equal(t, base.Experience[0].Technologies, e1.Technologies)
	assert.Equal(t, base.Experience[0].From, e1.From)

	e2 := p.Experience[1]
	assert.Equal(t, "Practicante", e2.Title)
	assert.Equal(t, "Fixed printers", e2.Description)
	assert.Empty(t, e2.Achievements, "an empty overlay list is a translation, not an absence")

	u1 := p.Education[0]
	assert.Equal(t, "Licenciatura", u1.Degree)
	assert.Equal(t, "Computación", u1.Field)
	assert.Equal(t, "MIT", u1.Institution)

	p1 := p.Projects[0]
	assert.Equal(t, "Uno", p1.Title)
	assert.Equal(t, "primero", p1.Description)
	assert.Equal(t, "largo", p1.LongDescription)
	assert.Equal(t, "https://one", p1.Link)
	assert.True(t, p1.Featured)

	r1 := p.References[0]
	assert.Equal(t, "Almirante", r1.Title)
	assert.Equal(t, "Marina", r1.Company)
	assert.Equal(t, "Mentora", r1.Relationship)
	assert.Equal(t, "Genial", r1.Recommendation)
	assert.Equal(t, "Grace Hopper", r1.Name)
	assert.Equal(t, "2021-04", r1.Date)
}

func TestCompose_FallbackIsIdentity(t *testing.T) {
	store := testStore(t)
	base := store.Base()
	p, err := NewComposer(store).Compose("en")
	require.NoError(t, err)

	assert.Equal(t, base.Experience[1], p.Experience[1])
	assert.Equal(t, base.Education[0], p.Education[0])
	assert.Equal(t, base.Projects[0], p.Projects[0])
	assert.Equal(t, base.Projects[1], p.Projects[1])
	assert.Equal(t, base.References[0], p.References[0])
}

func TestCompose_UnsupportedLocale(t *testing.T) {
	c := NewComposer(testStore(t))
	for _, code := range []string{"fr", "", "de"} {
		p, err := c.Compose(code)
		require.Error(t, err, code)
		assert.Nil(t, p)
		assert.True(t, apperr.IsKind(err, apperr.KindConfiguration), code)
	}
}

func TestCompose_DoesNotAliasStore(t *testing.T) {
	store := testStore(t)
	c := NewComposer(store)

	p, err := c.Compose("en")
	require.NoError(t, err)
	p.Experience[0].Achievements[0] = "mutated"
	p.Projects[0].Tech[0] = "mutated"
	p.Skills.Frontend[0].Name = "mutated"
	p.Experience = p.Experience[:0]

	again, err := c.Compose("en")
	require.NoError(t, err)
	assert.Equal(t, "a1", again.Experience[0].Achievements[0])
	assert.Equal(t, "Go", again.Projects[0].Tech[0])
	assert.Equal(t, "a", again.Skills.Frontend[0].Name)
	assert.Equal(t, "a1", store.Base().Experience[0].Achievements[0])
}

func TestCompose_DefaultContent(t *testing.T) {
	store, err := content.LoadDefault()
	require.NoError(t, err)
	c := NewComposer(store)
	for _, l := range locale.Supported() {
		p, err := c.Compose(l.String())
		require.NoError(t, err, l)
		assert.Len(t, p.Experience, len(store.Base().Experience))
		assert.NotEmpty(t, p.Summary)
	}
}
