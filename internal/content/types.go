package content

// Experience is one job in the work history.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	From         string   `json:"from"` // YYYY-MM
	To           string   `json:"to"`   // YYYY-MM or "present"
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	LogoPath     string   `json:"logoPath,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description,omitempty"`
	LogoPath    string `json:"logoPath,omitempty"`
}

type Certificate struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"` // YYYY-MM
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Tech            []string `json:"tech"`
	Link            string   `json:"link,omitempty"`
	GitHub          string   `json:"github,omitempty"`
	Image           string   `json:"image,omitempty"`
	Featured        bool     `json:"featured"`
}

// Skill is a technology with a self-assessed level between 0 and 100.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Skills struct {
	Frontend []Skill `json:"frontend"`
	Backend  []Skill `json:"backend"`
	Database []Skill `json:"database"`
	Tools    []Skill `json:"tools"`
}

// Language is a spoken language and proficiency.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Reference struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Relationship   string `json:"relationship"`
	Recommendation string `json:"recommendation,omitempty"`
	Date           string `json:"date,omitempty"`
}

type Social struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Dev      string `json:"dev,omitempty"`
}

// BaseProfile is the language-neutral profile record. Its text fields hold
// the source-language copy served when an overlay has no translation.
type BaseProfile struct {
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	Summary      string        `json:"summary"`
	Location     string        `json:"location"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone,omitempty"`
	LinkedIn     string        `json:"linkedin,omitempty"`
	GitHub       string        `json:"github,omitempty"`
	Website      string        `json:"website,omitempty"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Certificates []Certificate `json:"certificates"`
	Projects     []Project     `json:"projects"`
	Skills       Skills        `json:"skills"`
	Languages    []Language    `json:"languages"`
	References   []Reference   `json:"references"`
	Social       Social        `json:"social"`
}

// Overlay records carry only translatable fields. A nil field means the
// overlay has no translation for it.

type ExperienceOverlay struct {
	ID           string   `json:"id"`
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type EducationOverlay struct {
	ID          string  `json:"id"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ProjectOverlay struct {
	ID              string  `json:"id"`
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	LongDescription *string `json:"longDescription,omitempty"`
}

type ReferenceOverlay struct {
	ID             string  `json:"id"`
	Title          *string `json:"title,omitempty"`
	Company        *string `json:"company,omitempty"`
	Relationship   *string `json:"relationship,omitempty"`
	Recommendation *string `json:"recommendation,omitempty"`
}

// LocaleOverlay is the per-language display text keyed by sub-entity id.
// Name, Title and Summary are always present.
type LocaleOverlay struct {
	Name       string              `json:"name"`
	Title      string              `json:"title"`
	Summary    string              `json:"summary"`
	Experience []ExperienceOverlay `json:"experience"`
	Education  []EducationOverlay  `json:"education"`
	Projects   []ProjectOverlay    `json:"projects"`
	References []ReferenceOverlay  `json:"references"`
}
