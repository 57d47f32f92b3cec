package resume

import (
	"reflect"

	"github.com/google/uuid"
)

// Content is the structured resume payload stored in the Resume Content
// column (JSONB). Section entries render in array order; there is no
// separate rank field.
type Content struct {
	PersonalInfo PersonalInfo    `json:"personalInfo"`
	Experience   []Experience    `json:"experience"`
	Education    []Education     `json:"education"`
	Skills       []SkillCategory `json:"skills"`
	Projects     []Project       `json:"projects"`
}

// PersonalInfo holds the contact header. Only FullName and Email are
// expected by convention; nothing is enforced server-side.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Summary  string `json:"summary"`
}

// Experience is one work entry. When Current is true the EndDate is
// ignored and the range renders as "... – Present".
type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Education is one education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa"`
}

// SkillCategory groups skill items under a named category.
type SkillCategory struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Project is one project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Highlights   []string `json:"highlights"`
}

// Clone deep-copies the payload so callers can hand out snapshots without
// torn reads from later mutations.
func (c Content) Clone() Content {
	out := c

	if c.Experience != nil {
		out.Experience = make([]Experience, len(c.Experience))
		for i, e := range c.Experience {
			e.Highlights = cloneStrings(e.Highlights)
			out.Experience[i] = e
		}
	}
	if c.Education != nil {
		out.Education = make([]Education, len(c.Education))
		copy(out.Education, c.Education)
	}
	if c.Skills != nil {
		out.Skills = make([]SkillCategory, len(c.Skills))
		for i, s := range c.Skills {
			s.Items = cloneStrings(s.Items)
			out.Skills[i] = s
		}
	}
	if c.Projects != nil {
		out.Projects = make([]Project, len(c.Projects))
		for i, p := range c.Projects {
			p.Technologies = cloneStrings(p.Technologies)
			p.Highlights = cloneStrings(p.Highlights)
			out.Projects[i] = p
		}
	}

	return out
}

// Equal reports whether two payloads carry identical data. Used by the
// editor session to avoid spurious dirtying.
func (c Content) Equal(other Content) bool {
	return reflect.DeepEqual(c, other)
}

// EnsureIDs backfills missing entry IDs. Entry identity within a section is
// the client-generated ID; entries created outside the browser (admin CLI,
// tests) get one here.
func (c *Content) EnsureIDs() {
	for i := range c.Experience {
		if c.Experience[i].ID == "" {
			c.Experience[i].ID = uuid.NewString()
		}
	}
	for i := range c.Education {
		if c.Education[i].ID == "" {
			c.Education[i].ID = uuid.NewString()
		}
	}
	for i := range c.Skills {
		if c.Skills[i].ID == "" {
			c.Skills[i].ID = uuid.NewString()
		}
	}
	for i := range c.Projects {
		if c.Projects[i].ID == "" {
			c.Projects[i].ID = uuid.NewString()
		}
	}
}

// IsZero reports whether every section is empty.
func (c Content) IsZero() bool {
	return c.PersonalInfo == (PersonalInfo{}) &&
		len(c.Experience) == 0 &&
		len(c.Education) == 0 &&
		len(c.Skills) == 0 &&
		len(c.Projects) == 0
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
