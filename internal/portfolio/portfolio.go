// Package portfolio defines the content document rendered by the public page
// and rewritten section by section from the admin editor.
package portfolio

// Hero is the headline block at the top of the page.
type Hero struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Company     string `json:"company"`
	Description string `json:"description"`
	GithubURL   string `json:"githubUrl"`
	LinkedinURL string `json:"linkedinUrl"`
	Email       string `json:"email"`
}

type About struct {
	Bio       []string `json:"bio"`
	Languages []string `json:"languages"`
}

type Value struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
}

// Project is one card in the projects grid. Type is a free-form label such as
// "Professional", "Academic" or "Personal".
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Tags        []string `json:"tags"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   string   `json:"githubUrl"`
	Featured    bool     `json:"featured"`
	Type        string   `json:"type"`
	Highlights  []string `json:"highlights"`
}

// Skill level is a percentage. The document does not enforce the 0-100
// bound; editors clamp on input.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Grade       string `json:"grade"`
}

type Skills struct {
	Frontend   []Skill      `json:"frontend"`
	Backend    []Skill      `json:"backend"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// Testimonial rating is expected in 1-5; like Skill.Level it is clamped by
// the editor, not here.
type Testimonial struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
	Rating   int    `json:"rating"`
	Content  string `json:"content"`
}

// Stat is a display pair such as {"50+", "Projects Completed"}.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Contact struct {
	Email    string `json:"email"`
	Location string `json:"location"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
}

// Data is the whole content document. Every section is always present and
// slices keep display order.
type Data struct {
	Hero           Hero            `json:"hero"`
	About          About           `json:"about"`
	Values         []Value         `json:"values"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	Skills         Skills          `json:"skills"`
	Testimonials   []Testimonial   `json:"testimonials"`
	Stats          []Stat          `json:"stats"`
	Contact        Contact         `json:"contact"`
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	out := d
	out.About = d.About.Clone()
	out.Values = cloneSlice(d.Values)
	out.Certifications = cloneSlice(d.Certifications)
	out.Projects = CloneProjects(d.Projects)
	out.Skills = d.Skills.Clone()
	out.Testimonials = cloneSlice(d.Testimonials)
	out.Stats = cloneSlice(d.Stats)
	return out
}

func (a About) Clone() About {
	return About{
		Bio:       cloneSlice(a.Bio),
		Languages: cloneSlice(a.Languages),
	}
}

func (p Project) Clone() Project {
	out := p
	out.Tags = cloneSlice(p.Tags)
	out.Highlights = cloneSlice(p.Highlights)
	return out
}

func CloneProjects(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

func (s Skills) Clone() Skills {
	return Skills{
		Frontend:   cloneSlice(s.Frontend),
		Backend:    cloneSlice(s.Backend),
		Experience: cloneSlice(s.Experience),
		Education:  cloneSlice(s.Education),
	}
}

// FeaturedProjects returns the featured projects in document order.
func (d Data) FeaturedProjects() []Project {
	var out []Project
	for _, p := range d.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
