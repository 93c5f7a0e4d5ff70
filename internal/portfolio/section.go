package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Section names one top-level field of Data. The string value matches the
// JSON key used when the document is persisted.
type Section string

const (
	SectionHero           Section = "hero"
	SectionAbout          Section = "about"
	SectionValues         Section = "values"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
	SectionSkills         Section = "skills"
	SectionTestimonials   Section = "testimonials"
	SectionStats          Section = "stats"
	SectionContact        Section = "contact"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrSectionType    = errors.New("value does not match section type")
)

var sections = []Section{
	SectionHero,
	SectionAbout,
	SectionValues,
	SectionCertifications,
	SectionProjects,
	SectionSkills,
	SectionTestimonials,
	SectionStats,
	SectionContact,
}

// Sections returns every section in display order.
func Sections() []Section {
	return cloneSlice(sections)
}

// ParseSection maps a section name to its key.
func ParseSection(name string) (Section, error) {
	for _, s := range sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

func (s Section) String() string {
	return string(s)
}

// Get returns a deep copy of section s of d.
func (d Data) Get(s Section) (any, error) {
	switch s {
	case SectionHero:
		return d.Hero, nil
	case SectionAbout:
		return d.About.Clone(), nil
	case SectionValues:
		return cloneSlice(d.Values), nil
	case SectionCertifications:
		return cloneSlice(d.Certifications), nil
	case SectionProjects:
		return CloneProjects(d.Projects), nil
	case SectionSkills:
		return d.Skills.Clone(), nil
	case SectionTestimonials:
		return cloneSlice(d.Testimonials), nil
	case SectionStats:
		return cloneSlice(d.Stats), nil
	case SectionContact:
		return d.Contact, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Patch carries a replacement value for any subset of sections. A nil field
// leaves that section untouched; a non-nil field replaces it wholesale.
type Patch struct {
	Hero           *Hero            `json:"hero,omitempty"`
	About          *About           `json:"about,omitempty"`
	Values         *[]Value         `json:"values,omitempty"`
	Certifications *[]Certification `json:"certifications,omitempty"`
	Projects       *[]Project       `json:"projects,omitempty"`
	Skills         *Skills          `json:"skills,omitempty"`
	Testimonials   *[]Testimonial   `json:"testimonials,omitempty"`
	Stats          *[]Stat          `json:"stats,omitempty"`
	Contact        *Contact         `json:"contact,omitempty"`
}

// Set stores value as the replacement for section s. Both T and *T are
// accepted for the section's type T.
func (p *Patch) Set(s Section, value any) error {
	var ok bool
	switch s {
	case SectionHero:
		p.Hero, ok = pointerTo[Hero](value)
	case SectionAbout:
		p.About, ok = pointerTo[About](value)
	case SectionValues:
		p.Values, ok = pointerTo[[]Value](value)
	case SectionCertifications:
		p.Certifications, ok = pointerTo[[]Certification](value)
	case SectionProjects:
		p.Projects, ok = pointerTo[[]Project](value)
	case SectionSkills:
		p.Skills, ok = pointerTo[Skills](value)
	case SectionTestimonials:
		p.Testimonials, ok = pointerTo[[]Testimonial](value)
	case SectionStats:
		p.Stats, ok = pointerTo[[]Stat](value)
	case SectionContact:
		p.Contact, ok = pointerTo[Contact](value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
	if !ok {
		return fmt.Errorf("%w: %s got %T", ErrSectionType, s, value)
	}
	return nil
}

// Decode unmarshals raw as the value of section s and stores it in p. A JSON
// null is rejected so that a section can never become absent.
func (p *Patch) Decode(s Section, raw json.RawMessage) error {
	if string(raw) == "null" {
		return fmt.Errorf("%w: %s is null", ErrSectionType, s)
	}
	var err error
	switch s {
	case SectionHero:
		p.Hero, err = decodeInto[Hero](raw)
	case SectionAbout:
		p.About, err = decodeInto[About](raw)
	case SectionValues:
		p.Values, err = decodeInto[[]Value](raw)
	case SectionCertifications:
		p.Certifications, err = decodeInto[[]Certification](raw)
	case SectionProjects:
		p.Projects, err = decodeInto[[]Project](raw)
	case SectionSkills:
		p.Skills, err = decodeInto[Skills](raw)
	case SectionTestimonials:
		p.Testimonials, err = decodeInto[[]Testimonial](raw)
	case SectionStats:
		p.Stats, err = decodeInto[[]Stat](raw)
	case SectionContact:
		p.Contact, err = decodeInto[Contact](raw)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSectionType, s, err)
	}
	return nil
}

// Empty reports whether p replaces nothing.
func (p Patch) Empty() bool {
	return p.Hero == nil && p.About == nil && p.Values == nil &&
		p.Certifications == nil && p.Projects == nil && p.Skills == nil &&
		p.Testimonials == nil && p.Stats == nil && p.Contact == nil
}

// Apply returns d with every section present in p replaced by a deep copy
// of p's value. A nil list section becomes an empty list, never null.
func (p Patch) Apply(d Data) Data {
	if p.Hero != nil {
		d.Hero = *p.Hero
	}
	if p.About != nil {
		d.About = p.About.Clone()
	}
	if p.Values != nil {
		d.Values = nonNil(cloneSlice(*p.Values))
	}
	if p.Certifications != nil {
		d.Certifications = nonNil(cloneSlice(*p.Certifications))
	}
	if p.Projects != nil {
		d.Projects = nonNil(CloneProjects(*p.Projects))
	}
	if p.Skills != nil {
		d.Skills = p.Skills.Clone()
	}
	if p.Testimonials != nil {
		d.Testimonials = nonNil(cloneSlice(*p.Testimonials))
	}
	if p.Stats != nil {
		d.Stats = nonNil(cloneSlice(*p.Stats))
	}
	if p.Contact != nil {
		d.Contact = *p.Contact
	}
	return d
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func pointerTo[T any](value any) (*T, bool) {
	switch v := value.(type) {
	case T:
		return &v, true
	case *T:
		if v == nil {
			return nil, false
		}
		c := *v
		return &c, true
	}
	return nil, false
}

func decodeInto[T any](raw json.RawMessage) (*T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
