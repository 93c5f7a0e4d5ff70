package editor

import (
	"github.com/Zachkp/portfolio/internal/portfolio"
)

type HeroEditor struct {
	draft[portfolio.Hero]
}

func (e *HeroEditor) Draft() any {
	return e.value
}

func (e *HeroEditor) Set(f Field, value string) error {
	h := &e.value
	switch f.Name {
	case "name":
		h.Name = value
	case "tagline":
		h.Tagline = value
	case "company":
		h.Company = value
	case "description":
		h.Description = value
	case "githubUrl":
		h.GithubURL = value
	case "linkedinUrl":
		h.LinkedinURL = value
	case "email":
		h.Email = value
	default:
		return unknownField(f)
	}
	return nil
}

func (e *HeroEditor) Add(string) (int, error) {
	return 0, ErrNotSupported
}

func (e *HeroEditor) Delete(string, int) error {
	return ErrNotSupported
}

// AboutEditor edits bio paragraphs (group "bio") and the comma-separated
// languages input.
type AboutEditor struct {
	draft[portfolio.About]
}

func (e *AboutEditor) Draft() any {
	return e.value.Clone()
}

func (e *AboutEditor) Set(f Field, value string) error {
	switch {
	case f.Group == "" && f.Name == "languages":
		e.value.Languages = SplitList(value)
	case f.Group == "bio" && (f.Name == "" || f.Name == "text"):
		if err := checkIndex(f.Index, len(e.value.Bio)); err != nil {
			return err
		}
		e.value.Bio[f.Index] = value
	default:
		return unknownField(f)
	}
	return nil
}

func (e *AboutEditor) Add(group string) (int, error) {
	if group != "bio" {
		return 0, ErrUnknownGroup
	}
	e.value.Bio = append(e.value.Bio, "")
	return len(e.value.Bio) - 1, nil
}

func (e *AboutEditor) Delete(group string, index int) error {
	if group != "bio" {
		return ErrUnknownGroup
	}
	bio, err := removeAt(e.value.Bio, index)
	if err != nil {
		return err
	}
	e.value.Bio = bio
	return nil
}

type ValuesEditor struct {
	draft[[]portfolio.Value]
}

func (e *ValuesEditor) Draft() any {
	return copyRows(e.value)
}

func (e *ValuesEditor) Set(f Field, value string) error {
	if err := checkIndex(f.Index, len(e.value)); err != nil {
		return err
	}
	rows := e.value
	switch f.Name {
	case "title":
		rows[f.Index].Title = value
	case "description":
		rows[f.Index].Description = value
	default:
		return unknownField(f)
	}
	return nil
}

func (e *ValuesEditor) Add(string) (int, error) {
	e.value = append(e.value, portfolio.Value{Title: "New Value"})
	return len(e.value) - 1, nil
}

func (e *ValuesEditor) Delete(_ string, index int) error {
	rows, err := removeAt(e.value, index)
	if err != nil {
		return err
	}
	e.value = rows
	return nil
}

type CertificationsEditor struct {
	draft[[]portfolio.Certification]
}

func (e *CertificationsEditor) Draft() any {
	return copyRows(e.value)
}

func (e *CertificationsEditor) Set(f Field, value string) error {
	if err := checkIndex(f.Index, len(e.value)); err != nil {
		return err
	}
	rows := e.value
	switch f.Name {
	case "name":
		rows[f.Index].Name = value
	case "issuer":
		rows[f.Index].Issuer = value
	default:
		return unknownField(f)
	}
	return nil
}

func (e *CertificationsEditor) Add(string) (int, error) {
	e.value = append(e.value, portfolio.Certification{Name: "New Certification"})
	return len(e.value) - 1, nil
}

func (e *CertificationsEditor) Delete(_ string, index int) error {
	rows, err := removeAt(e.value, index)
	if err != nil {
		return err
	}
	e.value = rows
	return nil
}

// TestimonialsEditor clamps ratings to [MinRating, MaxRating].
type TestimonialsEditor struct {
	draft[[]portfolio.Testimonial]
}

func (e *TestimonialsEditor) Draft() any {
	return copyRows(e.value)
}

func (e *TestimonialsEditor) Set(f Field, value string) error {
	if err := checkIndex(f.Index, len(e.value)); err != nil {
		return err
	}
	rows := e.value
	t := &rows[f.Index]
	switch f.Name {
	case "name":
		t.Name = value
	case "role":
		t.Role = value
	case "initials":
		t.Initials = value
	case "rating":
		t.Rating = Clamp(ParseLeadingInt(value), MinRating, MaxRating)
	case "content":
		t.Content = value
	default:
		return unknownField(f)
	}
	return nil
}

func (e *TestimonialsEditor) Add(string) (int, error) {
	e.value = append(e.value, portfolio.Testimonial{Rating: MaxRating})
	return len(e.value) - 1, nil
}

func (e *TestimonialsEditor) Delete(_ string, index int) error {
	rows, err := removeAt(e.value, index)
	if err != nil {
		return err
	}
	e.value = rows
	return nil
}

type StatsEditor struct {
	draft[[]portfolio.Stat]
}

func (e *StatsEditor) Draft() any {
	return copyRows(e.value)
}

func (e *StatsEditor) Set(f Field, value string) error {
	if err := checkIndex(f.Index, len(e.value)); err != nil {
		return err
	}
	rows := e.value
	switch f.Name {
	case "value":
		rows[f.Index].Value = value
	case "label":
		rows[f.Index].Label = value
	default:
		return unknownField(f)
	}
	return nil
}

func (e *StatsEditor) Add(string) (int, error) {
	e.value = append(e.value, portfolio.Stat{})
	return len(e.value) - 1, nil
}

func (e *StatsEditor) Delete(_ string, index int) error {
	rows, err := removeAt(e.value, index)
	if err != nil {
		return err
	}
	e.value = rows
	return nil
}

type ContactEditor struct {
	draft[portfolio.Contact]
}

func (e *ContactEditor) Draft() any {
	return e.value
}

func (e *ContactEditor) Set(f Field, value string) error {
	c := &e.value
	switch f.Name {
	case "email":
		c.Email = value
	case "location":
		c.Location = value
	case "github":
		c.Github = value
	case "linkedin":
		c.Linkedin = value
	default:
		return unknownField(f)
	}
	return nil
}

func (e *ContactEditor) Add(string) (int, error) {
	return 0, ErrNotSupported
}

func (e *ContactEditor) Delete(string, int) error {
	return ErrNotSupported
}
