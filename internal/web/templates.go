package web

import (
	"html/template"
	"strings"

	"github.com/Zachkp/portfolio/internal/editor"
	"github.com/Zachkp/portfolio/internal/portfolio"
)

var sectionTitles = map[portfolio.Section]string{
	portfolio.SectionHero:           "Hero",
	portfolio.SectionAbout:          "About",
	portfolio.SectionValues:         "Values",
	portfolio.SectionCertifications: "Certifications",
	portfolio.SectionProjects:       "Projects",
	portfolio.SectionSkills:         "Skills & Experience",
	portfolio.SectionTestimonials:   "Testimonials",
	portfolio.SectionStats:          "Stats",
	portfolio.SectionContact:        "Contact",
}

func sectionTitle(s portfolio.Section) string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}
	return string(s)
}

// input describes one editor form control.
type input struct {
	Kind    string
	Section portfolio.Section
	Group   string
	Index   int
	Name    string
	Label   string
	Value   any
}

// row addresses one list row for the add/delete buttons.
type row struct {
	Section portfolio.Section
	Group   string
	Index   int
}

// absoluteURL adds an https scheme to bare hosts such as "github.com/user".
func absoluteURL(link string) string {
	link = strings.TrimSpace(link)
	if link == "" || strings.Contains(link, "://") || strings.HasPrefix(link, "mailto:") {
		return link
	}
	return "https://" + strings.TrimPrefix(link, "//")
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"join":         editor.JoinList,
		"sectionTitle": sectionTitle,
		"absoluteURL":  absoluteURL,
		"stars": func(rating int) []int {
			n := editor.Clamp(rating, 0, editor.MaxRating)
			return make([]int, n)
		},
		"input": func(kind string, section portfolio.Section, group string, index int, name, label string, value any) input {
			return input{Kind: kind, Section: section, Group: group, Index: index, Name: name, Label: label, Value: value}
		},
		"row": func(section portfolio.Section, group string, index int) row {
			return row{Section: section, Group: group, Index: index}
		},
		// page wraps a title for the shared head partial.
		"page": func(title string) map[string]any {
			return map[string]any{"title": title}
		},
	}
}
