package editor

import (
	"context"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

// NewProject is the placeholder appended by ProjectsEditor.Add.
func NewProject() portfolio.Project {
	return portfolio.Project{
		Title:       "New Project",
		Description: "Project description",
		Icon:        "🆕",
		Tags:        []string{"React"},
		LiveURL:     "#",
		GithubURL:   "#",
		Featured:    false,
		Type:        "Personal",
		Highlights:  []string{"Feature 1"},
	}
}

// ProjectsEditor edits the project list. It remembers which project is
// expanded for editing; -1 means none.
type ProjectsEditor struct {
	draft[[]portfolio.Project]
	editing int
}

func (e *ProjectsEditor) Draft() any {
	return portfolio.CloneProjects(e.value)
}

// Editing returns the index of the project open for editing, or -1.
func (e *ProjectsEditor) Editing() int {
	return e.editing
}

// Toggle opens project index for editing, or closes it if it is already open.
func (e *ProjectsEditor) Toggle(index int) error {
	if err := checkIndex(index, len(e.value)); err != nil {
		return err
	}
	if e.editing == index {
		e.editing = -1
	} else {
		e.editing = index
	}
	return nil
}

func (e *ProjectsEditor) Set(f Field, value string) error {
	if err := checkIndex(f.Index, len(e.value)); err != nil {
		return err
	}
	p := &e.value[f.Index]
	switch f.Name {
	case "title":
		p.Title = value
	case "description":
		p.Description = value
	case "icon":
		p.Icon = value
	case "tags":
		p.Tags = SplitList(value)
	case "liveUrl":
		p.LiveURL = value
	case "githubUrl":
		p.GithubURL = value
	case "featured":
		p.Featured = ParseBool(value)
	case "type":
		p.Type = value
	case "highlights":
		p.Highlights = SplitList(value)
	default:
		return unknownField(f)
	}
	return nil
}

// Add appends the placeholder project at the end of the list and opens it
// for editing.
func (e *ProjectsEditor) Add(string) (int, error) {
	e.value = append(e.value, NewProject())
	e.editing = len(e.value) - 1
	return e.editing, nil
}

// Delete removes the project at index. Later projects shift down by one and
// the editing selection is cleared.
func (e *ProjectsEditor) Delete(_ string, index int) error {
	rows, err := removeAt(e.value, index)
	if err != nil {
		return err
	}
	e.value = rows
	e.editing = -1
	return nil
}

// Save writes the list and closes the open project.
func (e *ProjectsEditor) Save(ctx context.Context) error {
	if err := e.draft.Save(ctx); err != nil {
		return err
	}
	e.editing = -1
	return nil
}
