// Package editor implements the per-section drafts behind the admin pages.
//
// An editor copies its section out of the content store when opened, takes
// field-level edits on that private draft, and writes the whole draft back
// only on Save. Nothing is saved automatically; opening the section again
// discards the draft.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownGroup    = errors.New("unknown group")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotSupported    = errors.New("operation not supported by this editor")
)

// Store is the part of the content store the editors use.
type Store interface {
	Section(section portfolio.Section) (any, error)
	UpdateSection(ctx context.Context, section portfolio.Section, value any) error
}

// Field addresses one input of a section form. Group selects a sub-list
// ("bio", "frontend", "education", ...) where a section has several, Index
// the row within a list, and Name the input.
type Field struct {
	Group string
	Index int
	Name  string
}

func (f Field) String() string {
	if f.Group == "" {
		return fmt.Sprintf("%s[%d]", f.Name, f.Index)
	}
	return fmt.Sprintf("%s[%d].%s", f.Group, f.Index, f.Name)
}

// Editor is a mutable draft of one section.
type Editor interface {
	Section() portfolio.Section
	// Draft returns a copy of the current draft value.
	Draft() any
	// Set applies one form input to the draft. Numeric inputs are clamped to
	// the field's range and list inputs are split on commas.
	Set(f Field, value string) error
	// Add appends a blank row to group and returns its index.
	Add(group string) (int, error)
	// Delete removes the row at index from group.
	Delete(group string, index int) error
	// Save writes the whole draft to the store. The draft is kept on failure
	// so the save can be retried.
	Save(ctx context.Context) error
}

// Open returns an editor for section whose draft is a copy of the store's
// current value.
func Open(store Store, section portfolio.Section) (Editor, error) {
	value, err := store.Section(section)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case portfolio.Hero:
		return &HeroEditor{draft: draft[portfolio.Hero]{store: store, section: section, value: v}}, nil
	case portfolio.About:
		return &AboutEditor{draft: draft[portfolio.About]{store: store, section: section, value: v}}, nil
	case []portfolio.Value:
		return &ValuesEditor{draft: draft[[]portfolio.Value]{store: store, section: section, value: v}}, nil
	case []portfolio.Certification:
		return &CertificationsEditor{draft: draft[[]portfolio.Certification]{store: store, section: section, value: v}}, nil
	case []portfolio.Project:
		return &ProjectsEditor{draft: draft[[]portfolio.Project]{store: store, section: section, value: v}, editing: -1}, nil
	case portfolio.Skills:
		return &SkillsEditor{draft: draft[portfolio.Skills]{store: store, section: section, value: v}}, nil
	case []portfolio.Testimonial:
		return &TestimonialsEditor{draft: draft[[]portfolio.Testimonial]{store: store, section: section, value: v}}, nil
	case []portfolio.Stat:
		return &StatsEditor{draft: draft[[]portfolio.Stat]{store: store, section: section, value: v}}, nil
	case portfolio.Contact:
		return &ContactEditor{draft: draft[portfolio.Contact]{store: store, section: section, value: v}}, nil
	}
	return nil, fmt.Errorf("%w: no editor for %s", portfolio.ErrUnknownSection, section)
}

// draft holds the state shared by every editor.
type draft[T any] struct {
	store   Store
	section portfolio.Section
	value   T
}

func (d *draft[T]) Section() portfolio.Section {
	return d.section
}

func (d *draft[T]) Save(ctx context.Context) error {
	return d.store.UpdateSection(ctx, d.section, d.value)
}

func unknownField(f Field) error {
	return fmt.Errorf("%w: %s", ErrUnknownField, f)
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, length)
	}
	return nil
}

func removeAt[T any](s []T, index int) ([]T, error) {
	if err := checkIndex(index, len(s)); err != nil {
		return s, err
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:index]...)
	return append(out, s[index+1:]...), nil
}

func copyRows[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
