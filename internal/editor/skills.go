package editor

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

// Skill groups.
const (
	GroupFrontend   = "frontend"
	GroupBackend    = "backend"
	GroupExperience = "experience"
	GroupEducation  = "education"
)

// SkillsEditor edits the two skill lists plus experience and education.
// Skill levels are clamped to [MinSkillLevel, MaxSkillLevel] as they are set,
// so a draft can never hold an out-of-range level.
type SkillsEditor struct {
	draft[portfolio.Skills]
}

func (e *SkillsEditor) Draft() any {
	return e.value.Clone()
}

func (e *SkillsEditor) skillList(group string) (*[]portfolio.Skill, bool) {
	switch group {
	case GroupFrontend:
		return &e.value.Frontend, true
	case GroupBackend:
		return &e.value.Backend, true
	}
	return nil, false
}

func (e *SkillsEditor) Set(f Field, value string) error {
	if list, ok := e.skillList(f.Group); ok {
		if err := checkIndex(f.Index, len(*list)); err != nil {
			return err
		}
		s := &(*list)[f.Index]
		switch f.Name {
		case "name":
			s.Name = value
		case "level":
			s.Level = Clamp(ParseLeadingInt(value), MinSkillLevel, MaxSkillLevel)
		default:
			return unknownField(f)
		}
		return nil
	}

	switch f.Group {
	case GroupExperience:
		if err := checkIndex(f.Index, len(e.value.Experience)); err != nil {
			return err
		}
		x := &e.value.Experience[f.Index]
		switch f.Name {
		case "title":
			x.Title = value
		case "company":
			x.Company = value
		case "period":
			x.Period = value
		case "description":
			x.Description = value
		default:
			return unknownField(f)
		}
	case GroupEducation:
		if err := checkIndex(f.Index, len(e.value.Education)); err != nil {
			return err
		}
		x := &e.value.Education[f.Index]
		switch f.Name {
		case "degree":
			x.Degree = value
		case "institution":
			x.Institution = value
		case "period":
			x.Period = value
		case "grade":
			x.Grade = value
		default:
			return unknownField(f)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGroup, f.Group)
	}
	return nil
}

func (e *SkillsEditor) Add(group string) (int, error) {
	if list, ok := e.skillList(group); ok {
		*list = append(*list, portfolio.Skill{})
		return len(*list) - 1, nil
	}
	switch group {
	case GroupExperience:
		e.value.Experience = append(e.value.Experience, portfolio.Experience{})
		return len(e.value.Experience) - 1, nil
	case GroupEducation:
		e.value.Education = append(e.value.Education, portfolio.Education{})
		return len(e.value.Education) - 1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
}

func (e *SkillsEditor) Delete(group string, index int) error {
	var err error
	switch group {
	case GroupFrontend:
		e.value.Frontend, err = removeAt(e.value.Frontend, index)
	case GroupBackend:
		e.value.Backend, err = removeAt(e.value.Backend, index)
	case GroupExperience:
		e.value.Experience, err = removeAt(e.value.Experience, index)
	case GroupEducation:
		e.value.Education, err = removeAt(e.value.Education, index)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	return err
}
