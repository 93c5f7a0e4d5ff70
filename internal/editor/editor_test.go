package editor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/portfolio"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/storage/memory"
)

func newStore(t *testing.T) (*content.Store, *memory.Store) {
	t.Helper()
	kv := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return content.New(context.Background(), kv, logger), kv
}

func persistedData(t *testing.T, kv *memory.Store) portfolio.Data {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), storage.KeyPortfolioData)
	require.NoError(t, err)
	require.True(t, ok, "nothing persisted")
	var d portfolio.Data
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	return d
}

func TestOpenEverySection(t *testing.T) {
	store, _ := newStore(t)
	for _, s := range portfolio.Sections() {
		ed, err := Open(store, s)
		require.NoError(t, err, s)
		assert.Equal(t, s, ed.Section())

		want, err := store.Section(s)
		require.NoError(t, err)
		assert.Equal(t, want, ed.Draft())
	}

	_, err := Open(store, "footer")
	assert.ErrorIs(t, err, portfolio.ErrUnknownSection)
}

func TestAddProjectThenSave(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	n := len(store.Data().Projects)

	ed, err := Open(store, portfolio.SectionProjects)
	require.NoError(t, err)
	pe := ed.(*ProjectsEditor)

	idx, err := pe.Add("")
	require.NoError(t, err)
	assert.Equal(t, n, idx)
	assert.Equal(t, n, pe.Editing())

	// Not saved yet.
	assert.Len(t, store.Data().Projects, n)

	require.NoError(t, pe.Save(ctx))
	assert.Equal(t, -1, pe.Editing())

	stored := persistedData(t, kv)
	require.Len(t, stored.Projects, n+1)
	assert.Equal(t, NewProject(), stored.Projects[n])
	assert.Equal(t, stored.Projects, store.Data().Projects)
}

func TestDeleteProjectShiftsLaterProjects(t *testing.T) {
	store, _ := newStore(t)
	before := store.Data().Projects
	require.GreaterOrEqual(t, len(before), 3)

	ed, err := Open(store, portfolio.SectionProjects)
	require.NoError(t, err)
	pe := ed.(*ProjectsEditor)
	require.NoError(t, pe.Toggle(1))

	require.NoError(t, pe.Delete("", 1))

	draft := pe.Draft().([]portfolio.Project)
	require.Len(t, draft, len(before)-1)
	assert.Equal(t, before[0], draft[0])
	assert.Equal(t, before[2], draft[1])
	assert.Equal(t, -1, pe.Editing())

	assert.ErrorIs(t, pe.Delete("", len(draft)), ErrIndexOutOfRange)
	assert.ErrorIs(t, pe.Delete("", -1), ErrIndexOutOfRange)
}

func TestProjectFields(t *testing.T) {
	store, _ := newStore(t)
	ed, err := Open(store, portfolio.SectionProjects)
	require.NoError(t, err)

	require.NoError(t, ed.Set(Field{Index: 0, Name: "title"}, "Renamed"))
	require.NoError(t, ed.Set(Field{Index: 0, Name: "tags"}, "Go, HTMX,  SQLite ,"))
	require.NoError(t, ed.Set(Field{Index: 0, Name: "highlights"}, "Fast"))
	require.NoError(t, ed.Set(Field{Index: 0, Name: "featured"}, "off"))
	require.NoError(t, ed.Set(Field{Index: 0, Name: "type"}, "Academic"))

	p := ed.Draft().([]portfolio.Project)[0]
	assert.Equal(t, "Renamed", p.Title)
	assert.Equal(t, []string{"Go", "HTMX", "SQLite"}, p.Tags)
	assert.Equal(t, []string{"Fast"}, p.Highlights)
	assert.False(t, p.Featured)
	assert.Equal(t, "Academic", p.Type)

	assert.ErrorIs(t, ed.Set(Field{Index: 0, Name: "stars"}, "5"), ErrUnknownField)
	assert.ErrorIs(t, ed.Set(Field{Index: 99, Name: "title"}, "x"), ErrIndexOutOfRange)
}

func TestToggleProject(t *testing.T) {
	store, _ := newStore(t)
	ed, err := Open(store, portfolio.SectionProjects)
	require.NoError(t, err)
	pe := ed.(*ProjectsEditor)

	assert.Equal(t, -1, pe.Editing())
	require.NoError(t, pe.Toggle(0))
	assert.Equal(t, 0, pe.Editing())
	require.NoError(t, pe.Toggle(0))
	assert.Equal(t, -1, pe.Editing())
	assert.ErrorIs(t, pe.Toggle(100), ErrIndexOutOfRange)
}

func TestSkillLevelIsClamped(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	ed, err := Open(store, portfolio.SectionSkills)
	require.NoError(t, err)

	cases := []struct {
		input string
		want  int
	}{
		{"150", 100},
		{"100", 100},
		{"0", 0},
		{"-5", 0},
		{"abc", 0},
		{"", 0},
		{"85%", 85},
		{" 42 ", 42},
		{"99999999999999999999999", 100},
	}
	for _, tc := range cases {
		require.NoError(t, ed.Set(Field{Group: GroupFrontend, Index: 0, Name: "level"}, tc.input))
		got := ed.Draft().(portfolio.Skills).Frontend[0].Level
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	require.NoError(t, ed.Set(Field{Group: GroupBackend, Index: 1, Name: "level"}, "150"))
	require.NoError(t, ed.Save(ctx))

	stored := persistedData(t, kv)
	assert.Equal(t, 100, stored.Skills.Backend[1].Level)
	for _, s := range append(stored.Skills.Frontend, stored.Skills.Backend...) {
		assert.GreaterOrEqual(t, s.Level, MinSkillLevel)
		assert.LessOrEqual(t, s.Level, MaxSkillLevel)
	}
}

func TestSkillsGroups(t *testing.T) {
	store, _ := newStore(t)
	ed, err := Open(store, portfolio.SectionSkills)
	require.NoError(t, err)
	before := store.Data().Skills

	idx, err := ed.Add(GroupExperience)
	require.NoError(t, err)
	require.NoError(t, ed.Set(Field{Group: GroupExperience, Index: idx, Name: "company"}, "Acme"))
	require.NoError(t, ed.Set(Field{Group: GroupEducation, Index: 0, Name: "grade"}, "A"))
	require.NoError(t, ed.Delete(GroupBackend, 0))

	got := ed.Draft().(portfolio.Skills)
	assert.Equal(t, "Acme", got.Experience[idx].Company)
	assert.Equal(t, "A", got.Education[0].Grade)
	assert.Len(t, got.Backend, len(before.Backend)-1)

	assert.ErrorIs(t, ed.Set(Field{Group: "devops", Index: 0, Name: "name"}, "x"), ErrUnknownGroup)
	_, err = ed.Add("devops")
	assert.ErrorIs(t, err, ErrUnknownGroup)
	assert.ErrorIs(t, ed.Delete("devops", 0), ErrUnknownGroup)
}

func TestTestimonialRatingIsClamped(t *testing.T) {
	store, _ := newStore(t)
	ed, err := Open(store, portfolio.SectionTestimonials)
	require.NoError(t, err)

	for input, want := range map[string]int{"0": 1, "3": 3, "9": 5, "x": 1} {
		require.NoError(t, ed.Set(Field{Index: 0, Name: "rating"}, input))
		assert.Equal(t, want, ed.Draft().([]portfolio.Testimonial)[0].Rating, "input %q", input)
	}
}

func TestAboutEditor(t *testing.T) {
	store, _ := newStore(t)
	ed, err := Open(store, portfolio.SectionAbout)
	require.NoError(t, err)

	require.NoError(t, ed.Set(Field{Name: "languages"}, "English, Spanish"))
	require.NoError(t, ed.Set(Field{Group: "bio", Index: 1, Name: "text"}, "Second paragraph"))
	idx, err := ed.Add("bio")
	require.NoError(t, err)
	require.NoError(t, ed.Set(Field{Group: "bio", Index: idx}, "New last paragraph"))

	got := ed.Draft().(portfolio.About)
	assert.Equal(t, []string{"English", "Spanish"}, got.Languages)
	assert.Equal(t, "Second paragraph", got.Bio[1])
	assert.Equal(t, "New last paragraph", got.Bio[idx])

	require.NoError(t, ed.Delete("bio", 0))
	assert.Equal(t, "Second paragraph", ed.Draft().(portfolio.About).Bio[0])
}

func TestScalarEditorsRejectRows(t *testing.T) {
	store, _ := newStore(t)
	for _, s := range []portfolio.Section{portfolio.SectionHero, portfolio.SectionContact} {
		ed, err := Open(store, s)
		require.NoError(t, err)
		_, err = ed.Add("")
		assert.ErrorIs(t, err, ErrNotSupported)
		assert.ErrorIs(t, ed.Delete("", 0), ErrNotSupported)
	}
}

func TestHeroAndContactFields(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	hero, err := Open(store, portfolio.SectionHero)
	require.NoError(t, err)
	require.NoError(t, hero.Set(Field{Name: "name"}, "Jane"))
	require.NoError(t, hero.Set(Field{Name: "linkedinUrl"}, "https://linkedin.com/in/jane"))
	assert.ErrorIs(t, hero.Set(Field{Name: "avatar"}, "x"), ErrUnknownField)
	require.NoError(t, hero.Save(ctx))

	contact, err := Open(store, portfolio.SectionContact)
	require.NoError(t, err)
	require.NoError(t, contact.Set(Field{Name: "location"}, "Berlin"))
	require.NoError(t, contact.Save(ctx))

	d := store.Data()
	assert.Equal(t, "Jane", d.Hero.Name)
	assert.Equal(t, "https://linkedin.com/in/jane", d.Hero.LinkedinURL)
	assert.Equal(t, "Berlin", d.Contact.Location)
}

func TestListEditors(t *testing.T) {
	store, _ := newStore(t)
	cases := []struct {
		section portfolio.Section
		field   string
	}{
		{portfolio.SectionValues, "title"},
		{portfolio.SectionCertifications, "issuer"},
		{portfolio.SectionStats, "label"},
		{portfolio.SectionTestimonials, "content"},
	}
	for _, tc := range cases {
		t.Run(string(tc.section), func(t *testing.T) {
			ed, err := Open(store, tc.section)
			require.NoError(t, err)

			idx, err := ed.Add("")
			require.NoError(t, err)
			require.NoError(t, ed.Set(Field{Index: idx, Name: tc.field}, "edited"))
			assert.ErrorIs(t, ed.Set(Field{Index: idx, Name: "nope"}, "x"), ErrUnknownField)
			assert.ErrorIs(t, ed.Set(Field{Index: idx + 1, Name: tc.field}, "x"), ErrIndexOutOfRange)
			require.NoError(t, ed.Delete("", idx))
			assert.ErrorIs(t, ed.Delete("", idx), ErrIndexOutOfRange)
		})
	}
}

func TestDraftIsNotVisibleUntilSaved(t *testing.T) {
	store, kv := newStore(t)
	ed, err := Open(store, portfolio.SectionHero)
	require.NoError(t, err)

	require.NoError(t, ed.Set(Field{Name: "name"}, "Draft Only"))

	assert.NotEqual(t, "Draft Only", store.Data().Hero.Name)
	_, ok, err := kv.Get(context.Background(), storage.KeyPortfolioData)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDraftReturnedIsACopy(t *testing.T) {
	store, _ := newStore(t)
	ed, err := Open(store, portfolio.SectionProjects)
	require.NoError(t, err)

	d := ed.Draft().([]portfolio.Project)
	d[0].Tags[0] = "mutated"

	assert.NotEqual(t, "mutated", ed.Draft().([]portfolio.Project)[0].Tags[0])
}

func TestSaveFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	ed, err := Open(store, portfolio.SectionStats)
	require.NoError(t, err)
	require.NoError(t, ed.Set(Field{Index: 0, Name: "value"}, "1000+"))

	kv.FailWrites(errors.New("quota exceeded"))
	err = ed.Save(ctx)
	assert.ErrorIs(t, err, content.ErrPersist)
	assert.Equal(t, "1000+", ed.Draft().([]portfolio.Stat)[0].Value)

	kv.FailWrites(nil)
	require.NoError(t, ed.Save(ctx))
	assert.Equal(t, "1000+", persistedData(t, kv).Stats[0].Value)
}

func TestWorkspacesOpenDiscardsDraft(t *testing.T) {
	store, _ := newStore(t)
	ws := NewWorkspaces(store)
	original := store.Data().Hero.Name

	require.NoError(t, ws.Do("s1", portfolio.SectionHero, func(ed Editor) error {
		return ed.Set(Field{Name: "name"}, "Unsaved")
	}))
	require.NoError(t, ws.Do("s1", portfolio.SectionHero, func(ed Editor) error {
		assert.Equal(t, "Unsaved", ed.Draft().(portfolio.Hero).Name)
		return nil
	}))

	// Another session has its own draft.
	require.NoError(t, ws.Do("s2", portfolio.SectionHero, func(ed Editor) error {
		assert.Equal(t, original, ed.Draft().(portfolio.Hero).Name)
		return nil
	}))

	require.NoError(t, ws.Open("s1", portfolio.SectionHero, func(ed Editor) error {
		assert.Equal(t, original, ed.Draft().(portfolio.Hero).Name)
		return nil
	}))

	require.NoError(t, ws.Do("s1", portfolio.SectionHero, func(ed Editor) error {
		return ed.Set(Field{Name: "name"}, "Again")
	}))
	ws.Discard("s1")
	require.NoError(t, ws.Do("s1", portfolio.SectionHero, func(ed Editor) error {
		assert.Equal(t, original, ed.Draft().(portfolio.Hero).Name)
		return nil
	}))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,b,, "))
	assert.Empty(t, SplitList(""))
	assert.Equal(t, "a, b", JoinList([]string{"a", "b"}))
}
