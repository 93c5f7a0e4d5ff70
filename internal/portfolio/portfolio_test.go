package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()

	a.Projects[0].Tags[0] = "changed"
	a.About.Bio[0] = "changed"
	a.Skills.Frontend[0].Level = 1

	assert.NotEqual(t, "changed", b.Projects[0].Tags[0])
	assert.NotEqual(t, "changed", b.About.Bio[0])
	assert.NotEqual(t, 1, b.Skills.Frontend[0].Level)
	assert.Equal(t, Default(), b)
}

func TestDefaultHasEverySection(t *testing.T) {
	d := Default()

	assert.NotEmpty(t, d.Hero.Name)
	assert.NotEmpty(t, d.About.Bio)
	assert.NotEmpty(t, d.Values)
	assert.NotEmpty(t, d.Certifications)
	assert.NotEmpty(t, d.Projects)
	assert.NotEmpty(t, d.Skills.Frontend)
	assert.NotEmpty(t, d.Skills.Backend)
	assert.NotEmpty(t, d.Testimonials)
	assert.NotEmpty(t, d.Stats)
	assert.NotEmpty(t, d.Contact.Email)
}

func TestParseSection(t *testing.T) {
	for _, s := range Sections() {
		got, err := ParseSection(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseSection("footer")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestPatchSetAcceptsValueAndPointer(t *testing.T) {
	var p Patch
	hero := Hero{Name: "A"}
	require.NoError(t, p.Set(SectionHero, hero))
	require.NoError(t, p.Set(SectionStats, &[]Stat{{Value: "1", Label: "one"}}))

	assert.Equal(t, "A", p.Hero.Name)
	assert.Len(t, *p.Stats, 1)
	assert.Nil(t, p.Projects)
}

func TestPatchSetRejectsWrongType(t *testing.T) {
	var p Patch

	err := p.Set(SectionProjects, []Stat{})
	assert.ErrorIs(t, err, ErrSectionType)

	err = p.Set(SectionHero, (*Hero)(nil))
	assert.ErrorIs(t, err, ErrSectionType)

	err = p.Set(Section("footer"), Hero{})
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestPatchApplyReplacesWholeSection(t *testing.T) {
	base := Default()
	var p Patch
	require.NoError(t, p.Set(SectionHero, Hero{Name: "Only Name"}))

	got := p.Apply(base.Clone())

	assert.Equal(t, Hero{Name: "Only Name"}, got.Hero)
	assert.Equal(t, base.Projects, got.Projects)
	assert.Equal(t, base.Contact, got.Contact)
}

func TestPatchApplyCopiesSlices(t *testing.T) {
	stats := []Stat{{Value: "1", Label: "one"}}
	var p Patch
	require.NoError(t, p.Set(SectionStats, stats))

	got := p.Apply(Default())
	stats[0].Value = "mutated"

	assert.Equal(t, "1", got.Stats[0].Value)
}

func TestPatchDecode(t *testing.T) {
	var p Patch
	require.NoError(t, p.Decode(SectionContact, json.RawMessage(`{"email":"a@b.c","location":"x"}`)))
	assert.Equal(t, "a@b.c", p.Contact.Email)

	assert.ErrorIs(t, p.Decode(SectionProjects, json.RawMessage(`{"title":"x"}`)), ErrSectionType)
	assert.ErrorIs(t, p.Decode(SectionHero, json.RawMessage(`null`)), ErrSectionType)
	assert.True(t, Patch{}.Empty())
	assert.False(t, p.Empty())
}

func TestGetReturnsCopy(t *testing.T) {
	d := Default()
	v, err := d.Get(SectionProjects)
	require.NoError(t, err)

	projects := v.([]Project)
	projects[0].Title = "changed"

	assert.NotEqual(t, "changed", d.Projects[0].Title)

	_, err = d.Get("footer")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestFeaturedProjectsKeepsOrder(t *testing.T) {
	d := Data{Projects: []Project{
		{Title: "a", Featured: true},
		{Title: "b"},
		{Title: "c", Featured: true},
	}}

	featured := d.FeaturedProjects()
	require.Len(t, featured, 2)
	assert.Equal(t, "a", featured[0].Title)
	assert.Equal(t, "c", featured[1].Title)
}

func TestJSONKeysMatchSectionNames(t *testing.T) {
	raw, err := json.Marshal(Default())
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, s := range Sections() {
		assert.Contains(t, m, string(s))
	}
	assert.Len(t, m, len(Sections()))
}

func TestPatchApplyNilListBecomesEmpty(t *testing.T) {
	var p Patch
	require.NoError(t, p.Set(SectionStats, []Stat(nil)))
	require.NoError(t, p.Set(SectionProjects, []Project(nil)))

	got := p.Apply(Default())

	assert.NotNil(t, got.Stats)
	assert.Empty(t, got.Stats)
	assert.NotNil(t, got.Projects)
	assert.Empty(t, got.Projects)
}
