package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultIsValid(t *testing.T) {
	s, err := New(Default)
	require.NoError(t, err)

	assert.Len(t, s.Projects(), 5)
	assert.Len(t, s.Certifications(), 3)
	assert.Len(t, s.NavCards(), 4)
	assert.NotPanics(t, func() { MustDefault() })
}

func TestNew_RejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Data)
		field  string
	}{
		{
			name:   "project without title",
			mutate: func(d *Data) { d.Projects[0].Title = "" },
			field:  "Projects[0].Title",
		},
		{
			name:   "project link with bad url",
			mutate: func(d *Data) { d.Projects[1].Links[1].URL = "not a url" },
			field:  "Projects[1].Links[1].URL",
		},
		{
			name:   "skill above 100 percent",
			mutate: func(d *Data) { d.SkillLevels[2].Percent = 120 },
			field:  "SkillLevels[2].Percent",
		},
		{
			name:   "certification without verify link",
			mutate: func(d *Data) { d.Certifications[0].VerifyURL = "" },
			field:  "Certifications[0].VerifyURL",
		},
		{
			name:   "accent without hash",
			mutate: func(d *Data) { d.Projects[2].Accent = "fff8e1" },
			field:  "Projects[2].Accent",
		},
		{
			name:   "profile email",
			mutate: func(d *Data) { d.Profile.Email = "nobody" },
			field:  "Profile.Email",
		},
		{
			name:   "no projects",
			mutate: func(d *Data) { d.Projects = nil },
			field:  "Projects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := deepCopy(Default)
			tt.mutate(&d)

			_, err := New(d)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNew_DashboardPlaceholderLinkAllowed(t *testing.T) {
	s := MustDefault()
	assert.Equal(t, "#", s.Projects()[1].Links[0].URL)
}

func TestStore_ProjectsStableOrder(t *testing.T) {
	s := MustDefault()

	first := s.Projects()
	second := s.Projects()
	require.Equal(t, first, second)
	assert.Equal(t, "Audible Insights: Book Recommendation Engine", first[0].Title)
	assert.Equal(t, "Redbus Data Scraping App", first[len(first)-1].Title)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := MustDefault()

	projects := s.Projects()
	projects[0].Title = "changed"
	projects[0].Features[0] = "changed"
	projects[0].Links[0].URL = "changed"

	again := s.Projects()
	assert.NotEqual(t, "changed", again[0].Title)
	assert.NotEqual(t, "changed", again[0].Features[0])
	assert.NotEqual(t, "changed", again[0].Links[0].URL)

	groups := s.SkillGroups()
	groups[0].Items[0] = "changed"
	assert.NotEqual(t, "changed", s.SkillGroups()[0].Items[0])
}

func TestStore_SkillLevelsInRange(t *testing.T) {
	for _, lvl := range MustDefault().SkillLevels() {
		assert.GreaterOrEqual(t, lvl.Percent, 0, lvl.Name)
		assert.LessOrEqual(t, lvl.Percent, 100, lvl.Name)
	}
}

func deepCopy(d Data) Data {
	s := &Store{data: d}
	out := d
	out.Projects = s.Projects()
	out.SkillGroups = s.SkillGroups()
	out.SkillLevels = s.SkillLevels()
	out.Certifications = s.Certifications()
	out.NavCards = s.NavCards()
	return out
}
