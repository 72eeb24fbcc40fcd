// Package content holds the static portfolio data: profile, projects,
// certifications and contact links. Records are fixed-shape and validated
// once at construction.
package content

// Link is a labelled external URL.
type Link struct {
	Label string `validate:"required"`
	URL   string `validate:"required,url|eq=#"`
}

// ContactLink is a labelled profile link shown on the contact page.
type ContactLink = Link

// Profile is the site owner's identity and top-level links.
type Profile struct {
	Name      string `validate:"required"`
	Headline  string `validate:"required"`
	Tagline   string `validate:"required"`
	Intro     string `validate:"required"`
	Email     string `validate:"required,email"`
	Location  string `validate:"required"`
	Remote    string
	LinkedIn  string `validate:"required,url"`
	GitHub    string `validate:"required,url"`
	Twitter   string `validate:"omitempty,url"`
	Statement string
}

// NavCard is a home page teaser pointing at another section.
type NavCard struct {
	Section     string `validate:"required,oneof=about projects resume certifications contact"`
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Accent      string `validate:"required,hexcolor"`
}

// Education is one degree or school record.
type Education struct {
	Degree      string `validate:"required"`
	Institution string `validate:"required"`
	Period      string
	Score       string `validate:"required"`
	Focus       string `validate:"required"`
	Accent      string `validate:"required,hexcolor"`
}

// SkillGroup is a titled list of tools.
type SkillGroup struct {
	Title  string   `validate:"required"`
	Items  []string `validate:"required,min=1,dive,required"`
	Accent string   `validate:"required,hexcolor"`
}

// SkillLevel is a self-assessed proficiency in percent.
type SkillLevel struct {
	Name    string `validate:"required"`
	Percent int    `validate:"gte=0,lte=100"`
}

// Project is one portfolio project.
type Project struct {
	Title       string   `validate:"required"`
	Description string   `validate:"required"`
	Features    []string `validate:"required,min=1,dive,required"`
	TechStack   string   `validate:"required"`
	Links       []Link   `validate:"required,min=1,dive"`
	Accent      string   `validate:"required,hexcolor"`
}

// Certification is one earned credential.
type Certification struct {
	Title        string `validate:"required"`
	Issuer       string `validate:"required"`
	Date         string `validate:"required"`
	CredentialID string `validate:"required,alphanum"`
	VerifyURL    string `validate:"required,url"`
	Skills       string `validate:"required"`
	Accent       string `validate:"required,hexcolor"`
}

// Data is the complete set of records handed to New.
type Data struct {
	Profile          Profile
	Glance           []string        `validate:"required,dive,required"`
	NavCards         []NavCard       `validate:"len=4,dive"`
	Highlights       []string        `validate:"dive,required"`
	Summary          []string        `validate:"dive,required"`
	Education        []Education     `validate:"dive"`
	SkillGroups      []SkillGroup    `validate:"dive"`
	SkillLevels      []SkillLevel    `validate:"dive"`
	Projects         []Project       `validate:"required,min=1,dive"`
	Certifications   []Certification `validate:"dive"`
	Pursuing         []string        `validate:"dive,required"`
	ResumeHighlights []string        `validate:"dive,required"`
	ContactLinks     []ContactLink   `validate:"required,min=1,dive"`
}
