package model

// SectionKind identifies which renderer presents a section.
type SectionKind string

const (
	KindIntro    SectionKind = "intro"
	KindStats    SectionKind = "stats"
	KindMoments  SectionKind = "moments"
	KindMessages SectionKind = "messages"
	KindClosing  SectionKind = "closing"
)

// Yearbook is the whole document shown in one session. Sections keep the
// order they appear in; the list is fixed for the lifetime of a session.
type Yearbook struct {
	Title    string    `yaml:"title"`
	Batch    string    `yaml:"batch"`
	Sections []Section `yaml:"sections"`
}

// Section is one full-screen unit. Only the fields relevant to Kind are set.
type Section struct {
	Kind  SectionKind `yaml:"kind"`
	Label string      `yaml:"label"`

	Heading    string `yaml:"heading,omitempty"`
	Subheading string `yaml:"subheading,omitempty"`
	Tagline    string `yaml:"tagline,omitempty"`
	Quote      string `yaml:"quote,omitempty"`
	Action     string `yaml:"action,omitempty"`
	Footer     string `yaml:"footer,omitempty"`

	Projects  []Project  `yaml:"projects,omitempty"`
	Fragments []Fragment `yaml:"fragments,omitempty"`
	Messages  []Message  `yaml:"messages,omitempty"`
	Status    []string   `yaml:"status,omitempty"`
}

// Project is a class project shown on the stats section.
type Project struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Tech   string `yaml:"tech"`
	Stars  int    `yaml:"stars"`
	URL    string `yaml:"url,omitempty"`
}

// FragmentType classifies a memory fragment.
type FragmentType string

const (
	FragmentImage FragmentType = "img"
	FragmentText  FragmentType = "txt"
	FragmentError FragmentType = "err"
)

// Fragment is a memory "file" shown on the moments section.
type Fragment struct {
	Label string       `yaml:"label"`
	Type  FragmentType `yaml:"type"`
	Size  string       `yaml:"size"`
}

// Message is a farewell note shown on the messages section.
type Message struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Initial string `yaml:"initial"`
	Color   string `yaml:"color,omitempty"`
	Text    string `yaml:"text"`
}
