package ports

// Slugger turns arbitrary text into a lowercase, ASCII, hyphen-delimited slug.
type Slugger interface {
	Slugify(text string) string
}
