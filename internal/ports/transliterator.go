package ports

// Transliterator approximates Unicode text with plain ASCII.
type Transliterator interface {
	Transliterate(text string) string
}
