package ports

// LineSource yields input lines one at a time. It is lazy, may be finite or
// infinite, and cannot be restarted. ReadLine returns io.EOF once the
// source is exhausted.
type LineSource interface {
	ReadLine() (string, error)
}
