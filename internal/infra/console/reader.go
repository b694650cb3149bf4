// Package console reads newline-delimited UTF-8 text from an io.Reader,
// typically stdin.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Dr-Obek/textfilter/internal/domain"
	"github.com/Dr-Obek/textfilter/internal/ports"
)

type Reader struct {
	br   *bufio.Reader
	done bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

var _ ports.LineSource = (*Reader)(nil)

// ReadLine returns the next line without its terminator ("\n" or "\r\n").
// A final line without terminator is returned before io.EOF.
func (r *Reader) ReadLine() (string, error) {
	if r.done {
		return "", io.EOF
	}

	line, err := r.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.done = true
			return "", &domain.OpError{
				Op:   "console.readline",
				Kind: domain.KindInputRead,
				Err:  err,
			}
		}
		r.done = true
		if line == "" {
			return "", io.EOF
		}
	}

	if !utf8.ValidString(line) {
		return "", &domain.OpError{
			Op:   "console.readline",
			Kind: domain.KindInputRead,
			Err:  fmt.Errorf("%w: stream did not contain valid UTF-8", domain.ErrInvalidInput),
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
