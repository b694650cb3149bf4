package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Dr-Obek/textfilter/internal/domain"
	"github.com/Dr-Obek/textfilter/internal/ports"
)

const (
	bannerPrefix = "Available text transformation: "
	prompt       = "Enter the text you want to transform (Ctrl+C to exit):"
	resultPrefix = "Transformed text: "
)

type TransformLines struct {
	source ports.LineSource
	out    io.Writer
	logger *slog.Logger
}

type TransformOption func(*TransformLines)

func WithLogger(l *slog.Logger) TransformOption {
	return func(uc *TransformLines) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewTransformLines(src ports.LineSource, out io.Writer, opts ...TransformOption) *TransformLines {
	uc := &TransformLines{
		source: src,
		out:    out,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute prints the banner, then prompts, reads, transforms and prints one
// line per iteration until the source is exhausted. It returns the number of
// lines transformed. End of input is not an error; any other read failure
// is returned as a KindInputRead OpError and ends the loop.
func (uc *TransformLines) Execute(ctx context.Context, op domain.Operation) (int, error) {
	if _, err := fmt.Fprintln(uc.out, bannerPrefix+string(op.Name)); err != nil {
		return 0, fmt.Errorf("write banner: %w", err)
	}
	uc.logger.Info("repl.started", "operation", op.Name)

	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		if _, err := fmt.Fprintln(uc.out, prompt); err != nil {
			return n, fmt.Errorf("write prompt: %w", err)
		}

		line, err := uc.source.ReadLine()
		if errors.Is(err, io.EOF) {
			uc.logger.Info("repl.eof", "lines", n)
			return n, nil
		}
		if err != nil {
			uc.logger.Error("repl.read_failed", "error", err, "lines", n)
			if domain.IsKind(err, domain.KindInputRead) {
				return n, err
			}
			return n, &domain.OpError{
				Op:   "usecase.transformlines",
				Kind: domain.KindInputRead,
				Err:  err,
			}
		}

		text := strings.TrimSpace(line)
		result := op.Apply(text)
		uc.logger.Debug("repl.line", "operation", op.Name, "in_bytes", len(text), "out_bytes", len(result))

		if _, err := fmt.Fprintln(uc.out, resultPrefix+result); err != nil {
			return n, fmt.Errorf("write result: %w", err)
		}
		n++
	}
}
