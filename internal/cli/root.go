package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dr-Obek/textfilter/internal/buildinfo"
	"github.com/Dr-Obek/textfilter/internal/domain"
	"github.com/Dr-Obek/textfilter/internal/infra/console"
	"github.com/Dr-Obek/textfilter/internal/infra/logger"
	"github.com/Dr-Obek/textfilter/internal/infra/translit"
	"github.com/Dr-Obek/textfilter/internal/usecase"
	"github.com/Dr-Obek/textfilter/internal/usecase/textops"
)

const (
	exitOK        = 0
	exitUsage     = 1
	exitInputRead = 2
)

// streams carries the process I/O. Diag receives JSON diagnostics; nil
// discards them.
type streams struct {
	In    io.Reader
	Out   io.Writer
	Err   io.Writer
	Diag  io.Writer
	Debug bool
}

func Execute() {
	os.Exit(run(os.Args[1:], streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}))
}

// run executes the root command and returns the process exit status.
func run(args []string, s streams) int {
	reg, err := textops.Builtin(translit.NewSlugger(), translit.NewUnidecoder())
	if err != nil {
		fmt.Fprintln(s.Err, err)
		return exitUsage
	}

	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(reg, s)
	cmd.SetArgs(args)
	cmd.SetIn(s.In)
	cmd.SetOut(s.Out)
	cmd.SetErr(s.Err)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(s.Err, errorMessage(reg, err))
		return exitCode(err)
	}
	return exitOK
}

func newRootCmd(reg *domain.Registry, s streams) *cobra.Command {
	return &cobra.Command{
		Use:   "textfilter <operation>",
		Short: "Apply one text transformation to every line read from stdin",
		// Every argv token is an operation candidate, including "-h" and "--".
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               operationArg(reg),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, _ := reg.Lookup(args[0])

			log := logger.New(logger.Config{
				Sink:  s.Diag,
				Debug: s.Debug,
			}).With(buildinfo.LogAttrs()...)

			uc := usecase.NewTransformLines(
				console.NewReader(cmd.InOrStdin()),
				cmd.OutOrStdout(),
				usecase.WithLogger(log),
			)
			_, err := uc.Execute(cmd.Context(), op)
			return err
		},
	}
}

func exitCode(err error) int {
	switch {
	case domain.IsKind(err, domain.KindUsage):
		return exitUsage
	case domain.IsKind(err, domain.KindInputRead):
		return exitInputRead
	default:
		return exitUsage
	}
}

func errorMessage(reg *domain.Registry, err error) string {
	supported := "Supported operations: " + reg.Describe() + "."

	switch {
	case errors.Is(err, domain.ErrArgCount):
		return "Please provide only one transformation operation as a command-line argument. " + supported
	case errors.Is(err, domain.ErrUnknownOperation):
		return "Invalid operation. " + supported
	case domain.IsKind(err, domain.KindInputRead):
		return "Failed to read line: " + err.Error()
	default:
		return err.Error()
	}
}
