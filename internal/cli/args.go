package cli

import (
	"github.com/spf13/cobra"

	"github.com/Dr-Obek/textfilter/internal/domain"
)

// operationArg accepts exactly one positional argument naming a registered
// operation.
func operationArg(reg *domain.Registry) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return &domain.OpError{
				Op:   "cli.args",
				Kind: domain.KindUsage,
				Err:  domain.ErrArgCount,
			}
		}
		if _, ok := reg.Lookup(args[0]); !ok {
			return &domain.OpError{
				Op:   "cli.args",
				Kind: domain.KindUsage,
				Name: args[0],
				Err:  domain.ErrUnknownOperation,
			}
		}
		return nil
	}
}
