package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/kptest/internal/domain"
)

// NewCECCmd создаёт команду для шины CEC.
func NewCECCmd(g *Globals, clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var device int

	cmd := &cobra.Command{
		Use:       "cec {on|off}",
		Short:     "Method for the cec",
		ValidArgs: validArgs(domain.DeviceCEC),
		Args:      actionArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := domain.NewInvocation(domain.DeviceCEC, domain.Action(args[0]))
			inv.Port = g.Port
			if cmd.Flags().Changed("device") {
				inv = inv.WithAddress(device)
			}

			return dispatch(cmd, clientFn, outputFn, inv)
		},
	}

	cmd.Flags().IntVarP(&device, "device", "d", 0, "Logical address of the CEC device (default: broadcast)")

	return cmd
}
