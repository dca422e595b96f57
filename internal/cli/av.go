package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/kptest/internal/domain"
)

// NewAVCmd создаёт команду для AV-ресивера.
func NewAVCmd(g *Globals, clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:       "av {mute|unmute|on|off|volume}",
		Short:     "Method for the avreceiver",
		ValidArgs: validArgs(domain.DeviceAV),
		Args:      actionArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := domain.NewInvocation(domain.DeviceAV, domain.Action(args[0]))
			inv.Port = g.Port
			if cmd.Flags().Changed("level") {
				inv = inv.WithLevel(level)
			}

			return dispatch(cmd, clientFn, outputFn, inv)
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 0, "Absolute volume, only with the volume action")

	return cmd
}
