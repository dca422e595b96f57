package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/kptest/internal/domain"
)

// NewKodiCmd создаёт команду для Kodi (JSON-RPC).
func NewKodiCmd(g *Globals, clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:       "kodi {mute|unmute|volume-decr|volume-incr|introspect|off}",
		Short:     "Method for kodi",
		ValidArgs: validArgs(domain.DeviceKodi),
		Args:      actionArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := domain.NewInvocation(domain.DeviceKodi, domain.Action(args[0]))
			inv.Port = g.Port

			return dispatch(cmd, clientFn, outputFn, inv)
		},
	}
}
