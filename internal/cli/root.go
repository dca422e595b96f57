package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaiso/kptest/internal/domain"
)

// Globals — значения PersistentFlags корневой команды.
type Globals struct {
	Port int
}

// NewRootCmd создаёт корневую команду kptest со всеми подсистемами.
//
// clientFn и outputFn вызываются после парсинга флагов.
func NewRootCmd(version string, clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	g := &Globals{}

	rootCmd := &cobra.Command{
		Use:     "kptest",
		Short:   "Methods made to help interact with the kodi proxy",
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(cmd, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageError(cmd, errors.New("a subcommand is required"))
		},
	}

	rootCmd.PersistentFlags().IntVarP(&g.Port, "port", "p", domain.DefaultPort, "Port where kodi proxy listens")
	rootCmd.SetFlagErrorFunc(usageError)

	rootCmd.AddCommand(
		NewAVCmd(g, clientFn, outputFn),
		NewCECCmd(g, clientFn, outputFn),
		NewKodiCmd(g, clientFn, outputFn),
	)

	return rootCmd
}

// dispatch отправляет один запрос и печатает тело ответа.
func dispatch(cmd *cobra.Command, clientFn func() *Client, outputFn func() *Output, inv domain.Invocation) error {
	body, err := clientFn().Dispatch(cmd.Context(), inv)
	if err != nil {
		return err
	}

	return outputFn().Body(body)
}

// actionArgs проверяет единственный позиционный аргумент по набору действий.
func actionArgs() cobra.PositionalArgs {
	check := cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

func validArgs(device domain.Device) []string {
	actions := domain.Actions(device)
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}

func usageError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w: %v\n\n%s", ErrUsage, err, cmd.UsageString())
}
