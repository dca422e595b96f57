// kptest — утилита для ручных тестовых запросов к kodi proxy.
//
// Использование:
//
//	kptest [-p PORT] <device> <action> [flags]
//
// Команды:
//
//	av    mute | unmute | on | off | volume --level N
//	cec   on | off [--device N]
//	kodi  mute | unmute | volume-decr | volume-incr | introspect | off
//
// Тело ответа выводится в stdout без изменений. Логи (LOG_LEVEL=DEBUG
// показывает сам запрос) пишутся в stderr.
package main

import (
	"context"
	"os"

	"github.com/shaiso/kptest/internal/cli"
	"github.com/shaiso/kptest/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger(os.Stderr)
	out := cli.NewOutput()

	rootCmd := cli.NewRootCmd(version,
		func() *cli.Client { return cli.NewClient() },
		func() *cli.Output { return out },
	)

	ctx := telemetry.WithLogger(context.Background(), logger)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		out.Error(err.Error())
		os.Exit(cli.ExitCode(err))
	}
}
