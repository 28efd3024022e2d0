package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mhorod/satori-cli/cmd/satori/commands"
	"github.com/mhorod/satori-cli/lib/osutil"
	"github.com/mhorod/satori-cli/lib/telemetry"
)

func main() {
	ctx := osutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "satori")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer tel.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
