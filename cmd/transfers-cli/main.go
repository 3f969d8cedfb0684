package main

import (
	"context"

	"fedtransfers-backend/cmd/transfers-cli/commands"
	"fedtransfers-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "transfers-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
