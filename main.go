package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/elitebeauty/clinic-concierge/agent/tool"
	configx "github.com/elitebeauty/clinic-concierge/pkg/config"
	_ "github.com/elitebeauty/clinic-concierge/pkg/logger/autoload"
	openrouterx "github.com/elitebeauty/clinic-concierge/pkg/openrouter"
)

type AppConfig struct {
	CustomerID string `envconfig:"CUSTOMER_ID" default:"123"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	openRouterClient := openrouterx.NewClient(*openRouterCfg)
	if openRouterClient == nil {
		panic("failed to initialize openrouter client")
	}

	gateway := tool.NewMockGateway(log.Logger)

	ctx := context.Background()
	snapshot, err := gateway.CustomerSnapshot(ctx, appCfg.CustomerID)
	if err != nil {
		panic(err)
	}

	// The profile snapshot seeds the orchestrator's initial context; the
	// catalog is what it binds to its chat model.
	fmt.Println(snapshot)
	fmt.Printf("catalog ready: %d tools\n", len(tool.Infos()))
}
