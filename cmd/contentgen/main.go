package main

import (
	"context"
	"fmt"
	"os"

	"github.com/beeflow/contentgen/internal/adapters/driven/ai"
	"github.com/beeflow/contentgen/internal/adapters/driven/config/file"
	"github.com/beeflow/contentgen/internal/adapters/driven/storage/sqlite"
	"github.com/beeflow/contentgen/internal/adapters/driving/cli"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
	"github.com/beeflow/contentgen/internal/core/services"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.ConfigureServices(buildServices())

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the adapters into the core services. A failing
// adapter degrades its service rather than aborting startup; commands
// report what is missing when they need it.
func buildServices() cli.ServiceSet {
	var set cli.ServiceSet

	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings unavailable: %v\n", err)
		return set
	}
	settings := services.NewSettingsService(configStore, ai.NewConfigValidator())
	set.Settings = settings

	schemaStore, err := file.NewSchemaStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: schema validation unavailable: %v\n", err)
	} else {
		validation := services.NewValidationService(schemaStore)
		set.Validation = validation
		set.SchemaWatch = func(ctx context.Context) error {
			return schemaStore.Watch(ctx, validation.Reload)
		}
	}

	// A missing API key leaves the client nil; generation then reports
	// the client as unavailable while validation and settings keep working.
	var client driven.CompletionClient
	app, err := settings.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: reading settings: %v\n", err)
	} else {
		client, err = ai.CreateCompletionClient(&app.Client)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: completion client unavailable: %v\n", err)
		}
	}

	var history driven.FeedbackStore
	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: feedback history unavailable: %v\n", err)
	} else {
		history = store.FeedbackStore()
	}

	set.Feedback = services.NewFeedbackService(client, nil, settings, history)

	return set
}
