package main

import (
	"context"
	"log"
	"os"

	"github.com/Tomas-vilte/MateReview/internal/cli/command/doctor"
	"github.com/Tomas-vilte/MateReview/internal/cli/command/review"
	"github.com/Tomas-vilte/MateReview/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/anthropic"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/gemini"
	airegistry "github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateReview/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	cfgApp, err := cfg.LoadFromEnv()
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, err
	}

	providers := airegistry.NewReviewProviderRegistry()
	if err := providers.Register(cfg.ProviderGemini, gemini.NewProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Gemini: %v", err)
	}
	if err := providers.Register(cfg.ProviderAnthropic, anthropic.NewProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Anthropic: %v", err)
	}

	commandRegistry := registry.NewRegistry(cfgApp, translations)
	commandFactories := map[string]registry.CommandFactory{
		"review": review.NewReviewCommand(providers),
		"doctor": doctor.NewDoctorCommand(providers),
	}

	for name, factory := range commandFactories {
		if err := commandRegistry.Register(name, factory); err != nil {
			return nil, err
		}
	}

	app := &cli.Command{
		Name:        "mate-review",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    commandRegistry.CreateCommands(),
	}

	return app, nil
}
