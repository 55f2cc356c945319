package doctor

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	airegistry "github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/registry"
	"github.com/urfave/cli/v3"
)

// DoctorCommand chequea que el entorno tenga todo lo necesario para correr
// una revisión, sin tocar la red.
type DoctorCommand struct {
	providers *airegistry.ReviewProviderRegistry
}

func NewDoctorCommand(providers *airegistry.ReviewProviderRegistry) *DoctorCommand {
	return &DoctorCommand{
		providers: providers,
	}
}

func (d *DoctorCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "doctor",
		Aliases: []string{"dr"},
		Usage:   t.GetMessage("doctor_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if err := d.runHealthCheck(config); err != nil {
				fmt.Println(t.GetMessage("doctor_failed", 0, nil))
				return err
			}

			fmt.Println(t.GetMessage("doctor_ok", 0, map[string]interface{}{
				"Provider": config.Provider,
				"Model":    config.Model,
			}))
			return nil
		},
	}
}

func (d *DoctorCommand) runHealthCheck(config *cfg.Config) error {
	if err := cfg.Validate(config); err != nil {
		return err
	}

	factory, err := d.providers.Get(config.Provider)
	if err != nil {
		return err
	}
	return factory.ValidateConfig(config)
}
