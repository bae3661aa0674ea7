package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

// locationOptions are the regions offered by the wizard. Any region can be
// set by editing the file afterwards.
var locationOptions = []huh.Option[string]{
	huh.NewOption("East US (eastus)", "eastus"),
	huh.NewOption("East US 2 (eastus2)", "eastus2"),
	huh.NewOption("West Europe (westeurope)", "westeurope"),
	huh.NewOption("North Europe (northeurope)", "northeurope"),
	huh.NewOption("Sweden Central (swedencentral)", "swedencentral"),
	huh.NewOption("Brazil South (brazilsouth)", "brazilsouth"),
}

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	BaseName         string
	Suffix           string
	Environment      sizing.Tier
	Stage            string
	Location         string
	StrictStageOrder bool
}

// RunWizard asks for the fields of a tierplan.yaml.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		Environment: sizing.TierDev,
		Stage:       "0",
		Location:    "eastus",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Base name").
				Description("Prefix of every resource name (DNS-safe, lowercase)").
				Placeholder("workshop").
				Value(&result.BaseName).
				Validate(validateBaseName),
			huh.NewInput().
				Title("Suffix (optional)").
				Description("Short unique id per attendee, e.g. initials").
				Placeholder("ab01").
				Value(&result.Suffix).
				Validate(validateSuffix),
		),

		huh.NewGroup(
			huh.NewSelect[sizing.Tier]().
				Title("Environment").
				Description("Controls SKU, capacity and replica counts").
				Options(
					huh.NewOption("Development (smallest SKUs)", sizing.TierDev),
					huh.NewOption("Staging", sizing.TierStaging),
					huh.NewOption("Production (never weaker than staging)", sizing.TierProd),
				).
				Value(&result.Environment),
			huh.NewInput().
				Title("Stage").
				Description("Workshop module you are working on (0-30)").
				Value(&result.Stage).
				Validate(validateStage),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Location").
				Description("Azure region").
				Options(locationOptions...).
				Value(&result.Location),
			huh.NewConfirm().
				Title("Strict stage order?").
				Description("Reject catalogs where a resource depends on a later module").
				Value(&result.StrictStageOrder),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToSpec converts the wizard result to a Spec.
func (r *WizardResult) ToSpec() *Spec {
	spec := Default()
	spec.BaseName = r.BaseName
	spec.Suffix = r.Suffix
	spec.Environment = r.Environment
	spec.Location = r.Location
	spec.StrictStageOrder = r.StrictStageOrder
	if stage, err := strconv.Atoi(r.Stage); err == nil {
		spec.Stage = stage
	}
	return spec
}

// validateStage validates the stage entered as text.
func validateStage(s string) error {
	stage, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("stage must be a number")
	}
	if stage < 0 {
		return errors.New("stage must be >= 0")
	}
	return nil
}
