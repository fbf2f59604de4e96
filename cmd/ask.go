package cmd

import (
	"errors"
	"fmt"

	"dltime-cli/cmd/config"
	"dltime-cli/cmd/utils"
	"dltime-cli/internal/calc"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

const customSpeedChoice = "Custom speed"

// askOne is swapped out in tests.
var askOne = survey.AskOne

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer a few prompts to estimate a download time",
	Long: `Ask walks through the file size, its unit and the connection speed one
prompt at a time. Speeds can be typed or picked from the configured presets.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isInteractiveTerminal() {
			return fmt.Errorf("dlt ask needs an interactive terminal; use 'dlt calc' instead")
		}
		return runAsk(activeConfig)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

// numericValidator adapts the calculator's field validation to survey.
func numericValidator(ans interface{}) error {
	text, ok := ans.(string)
	if !ok {
		return errors.New("cannot validate a non-text answer")
	}
	if res := calc.ValidateNumericInput(text); !res.IsValid {
		return errors.New(res.Error)
	}
	return nil
}

func runAsk(cfg *config.DltConfig) error {
	utils.OutputInfo("Sizes are binary (1 KB = 1024 bytes); speeds are decimal bits per second (1 Mbps = 1,000,000 bit/s)")
	for {
		req, err := askRequest(cfg)
		if err != nil {
			return err
		}

		est := calc.EstimateTransfer(req.sizeText, req.sizeUnit, req.speedText, req.speedUnit)
		if err := estimateError(est); err != nil {
			utils.OutputError("%v", err)
		} else {
			utils.OutputSuccess("Estimated download time: %s (%s)", est.Time, utils.FormatDuration(est.Seconds))
		}

		again := false
		if err := askOne(&survey.Confirm{Message: "Calculate another?", Default: false}, &again); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func askRequest(cfg *config.DltConfig) (calcRequest, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	defSize, err := cfg.DefaultSizeUnit()
	if err != nil {
		return calcRequest{}, fmt.Errorf("default size unit: %w", err)
	}
	defSpeed, err := cfg.DefaultSpeedUnit()
	if err != nil {
		return calcRequest{}, fmt.Errorf("default speed unit: %w", err)
	}

	var req calcRequest

	if err := askOne(&survey.Input{Message: "File size:"}, &req.sizeText, survey.WithValidator(numericValidator)); err != nil {
		return calcRequest{}, err
	}
	sizeUnit, err := askUnit("Size unit:", calc.FileSizeUnits, defSize)
	if err != nil {
		return calcRequest{}, err
	}
	req.sizeUnit = sizeUnit

	presets := cfg.Presets()
	choices := make([]string, 0, len(presets)+1)
	presetMap := make(map[string]config.Preset)
	for _, p := range presets {
		choice := p.String()
		choices = append(choices, choice)
		presetMap[choice] = p
	}
	choices = append(choices, customSpeedChoice)

	var selected string
	if err := askOne(&survey.Select{Message: "Connection:", Options: choices, Default: customSpeedChoice}, &selected); err != nil {
		return calcRequest{}, err
	}
	if p, ok := presetMap[selected]; ok {
		req.speedText = p.SpeedText()
		req.speedUnit = p.Unit
		return req, nil
	}

	if err := askOne(&survey.Input{Message: "Download speed:"}, &req.speedText, survey.WithValidator(numericValidator)); err != nil {
		return calcRequest{}, err
	}
	speedUnit, err := askUnit("Speed unit:", calc.SpeedUnits, defSpeed)
	if err != nil {
		return calcRequest{}, err
	}
	req.speedUnit = speedUnit
	return req, nil
}

func askUnit[T ~string](message string, units []T, def T) (T, error) {
	options := make([]string, len(units))
	for i, u := range units {
		options[i] = string(u)
	}
	var selected string
	if err := askOne(&survey.Select{Message: message, Options: options, Default: string(def)}, &selected); err != nil {
		var zero T
		return zero, err
	}
	return T(selected), nil
}
