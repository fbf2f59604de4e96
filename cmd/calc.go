package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"dltime-cli/cmd/config"
	"dltime-cli/cmd/utils"
	"dltime-cli/internal/calc"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type calcOptions struct {
	output  string
	verbose bool
}

var calcOpts calcOptions

// calcRequest is a parsed `dlt calc` invocation. Magnitudes stay raw text
// so they go through the same validation as the form.
type calcRequest struct {
	sizeText  string
	sizeUnit  calc.FileSizeUnit
	speedText string
	speedUnit calc.SpeedUnit
}

// calcResult is the machine-readable result of `dlt calc`.
type calcResult struct {
	FileSize      float64           `json:"file_size" yaml:"file_size"`
	FileSizeUnit  calc.FileSizeUnit `json:"file_size_unit" yaml:"file_size_unit"`
	Speed         float64           `json:"speed" yaml:"speed"`
	SpeedUnit     calc.SpeedUnit    `json:"speed_unit" yaml:"speed_unit"`
	Bits          float64           `json:"bits" yaml:"bits"`
	BitsPerSecond float64           `json:"bits_per_second" yaml:"bits_per_second"`
	Seconds       float64           `json:"seconds" yaml:"seconds"`
	Time          string            `json:"time" yaml:"time"`
}

var calcCmd = &cobra.Command{
	Use:   "calc <size> [size-unit] <speed> [speed-unit]",
	Short: "Estimate a download time without the interactive form",
	Long: `Estimate how long a transfer takes and print it as HH:MM:SS.

Units may be separate arguments or attached to the number ("700MB").
Omitted units fall back to the configured defaults (MB and Mbps unless
changed in dlt.yaml or via DLT_SIZE_UNIT / DLT_SPEED_UNIT).`,
	Example: `  dlt calc 700 MB 8 Mbps
  dlt calc 1TB 100Mbps --output json
  dlt calc 4.7 GB 25 --verbose`,
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := parseCalcArgs(args, activeConfig)
		if err != nil {
			return err
		}
		return runCalc(cmd.OutOrStdout(), req, calcOpts)
	},
}

func init() {
	calcCmd.Flags().StringVarP(&calcOpts.output, "output", "o", outputText, "Output format: text, json or yaml")
	calcCmd.Flags().BoolVarP(&calcOpts.verbose, "verbose", "v", false, "Show humanized size, rate and duration")
	rootCmd.AddCommand(calcCmd)
}

// parseCalcArgs maps 2 to 4 positional arguments onto a request.
// With three arguments the middle one is a size unit when it names one,
// otherwise the last argument is the speed unit.
func parseCalcArgs(args []string, cfg *config.DltConfig) (calcRequest, error) {
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

	var sizeArgs, speedArgs []string
	switch len(args) {
	case 2:
		sizeArgs, speedArgs = args[:1], args[1:]
	case 3:
		if _, err := calc.ParseFileSizeUnit(args[1]); err == nil {
			sizeArgs, speedArgs = args[:2], args[2:]
		} else {
			sizeArgs, speedArgs = args[:1], args[1:]
		}
	case 4:
		sizeArgs, speedArgs = args[:2], args[2:]
	default:
		return calcRequest{}, fmt.Errorf("expected 2 to 4 arguments, got %d", len(args))
	}

	req := calcRequest{}
	req.sizeText, req.sizeUnit, err = quantityArg(sizeArgs, defSize, calc.ParseFileSizeUnit)
	if err != nil {
		return calcRequest{}, fmt.Errorf("file size unit: %w", err)
	}
	req.speedText, req.speedUnit, err = quantityArg(speedArgs, defSpeed, calc.ParseSpeedUnit)
	if err != nil {
		return calcRequest{}, fmt.Errorf("download speed unit: %w", err)
	}
	return req, nil
}

// quantityArg resolves "<n> <unit>", "<n><unit>" or "<n>".
func quantityArg[T ~string](args []string, fallback T, parse func(string) (T, error)) (string, T, error) {
	if len(args) == 2 {
		unit, err := parse(args[1])
		return args[0], unit, err
	}
	text, unit, ok := splitAttachedUnit(args[0], parse)
	if !ok {
		return args[0], fallback, nil
	}
	return text, unit, nil
}

// splitAttachedUnit splits "700MB" into "700" and MB when the suffix is a
// known unit.
func splitAttachedUnit[T ~string](arg string, parse func(string) (T, error)) (string, T, bool) {
	var zero T
	idx := strings.LastIndexFunc(arg, func(r rune) bool {
		return (r >= '0' && r <= '9') || r == '.'
	})
	if idx < 0 || idx == len(arg)-1 {
		return arg, zero, false
	}
	unit, err := parse(arg[idx+1:])
	if err != nil {
		return arg, zero, false
	}
	return arg[:idx+1], unit, true
}

func runCalc(out io.Writer, req calcRequest, opts calcOptions) error {
	format := strings.ToLower(strings.TrimSpace(opts.output))
	switch format {
	case "", outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", opts.output)
	}

	est := calc.EstimateTransfer(req.sizeText, req.sizeUnit, req.speedText, req.speedUnit)
	utils.LogFields("calc", logrus.Fields{
		"size":       req.sizeText,
		"size_unit":  req.sizeUnit,
		"speed":      req.speedText,
		"speed_unit": req.speedUnit,
		"result":     est.Time,
		"error":      est.Error,
	})
	if err := estimateError(est); err != nil {
		return err
	}

	size := calc.ParseLeadingFloat(req.sizeText)
	speed := calc.ParseLeadingFloat(req.speedText)
	res := calcResult{
		FileSize:      size,
		FileSizeUnit:  req.sizeUnit,
		Speed:         speed,
		SpeedUnit:     req.speedUnit,
		Bits:          calc.SizeToBits(size, req.sizeUnit),
		BitsPerSecond: calc.SpeedToBitsPerSecond(speed, req.speedUnit),
		Seconds:       est.Seconds,
		Time:          est.Time,
	}

	switch format {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	if !opts.verbose {
		_, err := fmt.Fprintln(out, res.Time)
		return err
	}
	_, err := fmt.Fprintf(out,
		"File size: %s %s (%s)\nSpeed:     %s %s (%s)\nTime:      %s (%s)\n",
		req.sizeText, req.sizeUnit, utils.FormatBits(res.Bits),
		req.speedText, req.speedUnit, utils.FormatBitRate(res.BitsPerSecond),
		res.Time, utils.FormatDuration(res.Seconds),
	)
	return err
}

// estimateError turns field and result messages into an error, or nil when
// the estimate is ready.
func estimateError(est calc.Estimate) error {
	if !est.Validation.AllValid {
		var errs []error
		if msg := est.Validation.FileSize.Error; msg != "" {
			errs = append(errs, fmt.Errorf("file size: %s", msg))
		}
		if msg := est.Validation.DownloadSpeed.Error; msg != "" {
			errs = append(errs, fmt.Errorf("download speed: %s", msg))
		}
		return errors.Join(errs...)
	}
	if est.Error != "" {
		return errors.New(est.Error)
	}
	return nil
}
