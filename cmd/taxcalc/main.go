package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rgehrsitz/taxcalc/internal/calculation"
	"github.com/rgehrsitz/taxcalc/internal/carryforward"
	"github.com/rgehrsitz/taxcalc/internal/compare"
	"github.com/rgehrsitz/taxcalc/internal/config"
	"github.com/rgehrsitz/taxcalc/internal/output"
	"github.com/rgehrsitz/taxcalc/internal/rates"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taxcalc",
	Short: "Dual-jurisdiction income tax estimator",
	Long:  "Estimates annual federal and state income tax liability with capital gains netting, deduction caps and multi-year carryforwards",
}

// buildEngine assembles a calculation engine from the shared flags
func buildEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	ratesFile, _ := cmd.Flags().GetString("rates")

	table := rates.DefaultTable()
	if ratesFile != "" {
		var err error
		table, err = rates.LoadOverride(ratesFile)
		if err != nil {
			return nil, err
		}
	}

	engine := calculation.NewEngineWithTable(table)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.Debug = true
		engine.SetLogger(simpleCLILogger{})
	}
	return engine, nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate one tax year's federal and state liability",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		engine, err := buildEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		cfDir, _ := cmd.Flags().GetString("carryforward-dir")
		store := carryforward.NewFileStore(cfDir)
		cf, err := store.Load(configData.Inputs.TaxYear)
		if err != nil {
			log.Fatal(err)
		}

		result, err := engine.RunYear(configData.Inputs, cf)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unsupported format %q (available: %s)",
				outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
		}
		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))

		if save, _ := cmd.Flags().GetBool("save-carryforward"); save {
			nextYear := configData.Inputs.TaxYear + 1
			if err := store.Save(nextYear, result.Carryforward); err != nil {
				log.Fatal(err)
			}
			fmt.Fprintf(os.Stderr, "Carryforward for %d written to %s\n", nextYear, cfDir)
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare the base case against the configured what-if scenarios",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		engine, err := buildEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		// Scenario runs are hypothetical: the carryforward is read once
		// and shared, never written back.
		cfDir, _ := cmd.Flags().GetString("carryforward-dir")
		cf, err := carryforward.NewFileStore(cfDir).Load(configData.Inputs.TaxYear)
		if err != nil {
			log.Fatal(err)
		}

		compSet, err := compare.NewCompareEngine(engine).Compare(configData, cf)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		switch output.NormalizeFormatName(outputFormat) {
		case "table", "console":
			fmt.Print((&compare.TableFormatter{}).Format(compSet))
		case "json":
			s, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(s)
		case "csv":
			s, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(s)
		default:
			log.Fatalf("unsupported format %q (available: table, json, csv)", outputFormat)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		// Dry-apply every scenario so bad adjustment keys surface here
		// rather than mid-comparison.
		for _, scenario := range configData.Scenarios {
			if _, err := compare.ApplyAdjustments(configData.Inputs, scenario.Adjustments); err != nil {
				log.Fatalf("scenario %q: %v", scenario.Name, err)
			}
		}

		fmt.Printf("Configuration file %s is valid\n", inputFile)
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show the modeled tax years and key parameters",
	Run: func(cmd *cobra.Command, args []string) {
		ratesFile, _ := cmd.Flags().GetString("rates")
		table := rates.DefaultTable()
		if ratesFile != "" {
			var err error
			table, err = rates.LoadOverride(ratesFile)
			if err != nil {
				log.Fatal(err)
			}
		}

		years := table.Years()
		fmt.Printf("Modeled tax years: %v\n", years)
		for _, y := range years {
			params, err := table.ForYear(y)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("\n%d:\n", y)
			fmt.Printf("  State rates: ordinary %s, short-term %s, long-term %s, surtax %s above $%s\n",
				params.State.OrdinaryRate, params.State.ShortTermRate, params.State.LongTermRate,
				params.State.SurtaxRate, params.State.SurtaxThreshold.StringFixed(0))
			fmt.Printf("  Federal NIIT rate: %s\n", params.Federal.NIITRate)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func main() {
	calculateCmd.Flags().String("format", "console-verbose", "Output format (console, console-verbose, json, csv)")
	calculateCmd.Flags().Bool("save-carryforward", true, "Write next year's carryforward file after calculating")
	compareCmd.Flags().String("format", "table", "Output format (table, json, csv)")

	for _, cmd := range []*cobra.Command{calculateCmd, compareCmd, ratesCmd} {
		cmd.Flags().String("rates", "", "YAML rates override file")
	}
	for _, cmd := range []*cobra.Command{calculateCmd, compareCmd} {
		cmd.Flags().String("carryforward-dir", "data", "Directory holding carryforward files")
		cmd.Flags().Bool("debug", false, "Enable debug logging")
	}

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
