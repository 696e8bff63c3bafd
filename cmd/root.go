package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goearth/internal/config"
	"github.com/alexiusacademia/goearth/internal/logging"
	"github.com/alexiusacademia/goearth/internal/pipeline"
	"github.com/alexiusacademia/goearth/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	// Engine overrides shared by the survey commands
	ruleFlag         string
	strictFlag       bool
	defaultSlopeFlag float64

	appConfig = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "goearth",
	Short: "Roadway Cutting Earthwork Tool",
	Long: `goearth - Go Earthwork Cross-Section and Volume Calculator

A CLI tool for computing roadway cutting earthwork from surveyed
cross-section stations.

This tool helps highway engineers:
  - Validate survey sheets (chainage, widths, height, coefficient, slope)
  - Build cut/fill cross-sections per chainage station
  - Integrate areas into inter-station and total volumes
  - Export volume sheets and cross-section plots

Volumes use the average end-area rule unless --rule single-end is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goearth v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Earthwork Cross-Section and Volume Calculator        ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Cross-section area per station (fresh, back and box cutting)")
		fmt.Println("    • Average end-area and single-end volume integration")
		fmt.Println("    • Strict or lenient cutting slope validation")
		fmt.Println("    • Excel volume sheets and PNG/SVG/PDF cross-section plots")
		fmt.Println()
		fmt.Println("  Use 'goearth --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every skipped row and defaulted slope")

	rootCmd.PersistentFlags().StringVar(&ruleFlag, "rule", "", "Volume rule: end-area or single-end (default end-area)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "Abort on a missing, zero or invalid cutting slope")
	rootCmd.PersistentFlags().Float64Var(&defaultSlopeFlag, "default-slope", 0, "Cutting slope used for blank cells in lenient mode (degrees, default 75)")
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		appConfig = cfg
	}

	logCfg := appConfig.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// engineConfig merges the config file with any engine flags given
func engineConfig(cmd *cobra.Command) (pipeline.Config, error) {
	cfg := appConfig
	flags := cmd.Flags()

	if flags.Changed("rule") {
		cfg.Engine.Rule = ruleFlag
	}
	if flags.Changed("strict") {
		if strictFlag {
			cfg.Engine.SlopePolicy = "strict"
		} else {
			cfg.Engine.SlopePolicy = "lenient"
		}
	}
	if flags.Changed("default-slope") {
		cfg.Engine.DefaultSlopeAngle = defaultSlopeFlag
	}

	pc, err := cfg.Pipeline()
	if err != nil {
		return pc, err
	}
	pc.Logger = logging.Logger
	return pc, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
