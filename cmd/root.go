package cmd

import (
	"fmt"
	"os"
	"time"

	"randarray/pkg/generator"
	"randarray/pkg/output"
	"randarray/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	cfgFile string
	verbose bool
	version = "1.0.0"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "randarray",
		Short: "Generate a C array literal of random integers",
		Long: `randarray writes N uniformly distributed random integers from [min, max]
to a file as a C-style array initializer:

  {12, 907, 33, ...};

Example:
  randarray -o input.txt -n 50000 --min 1 --max 1000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.InitLogger(verbose)
		},
		RunE: runGenerate,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug messages and generation statistics")

	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "YAML config file (flags override its values)")
	rootCmd.Flags().StringP("output", "o", utils.DefaultOutput, "Output file")
	rootCmd.Flags().IntP("count", "n", utils.DefaultCount, "Number of integers to generate")
	rootCmd.Flags().Int64("min", utils.DefaultMin, "Smallest value (inclusive)")
	rootCmd.Flags().Int64("max", utils.DefaultMax, "Largest value (inclusive)")
	rootCmd.Flags().Uint64P("seed", "s", 0, "Random seed for reproducible output (random if unset)")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		utils.Error.Println(err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := utils.DefaultConfig()
	if cfgFile != "" {
		fileCfg, err := utils.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		cfg.Merge(fileCfg)
		utils.Debug.Printf("Loaded config from %s\n", cfgFile)
	}
	cfg.Merge(flagOverrides(cmd.Flags()))

	params := generator.Params{
		Count: *cfg.Count,
		Min:   *cfg.Min,
		Max:   *cfg.Max,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	gen := generator.NewNumericGenerator(cfg.Seed)
	utils.Debug.Printf("Count: %d | Range: [%d, %d] | Seed: %d\n", params.Count, params.Min, params.Max, gen.Seed)

	start := time.Now()
	values, err := gen.Generate(params)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	n, err := output.NewWriter(cfg.Output).Write(values)
	if err != nil {
		return err
	}
	utils.Debug.Printf("Wrote %d bytes to %s\n", n, cfg.Output)

	if verbose {
		generator.Summarize(values, elapsed).Print()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d random numbers have been written to %s in an array format.\n", params.Count, cfg.Output)
	return nil
}

// flagOverrides collects only the flags set on the command line
func flagOverrides(fs *pflag.FlagSet) *utils.Config {
	override := &utils.Config{}
	if fs.Changed("output") {
		override.Output, _ = fs.GetString("output")
	}
	if fs.Changed("count") {
		count, _ := fs.GetInt("count")
		override.Count = &count
	}
	if fs.Changed("min") {
		lo, _ := fs.GetInt64("min")
		override.Min = &lo
	}
	if fs.Changed("max") {
		hi, _ := fs.GetInt64("max")
		override.Max = &hi
	}
	if fs.Changed("seed") {
		seed, _ := fs.GetUint64("seed")
		override.Seed = &seed
	}
	return override
}
