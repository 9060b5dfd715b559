package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"

	"github.com/apidocx/apidocx/internal/config"
	"github.com/apidocx/apidocx/internal/logger"
	"github.com/apidocx/apidocx/internal/parser"
	"github.com/apidocx/apidocx/internal/renderer"
)

func main() {
	Execute()
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "apidocx",
	Short: "Generate a Word reference document from a Swagger/OpenAPI spec",
	Long: `apidocx reads a Swagger/OpenAPI specification and renders a color-coded
Word document summarizing each endpoint: method, path, description,
parameters, and success response.`,
	Run: runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Place version check in PreRun to ensure flags are parsed first
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		versionFlag, _ := cmd.Flags().GetBool("version")
		if versionFlag {
			pterm.Info.Println(config.GetVersionInfo())
			os.Exit(0)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	config.InitFlags()
	rootCmd.PersistentFlags().AddFlagSet(pflag.CommandLine)
	rootCmd.PersistentFlags().BoolP("version", "v", false, "Show version information")
}

// runGenerate drives the whole pipeline: load config, parse the spec,
// render the document (or print the terminal preview).
func runGenerate(cmd *cobra.Command, args []string) {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printf("\nCaught panic: %v\n", r)
			pterm.Error.Printf("%s\n", debug.Stack())
			os.Exit(2)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitLogger(&cfg.Logging); err != nil {
		pterm.Error.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		parser.Module,
		renderer.Module,
		fx.Invoke(generate),
	)
	if err := app.Err(); err != nil {
		pterm.Error.Printf("Error generating documentation: %v\n", err)
		os.Exit(1)
	}
}

func generate(cfg *config.Config, p parser.Parser, r renderer.Renderer) error {
	if err := p.Init(cfg.SpecFile, cfg.AdjustmentsFile); err != nil {
		return err
	}
	records := p.Records()

	if cfg.Preview {
		fmt.Print(renderer.Preview(records))
		pterm.Info.Printfln("Previewed %d endpoint(s); no file written.", len(records))
		return nil
	}

	if err := r.Render(records, cfg.OutputFile); err != nil {
		return err
	}

	fmt.Println(cfg.OutputFile)
	pterm.Success.Printfln("Documentation generated with %d endpoint(s).", len(records))
	return nil
}
