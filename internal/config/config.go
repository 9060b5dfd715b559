package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersionInfo returns a formatted version string
func GetVersionInfo() string {
	return fmt.Sprintf("apidocx version %s, commit %s, built at %s", version, commit, date)
}

const (
	defaultSpecName   = "swagger.json"
	defaultOutputName = "ApiDocumentation.docx"
)

type Config struct {
	SpecFile        string        `mapstructure:"spec_file"`
	OutputFile      string        `mapstructure:"output_file"`
	AdjustmentsFile string        `mapstructure:"adjustments_file"`
	Strict          bool          `mapstructure:"strict"`
	Preview         bool          `mapstructure:"preview"`
	Logging         LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"`
	OutputPath   string `mapstructure:"output_path"`
	AppendToFile bool   `mapstructure:"append_to_file"`
}

// InitFlags initializes command line flags (without parsing)
func InitFlags() {
	pflag.String("spec-file", "", "Path to the Swagger/OpenAPI spec file")
	pflag.String("output-file", "", "Path the generated document is written to")
	pflag.String("adjustments-file", "", "Path to the adjustments file")
	pflag.Bool("strict", false, "Fail when the spec produces parser diagnostics")
	pflag.Bool("preview", false, "Print a styled preview to the terminal instead of writing a file")
	// Note: no pflag.Parse() here as it's called in main.go
}

// DocumentsDir resolves the user's documents directory, falling back to the
// working directory when the home directory cannot be determined.
func DocumentsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Documents")
}

func Load() (*Config, error) {
	viper.Reset() // Ensure clean state

	viper.SetEnvPrefix("APIDOCX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}

	docs := DocumentsDir()
	viper.SetDefault("spec_file", filepath.Join(docs, defaultSpecName))
	viper.SetDefault("output_file", filepath.Join(docs, defaultOutputName))
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")

	// An optional config.yaml in the working directory overrides the defaults
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Flags and environment take precedence over file values
	if specFile := viper.GetString("spec-file"); specFile != "" {
		config.SpecFile = specFile
	}
	if outputFile := viper.GetString("output-file"); outputFile != "" {
		config.OutputFile = outputFile
	}
	if adjustmentsFile := viper.GetString("adjustments-file"); adjustmentsFile != "" {
		config.AdjustmentsFile = adjustmentsFile
	}
	// "strict" and "preview" share their key with the bound flags, so viper
	// already resolved their precedence during Unmarshal.
	config.Strict = viper.GetBool("strict")
	config.Preview = viper.GetBool("preview")

	if config.SpecFile == "" {
		return nil, fmt.Errorf("spec file is required, please adjust the config or pass --spec-file or APIDOCX_SPEC_FILE environment variable")
	}
	if config.OutputFile == "" {
		return nil, fmt.Errorf("output file is required, please adjust the config or pass --output-file or APIDOCX_OUTPUT_FILE environment variable")
	}

	return &config, nil
}
