// Package cmd implements the command-line interface for WebNode.
// It provides the root command and subcommands for generating web-app
// launchers.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/webnode/cmd/generate"
	cmdsuggestions "github.com/jonesrussell/webnode/cmd/suggestions"
	"github.com/jonesrussell/webnode/internal/config"
)

// Version is the application version, overridable at build time.
const Version = "1.0.0"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands.
	Debug bool

	// rootCmd represents the root command for the WebNode CLI.
	rootCmd = &cobra.Command{
		Use:   "webnode",
		Short: "Generate standalone web-app launchers",
		Long: `WebNode turns a URL into a standalone web-app launcher: it fetches the
page's favicon, saves it locally, and writes a launcher script that opens
the page in its own window.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get the debug flag before creating the logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ~/.webnode/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("webnode version %s\n", Version)
		},
	})

	rootCmd.AddCommand(generate.Command())
	rootCmd.AddCommand(generate.PreviewCommand())
	rootCmd.AddCommand(cmdsuggestions.Command())
}

// initConfig reads in the config file and environment variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.webnode")
		}
	}

	// Environment variables take precedence over config file values.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; defaults and environment variables suffice.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file: %v (using defaults)\n", err)
		}
	}

	if err := bindFlagsAndEnv(); err != nil {
		return err
	}

	setupDevelopmentLogging()

	return nil
}

// bindFlagsAndEnv binds command-line flags and well-known environment
// variables to config keys.
func bindFlagsAndEnv() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("logger.encoding", "LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}
	if err := viper.BindEnv("generator.base_folder", "WEBNODE_BASE_FOLDER"); err != nil {
		return fmt.Errorf("failed to bind WEBNODE_BASE_FOLDER: %w", err)
	}
	return nil
}

// setupDevelopmentLogging raises the log level when debug mode is requested
// via flag or config.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	if debugFlag {
		viper.Set("logger.level", "debug")
		viper.Set("logger.development", true)
		viper.Set("logger.encoding", "console")
	}
	Debug = debugFlag
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "webnode",
		"version":     Version,
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":       "info",
		"encoding":    "console",
		"development": false,
	})

	viper.SetDefault("generator", map[string]any{
		"base_folder":     "",
		"request_timeout": config.DefaultRequestTimeout.String(),
		"user_agent":      "",
	})
}
