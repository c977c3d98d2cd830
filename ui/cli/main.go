// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Passwdgen using the
// Cobra library. It defines the root command (the interactive requester),
// the serve and request subcommands, flags, and the main entry point for
// execution.

package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/passwdgen/passwdgen/buildvars"
	"github.com/passwdgen/passwdgen/internal/client"
	"github.com/passwdgen/passwdgen/internal/config"
	"github.com/passwdgen/passwdgen/internal/logging"
	"github.com/passwdgen/passwdgen/internal/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var verbose bool
var showVersionFlag bool
var cfgFile string

var appConfig config.Config

// configDefaults seeds viper with the built-in defaults: loopback address,
// port 8080, a 5 second reply deadline.
func configDefaults() map[string]any {
	return map[string]any{
		"server.host":       "127.0.0.1",
		"server.port":       8080,
		"server.rate_limit": 100.0,
		"server.rate_burst": 200,
		"client.host":       "127.0.0.1",
		"client.port":       8080,
		"client.timeout":    "5s",
		"log.level":         "info",
	}
}

// setupDefaultServices resolves the configuration for the invoked command
// and applies the log level. It runs as the root PersistentPreRunE so every
// subcommand sees the same resolved appConfig.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := configDefaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// First run: persist a default config the user can inspect and edit.
	if optionalConfigPath == nil {
		if path, perr := config.UserConfigPath(); perr == nil {
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
					// Log a warning but don't fail, as the app can run on defaults.
					logging.Warnf("Could not write default config file: %v", writeErr)
				}
			}
		}
	}

	// Post-process config to ensure critical values are not empty, falling
	// back to defaults. This handles config files with empty values.
	if appConfig.Server.Host == "" {
		appConfig.Server.Host = defaults["server.host"].(string)
	}
	if appConfig.Client.Host == "" {
		appConfig.Client.Host = defaults["client.host"].(string)
	}
	if appConfig.Log.Level == "" {
		appConfig.Log.Level = defaults["log.level"].(string)
	}

	logging.SetLevel(appConfig.Log.Level)
	if verbose {
		logging.SetLevel("debug")
	}

	return nil
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			// This is unlikely if Changed() is true, but good practice.
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwdgen",
		Short: "Passwdgen generates passwords over a UDP request/response protocol.",
		Long: `Passwdgen is a small password generation service: a responder listens
for single-datagram requests ("category code + length") and replies with a
freshly generated password of that category.

Running without a subcommand launches the interactive requester menu.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Printf("%s\n", compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config is already resolved by PersistentPreRunE, so we can
			// just run the interactive requester.
			c := client.New(appConfig.Client.Host, appConfig.Client.Port, appConfig.Client.Timeout)
			return tui.Run(c)
		},
	}

	cmd.Version = compositeVersion()

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newRequestCmd())

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logging)")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("client.host", "127.0.0.1", "Responder address the requester talks to")
	cmd.PersistentFlags().Int("client.port", 8080, "Responder UDP port the requester talks to")

	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion combines the linker-injected variables with whatever
// the Go build info carries; explicit ldflags win, build info fills gaps.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" && resolvedVersion == "dev" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
