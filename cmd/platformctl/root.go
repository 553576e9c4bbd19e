package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/platformfs/pkg/platform"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configFile   string
	writableDir  string
	resourcesDir string
	settingsDir  string
	logLevel     string
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "platformctl",
		Short: "Inspect and manage the map data directories",
		Long: `platformctl resolves data files across the writable, resources and settings
directories, lists and removes directory trees, and creates data directories.
Directories come from --config, PLATFORM_* environment variables and flags,
in increasing order of precedence.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "YAML config file")
	pf.StringVar(&flags.writableDir, "writable", "", "writable directory")
	pf.StringVar(&flags.resourcesDir, "resources", "", "resources directory")
	pf.StringVar(&flags.settingsDir, "settings", "", "settings directory")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newResolveCommand(flags))
	cmd.AddCommand(newListCommand(flags))
	cmd.AddCommand(newRmTreeCommand(flags))
	cmd.AddCommand(newMkdirCommand(flags))
	cmd.AddCommand(newDirsCommand(flags))
	cmd.AddCommand(newFontsCommand(flags))

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  `Print the version number of platformctl`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "platformctl version %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

// loadPlatform builds a Platform from the config file, the environment and
// the global flags.
func loadPlatform(cmd *cobra.Command, flags *globalFlags) (*platform.Platform, error) {
	var (
		cfg platform.Config
		err error
	)
	if flags.configFile != "" {
		cfg, err = platform.LoadConfigFile(flags.configFile)
	} else {
		cfg, err = platform.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	if flags.writableDir != "" {
		cfg.WritableDir = flags.writableDir
	}
	if flags.resourcesDir != "" {
		cfg.ResourcesDir = flags.resourcesDir
	}
	if flags.settingsDir != "" {
		cfg.SettingsDir = flags.settingsDir
	}
	if flags.logLevel != "" {
		if _, err := platform.LogLevelFromString(flags.logLevel); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", flags.logLevel, err)
		}
		cfg.LogLevel = flags.logLevel
	}

	level, err := platform.LogLevelFromString(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := platform.NewLogger(cmd.ErrOrStderr(), level)
	return platform.New(cfg, platform.WithLogger(logger)), nil
}
