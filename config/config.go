package config

import (
	"fmt"
	"os"

	"github.com/meysamhadeli/decomment/constants/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config represents the structure of the configuration file
type Config struct {
	Version                 string   `mapstructure:"version"`
	Theme                   string   `mapstructure:"theme"`
	PreservePatterns        []string `mapstructure:"preserve_patterns"`
	OverrideDefaultPreserve bool     `mapstructure:"override_default_preserve"`
	BackupDir               string   `mapstructure:"backup_dir"`
	Exclude                 []string `mapstructure:"exclude"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Version:                 "1.0.0",
	Theme:                   "dracula",
	PreservePatterns:        []string{},
	OverrideDefaultPreserve: false,
	BackupDir:               "",
	Exclude:                 []string{},
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Set default values using Viper
	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()

	// Explicitly bind environment variables to config keys
	bindEnv()

	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("decomment-config")
		viper.AddConfigPath(cwd)

		// Support both JSON and YAML formats
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			// If YAML fails, try JSON; with neither present we continue with defaults
			viper.SetConfigType("json")
			_ = viper.ReadInConfig()
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("preserve_patterns", DefaultConfig.PreservePatterns)
	viper.SetDefault("override_default_preserve", DefaultConfig.OverrideDefaultPreserve)
	viper.SetDefault("backup_dir", DefaultConfig.BackupDir)
	viper.SetDefault("exclude", DefaultConfig.Exclude)
}

// bindEnv explicitly binds environment variables to configuration keys.
// Only the backup store location is environment-driven.
func bindEnv() {
	_ = viper.BindEnv("backup_dir", "DECOMMENT_BACKUP_DIR")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("preserve_patterns", rootCmd.Flags().Lookup("preserve"))
	_ = viper.BindPFlag("override_default_preserve", rootCmd.Flags().Lookup("no-default-preserve"))
	_ = viper.BindPFlag("backup_dir", rootCmd.Flags().Lookup("backup-dir"))
	_ = viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
}

// InitFlags initializes the configuration flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains the settings for the application.")

	rootCmd.Flags().String("theme", DefaultConfig.Theme, "Set the syntax highlighting theme for dry-run previews. (e.g., 'dracula', 'light', 'dark')")
	rootCmd.Flags().StringSlice("preserve", DefaultConfig.PreservePatterns, "Additional regex pattern preserved inside comments; repeatable, unioned with the defaults.")
	rootCmd.Flags().Bool("no-default-preserve", DefaultConfig.OverrideDefaultPreserve, "Use only the user-supplied preserve patterns instead of unioning them with the defaults.")
	rootCmd.Flags().String("backup-dir", DefaultConfig.BackupDir, "Override the backup store location (default: user cache directory).")
	rootCmd.Flags().StringSlice("exclude", DefaultConfig.Exclude, "Glob pattern of paths to skip during the scan; repeatable.")
}
