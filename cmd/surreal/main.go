package main

import (
	"fmt"
	"log"
	"os"

	"surreal/internal/config"
	"surreal/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	presetName string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "surreal",
		Short:         "animated particle field background",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runWindow(cfg)
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&presetName, "preset", "", "start from a named preset")
	defaults.Bind(pf)

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open the experience in a window",
		RunE:  rootCmd.RunE,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
		},
	}

	rootCmd.AddCommand(windowCmd, newSnapshotCmd(), newBenchCmd(), configCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers the preset, the config file and any flags given on the
// command line, in that order, then installs the logger.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", presetName)
		}
	}
	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	overrides := pflag.NewFlagSet("overrides", pflag.ContinueOnError)
	cfg.Bind(overrides)
	var setErr error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if setErr != nil || overrides.Lookup(f.Name) == nil {
			return
		}
		setErr = overrides.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return nil, setErr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}
