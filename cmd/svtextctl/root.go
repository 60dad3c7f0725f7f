package main

import (
	"github.com/spf13/cobra"

	"github.com/hdltoolsmith/svtext/waiver"
)

var (
	rootCmd = &cobra.Command{
		Use:          "svtextctl",
		Short:        "svtextctl",
		SilenceUsage: true,
		Long:         `Demonstration CLI over the text-structure, diff, waiver, format and equivalence packages.`,
	}

	configPath  string
	triggerWord string
	debugTree   bool
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".svtext-waivers.yaml", "path to waiver config file")
	rootCmd.PersistentFlags().StringVarP(&triggerWord, "trigger", "t", "", "override the waiver directive trigger word")
	rootCmd.PersistentFlags().BoolVar(&debugTree, "debug-tree", false, "print the parsed syntax tree via repr (used by the waivers command only)")
	return rootCmd.Execute()
}

func loadWaiverConfig() (waiver.Config, error) {
	cfg, err := waiver.LoadConfig(configPath)
	if err != nil {
		return waiver.Config{}, err
	}
	if triggerWord != "" {
		cfg.Trigger = triggerWord
	}
	return cfg, nil
}
