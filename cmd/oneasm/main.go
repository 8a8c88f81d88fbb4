// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/oneaddr/config"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configFile string
	verbose    bool

	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "oneasm",
		Short: "Assembler for the 1-address accumulator CPU",
		Long: `Oneasm translates 1-address CPU assembly into a pair of raw memory
images for the logic simulator: FILE.mc holds the text segment machine
code, and FILE.dat holds the initial data segment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			opts.cfg, err = config.Load(opts.configFile)
			if err != nil {
				return
			}

			if cmd.Flags().Changed("verbose") {
				opts.cfg.Verbose = opts.verbose
			}

			if opts.cfg.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}

			return
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "configuration file (default "+config.DEFAULT_FILE+" if present)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")

	cmd.AddCommand(
		newAssembleCommand(opts),
		newSymbolsCommand(opts),
		newDumpCommand(opts),
		newConfigCommand(opts),
	)

	return cmd
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := newRootCommand()
	err := cmd.Execute()
	if err != nil {
		logrus.Errorf("%v: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
