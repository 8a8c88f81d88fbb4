package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/oneaddr/asm"
)

type symbolsOptions struct {
	*globalOptions
	format string
}

func newSymbolsCommand(global *globalOptions) *cobra.Command {
	opts := &symbolsOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "symbols FILE" + SOURCE_EXT,
		Short: "Print the symbol table of a source file",
		Long: `Symbols runs the first assembler pass over a source file and prints
every label with its segment and address, ordered by segment and address.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(cmd.OutOrStdout(), opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text, yaml or json")

	return cmd
}

func runSymbols(w io.Writer, opts *symbolsOptions, source string) (err error) {
	assembler := &asm.Assembler{Verbose: opts.cfg.Verbose}
	st, err := assembler.Symbols(asm.SourceFile(source))
	if err != nil {
		err = errors.Wrap(err, source)
		return
	}

	labels := slices.Collect(st.Labels())
	if labels == nil {
		labels = []asm.Label{}
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		printer := pp.New()
		printer.SetColoringEnabled(false)
		logrus.Debugf("%v: symbols %v", source, printer.Sprint(labels))
	}

	switch opts.format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSEGMENT\tADDRESS")
		for _, label := range labels {
			fmt.Fprintf(tw, "%v\t%v\t%d\n", label.Name, label.Segment, label.Address)
		}
		err = tw.Flush()
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(labels)
		if err == nil {
			err = enc.Close()
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(labels)
	default:
		err = errors.Errorf("unknown format %q", opts.format)
	}

	return
}
