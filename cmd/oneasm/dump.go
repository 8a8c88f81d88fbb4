package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ezrec/oneaddr/asm"
	"github.com/ezrec/oneaddr/image"
)

type dumpOptions struct {
	*globalOptions
	data bool
}

func newDumpCommand(global *globalOptions) *cobra.Command {
	opts := &dumpOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "dump IMAGE",
		Short: "Disassemble a raw memory image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.data, "data", "d", false, "image is a data segment, print signed values")

	return cmd
}

func runDump(w io.Writer, opts *dumpOptions, path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	words, err := image.Read(inf)
	if err != nil {
		err = errors.Wrap(err, path)
		return
	}

	for addr, word := range words {
		text := asm.Code(word).String()
		if opts.data {
			text = fmt.Sprintf(".number %d", int16(word))
		}
		_, err = fmt.Fprintf(w, "%04x  %04x  %v\n", addr, word, text)
		if err != nil {
			return
		}
	}

	return
}
