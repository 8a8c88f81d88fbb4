package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/oneaddr/asm"
	"github.com/ezrec/oneaddr/image"
)

// SOURCE_EXT is the required extension of assembly source files.
const SOURCE_EXT = ".asm"

type assembleOptions struct {
	*globalOptions
	output string
	force  bool
}

func newAssembleCommand(global *globalOptions) *cobra.Command {
	opts := &assembleOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "assemble FILE" + SOURCE_EXT,
		Short: "Assemble a source file into .mc and .dat images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("force") {
				opts.cfg.Force = opts.force
			}
			return runAssemble(opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "base name of the output images (default FILE without extension)")
	flags.BoolVarP(&opts.force, "force", "f", false, "replace existing output images")

	return cmd
}

func runAssemble(opts *assembleOptions, source string) (err error) {
	if filepath.Ext(source) != SOURCE_EXT {
		err = errors.Errorf("%v: input file must be a %v file", source, SOURCE_EXT)
		return
	}

	info, err := os.Stat(source)
	if err != nil {
		return
	}
	if info.IsDir() {
		err = errors.Errorf("%v: you must have a valid file to assemble", source)
		return
	}

	dir, code, data := opts.cfg.Outputs(source, opts.output)
	out := &image.Output{FS: image.DirFS(dir), Code: code, Data: data}

	if !opts.cfg.Force {
		var exists bool
		exists, err = out.Exists()
		if err != nil {
			return
		}
		if exists {
			err = errors.Wrapf(image.ErrOutputExists, "%v", strings.Join(out.Names(), ", "))
			return
		}
	}

	codeFile, dataFile, err := out.Create()
	if err != nil {
		err = errors.Wrapf(err, "%v", dir)
		return
	}

	assembler := &asm.Assembler{Verbose: opts.cfg.Verbose}
	err = assembler.Assemble(asm.SourceFile(source), codeFile, dataFile)
	if err != nil {
		err = errors.Wrap(err, source)
		rerr := out.Remove()
		if rerr != nil {
			err = multierror.Append(err, rerr)
		}
		return
	}

	logrus.Infof("%v: program assembled correctly", source)
	logrus.Debugf("%v: wrote %v", source, strings.Join(out.Names(), ", "))

	return
}
