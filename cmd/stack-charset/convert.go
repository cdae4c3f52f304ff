package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackvity/stack-charset/internal/cli/config"
	"github.com/stackvity/stack-charset/pkg/charset"
)

var convertCmd = &cobra.Command{
	Use:   "convert <path> --to <encoding>",
	Short: "Convert a file from its detected encoding to a target encoding.",
	Long: `convert detects the source encoding of the file, decodes its full content
and re-encodes it under the target encoding. The result is written to stdout
or, with -o, to a file.

Conversion is strict: a source byte sequence invalid under the detected
encoding, or a character the target encoding cannot represent, fails the
command instead of being silently substituted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, logger, err := config.LoadAndValidate(cfgFile, verbose, cmd.Flags())
		if err != nil {
			return err
		}

		target, _ := cmd.Flags().GetString("to")
		outPath, _ := cmd.Flags().GetString("out")

		converted, err := charset.ConvertFile(args[0], target, opts)
		if err != nil {
			return err
		}
		logger.Debug("converted file",
			"path", args[0], "target", target, "bytes", len(converted))

		if outPath == "" {
			_, err = cmd.OutOrStdout().Write(converted)
			return err
		}
		if err := os.WriteFile(outPath, converted, 0o644); err != nil {
			return fmt.Errorf("writing %q: %w", outPath, err)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("to", "", "Required. Target encoding name (e.g. utf-8, windows-1252)")
	convertCmd.Flags().StringP("out", "o", "", "Output file path (default stdout)")
	_ = convertCmd.MarkFlagRequired("to")
}
