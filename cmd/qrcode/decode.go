package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrcode"
)

var decodeInput string

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a matrix barcode PNG",
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeInput, "input", "", "input PNG path (required)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	if decodeInput == "" {
		slog.Error("decode: missing required --input flag")
		os.Exit(1)
	}

	f, err := os.Open(decodeInput)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		slog.Error("decode: not a valid PNG", "input", decodeInput, "err", err)
		os.Exit(1)
	}

	meta, data, err := qrcode.Decode(img)
	if err != nil {
		slog.Error("decode: failed", "input", decodeInput, "err", err)
		os.Exit(3)
	}

	slog.Info("decode: recovered symbol", "input", decodeInput, "version", meta.Version, "ec_level", meta.ECLevel, "palette", meta.Palette)
	fmt.Println(string(data))
	return nil
}
