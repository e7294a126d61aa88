// Package cli implements the dxfcam command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dxf-cam/internal/config"
	"dxf-cam/internal/dxf"
	"dxf-cam/internal/version"
)

// NewRootCmd builds the dxfcam command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dxfcam",
		Short:         "Derive machining artifacts from 2D DXF drawings",
		Long:          "dxfcam reads LINE, ARC and CIRCLE entities from a DXF drawing and computes tool-compensation offsets, an ordered toolpath traversal and G-code instructions.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newOffsetCmd())
	root.AddCommand(newArrangeCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newGCodeCmd())
	return root
}

// Execute runs the CLI and reports errors on stderr.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadConfig loads a TOML config when a path is given, defaults otherwise.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// readDrawing opens and parses a DXF file.
func readDrawing(path string) (*dxf.Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dxf.Read(f)
}

// writeText writes text to a file, or to stdout when path is empty.
func writeText(path, text string) error {
	if path == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(path, []byte(text), 0644)
}
