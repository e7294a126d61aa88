package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dxf-cam/internal/dxf"
	"dxf-cam/internal/entity"
	"dxf-cam/internal/report"
)

func newReportCmd() *cobra.Command {
	var (
		in      string
		out     string
		cfgPath string
		useRef  bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the coordinate report for the arranged entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			d, err := readDrawing(in)
			if err != nil {
				return err
			}

			arranged := entity.Arrange(dxf.Entities(d, cfg.WorkingFrame()), cfg.Tolerance)

			if err := writeText(out, report.Build(arranged, useRef)); err != nil {
				return err
			}
			if out != "" {
				fmt.Printf("Report saved to %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input DXF file")
	cmd.Flags().StringVar(&out, "out", "", "output text file (default: stdout)")
	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML config file")
	cmd.Flags().BoolVar(&useRef, "ref", false, "report reference-frame (WCS) coordinates")
	cmd.MarkFlagRequired("in")
	return cmd
}
