package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dxf-cam/internal/dxf"
	"dxf-cam/internal/entity"
	"dxf-cam/internal/gcode"
	"dxf-cam/internal/job"
)

func newGCodeCmd() *cobra.Command {
	var (
		in      string
		out     string
		jobOut  string
		cfgPath string
	)

	cmd := &cobra.Command{
		Use:   "gcode",
		Short: "Emit a G-code toolpath for the drawing",
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

			lines := gcode.Generate(arranged, gcode.Options{
				FeedRate: cfg.FeedRate,
				SafeZ:    cfg.SafeZ,
				CutZ:     cfg.CutZ,
			})

			if err := writeText(out, gcode.Join(lines)); err != nil {
				return err
			}
			if out != "" {
				fmt.Printf("G-code saved to %s\n", out)
			}

			if jobOut != "" {
				result := job.New(in)
				result.Entities = arranged
				result.GCode = lines
				if err := result.Save(jobOut); err != nil {
					return err
				}
				fmt.Printf("Job results saved to %s\n", jobOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input DXF file")
	cmd.Flags().StringVar(&out, "out", "", "output G-code file (default: stdout)")
	cmd.Flags().StringVar(&jobOut, "job", "", "also save a JSON result bundle")
	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML config file")
	cmd.MarkFlagRequired("in")
	return cmd
}
