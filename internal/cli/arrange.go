package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dxf-cam/internal/dxf"
	"dxf-cam/internal/entity"
	"dxf-cam/internal/job"
	"dxf-cam/internal/report"
)

func newArrangeCmd() *cobra.Command {
	var (
		in      string
		out     string
		cfgPath string
	)

	cmd := &cobra.Command{
		Use:   "arrange",
		Short: "Order the drawing's entities into a connected traversal",
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

			fmt.Print(report.Table(arranged))

			if out != "" {
				result := job.New(in)
				result.Entities = arranged
				if err := result.Save(out); err != nil {
					return err
				}
				fmt.Printf("Arranged entities saved to %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input DXF file")
	cmd.Flags().StringVar(&out, "out", "", "output JSON file")
	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML config file")
	cmd.MarkFlagRequired("in")
	return cmd
}
