package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dxf-cam/internal/job"
	"dxf-cam/internal/offset"
	"dxf-cam/internal/polygon"
)

func newOffsetCmd() *cobra.Command {
	var (
		in       string
		out      string
		distance float64
	)

	cmd := &cobra.Command{
		Use:   "offset",
		Short: "Compute tool-compensation offset geometry",
		Long:  "offset reconstructs closed polygons from the drawing's lines, offsets every edge perpendicularly by the signed distance, and resolves the offset corners. Circles and arcs are offset by adjusting their radius.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDrawing(in)
			if err != nil {
				return err
			}

			result := job.New(in)
			result.OffsetDistance = distance

			for _, poly := range polygon.Reconstruct(d.Lines) {
				edges, err := offset.Polygon(poly, distance)
				if err != nil {
					return fmt.Errorf("offsetting polygon: %w", err)
				}
				result.OffsetEdges = append(result.OffsetEdges, edges)
				result.CornerLoops = append(result.CornerLoops, offset.CornerPoints(edges))
			}

			for _, c := range d.Circles {
				if e, ok := offset.Circle(c.Center, c.Radius, distance); ok {
					result.OffsetEntities = append(result.OffsetEntities, e)
				}
			}
			for _, a := range d.Arcs {
				if e, ok := offset.Arc(a.Center, a.Radius, a.StartAngle, a.EndAngle, distance); ok {
					result.OffsetEntities = append(result.OffsetEntities, e)
				}
			}

			if out != "" {
				if err := result.Save(out); err != nil {
					return err
				}
				fmt.Printf("Offset results saved to %s\n", out)
				return nil
			}

			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input DXF file")
	cmd.Flags().StringVar(&out, "out", "", "output JSON file (default: stdout)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "signed offset distance (outward positive)")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("distance")
	return cmd
}
