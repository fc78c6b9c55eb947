package main

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/taigrr/terrace/pkg/models"
)

func newInspectCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inspect <terrain.glb>",
		Short: "Print the regions stored in a GLB export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := models.LoadGLB(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if verbose {
				if _, err := lipgloss.Fprintln(out, regionTable(parts)); err != nil {
					return err
				}
			}

			var vertices, triangles int
			for _, p := range parts {
				vertices += p.Mesh.VertexCount()
				triangles += p.Mesh.TriangleCount()
			}
			fmt.Fprintf(out, "%s: %d regions, %d vertices, %d triangles\n",
				args[0], len(parts), vertices, triangles)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every region")
	return cmd
}

// regionTable lists one row per placed mesh, numbers right aligned.
func regionTable(parts []models.Part) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("REGION", "POSITION", "SCALE", "VERTICES", "TRIANGLES").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Bold(true)
			case col >= 2:
				return s.Align(lipgloss.Right)
			}
			return s
		})

	for _, p := range parts {
		pos := p.Placement.Position
		t.Row(
			p.Mesh.Name,
			fmt.Sprintf("%g,%g,%g", pos.X, pos.Y, pos.Z),
			strconv.FormatFloat(p.Placement.Scale, 'g', -1, 64),
			strconv.Itoa(p.Mesh.VertexCount()),
			strconv.Itoa(p.Mesh.TriangleCount()),
		)
	}
	return t
}
