package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/taigrr/terrace/pkg/density"
	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
	"github.com/taigrr/terrace/pkg/terrain"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		viewer    string
		outPath   string
		statsPath string
		bake      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Mesh the terrain around a viewer and export it as GLB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			pos, err := parseVec3(viewer)
			if err != nil {
				return err
			}

			mgr, err := terrain.NewManager(cfg, density.NewTerrain())
			if err != nil {
				return err
			}
			defer mgr.Close()

			if _, err := mgr.Update(pos); err != nil {
				return err
			}
			if err := mgr.Wait(cmd.Context()); err != nil {
				return errors.New("generating terrain interrupted").Wrap(err)
			}

			parts := mgr.Parts()
			if bake {
				parts = models.Bake(parts)
			}
			if err := models.SaveGLB(outPath, parts); err != nil {
				return err
			}

			stats := mgr.Stats()
			logs.WithTag("out", outPath).
				WithTag("regions", stats.Visible).
				WithTag("triangles", stats.Triangles).
				Info("terrain exported")

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d regions, %d vertices, %d triangles\n",
				outPath, stats.Visible, stats.Vertices, stats.Triangles)

			if statsPath == "" {
				return nil
			}
			return writeStats(statsPath, pos, stats)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&viewer, "viewer", "0,0,0", "viewer position as x,y,z")
	flags.StringVarP(&outPath, "out", "o", "terrain.glb", "GLB output file")
	flags.StringVar(&statsPath, "stats", "", "write generation statistics as JSON to this file")
	flags.BoolVar(&bake, "bake", false, "write world-space vertices instead of node transforms")
	return cmd
}

type statsReport struct {
	Viewer math3d.Vec3   `json:"viewer"`
	Stats  terrain.Stats `json:"stats"`
}

func writeStats(path string, viewer math3d.Vec3, stats terrain.Stats) error {
	data, err := json.MarshalIndent(statsReport{Viewer: viewer, Stats: stats}, "", "  ")
	if err != nil {
		return errors.New("encoding stats failed").Wrap(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.New("writing stats failed").
			WithTag("path", path).
			Wrap(err)
	}
	return nil
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (math3d.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math3d.Vec3{}, errors.New("expected x,y,z").WithTag("value", s)
	}

	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math3d.Vec3{}, errors.New("invalid coordinate").
				WithTag("value", s).
				Wrap(err)
		}
		v[i] = f
	}
	return math3d.V3(v[0], v[1], v[2]), nil
}
