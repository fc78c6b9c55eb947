package main

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
)

func TestRegionTable(t *testing.T) {
	m := models.NewMesh("region_-16_0_0_16_02")
	up := math3d.Up()
	a := m.AddVertex(math3d.V3(0, 0, 0), up)
	b := m.AddVertex(math3d.V3(1, 0, 0), up)
	c := m.AddVertex(math3d.V3(1, 0, 1), up)
	m.AddFace(a, c, b)

	parts := []models.Part{{
		Mesh:      m,
		Placement: models.Placement{Position: math3d.V3(-16, 0, 0), Scale: 0.5},
	}}

	out := ansi.Strip(regionTable(parts).String())
	require.Contains(t, out, "REGION")
	require.Contains(t, out, "TRIANGLES")
	require.Contains(t, out, "region_-16_0_0_16_02")
	require.Contains(t, out, "-16,0,0")
	require.Contains(t, out, "0.5")
	require.Regexp(t, `│\s+3\s+│\s+1\s+│`, out)
}
