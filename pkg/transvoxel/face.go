package transvoxel

import (
	"math/bits"
	"strings"
)

// Direction names one face of a cube region.
type Direction int

// Face directions in FaceMask bit order.
const (
	NegX Direction = iota
	PosX
	NegY
	PosY
	NegZ
	PosZ
)

// Directions lists every face in bit order.
var Directions = [6]Direction{NegX, PosX, NegY, PosY, NegZ, PosZ}

var directionNames = [6]string{"-x", "+x", "-y", "+y", "-z", "+z"}

// Axis returns 0, 1 or 2 for the X, Y and Z face pairs.
func (d Direction) Axis() int {
	return int(d) / 2
}

// Positive reports whether the face lies on the high side of its axis.
func (d Direction) Positive() bool {
	return d%2 == 1
}

// Bit returns the FaceMask bit for the face.
func (d Direction) Bit() FaceMask {
	return 1 << uint(d)
}

func (d Direction) String() string {
	if d < NegX || d > PosZ {
		return "invalid"
	}
	return directionNames[d]
}

// FaceMask is a set of region faces. A set bit marks a face that borders a
// larger, coarser neighbor.
type FaceMask uint8

// AllFaces has every face bit set.
const AllFaces FaceMask = 0x3F

// Has reports whether the face is in the mask.
func (m FaceMask) Has(d Direction) bool {
	return m&d.Bit() != 0
}

// With returns the mask with the face added.
func (m FaceMask) With(d Direction) FaceMask {
	return m | d.Bit()
}

// Count returns the number of faces in the mask.
func (m FaceMask) Count() int {
	return bits.OnesCount8(uint8(m & AllFaces))
}

func (m FaceMask) String() string {
	if m&AllFaces == 0 {
		return "none"
	}
	var names []string
	for _, d := range Directions {
		if m.Has(d) {
			names = append(names, d.String())
		}
	}
	return strings.Join(names, ",")
}
