package transvoxel

// cellData is one triangulation class: the high nibble of geometryCounts is
// the vertex count and the low nibble the triangle count. vertexIndex holds
// three entries per triangle, indexing the case's vertex list.
type cellData struct {
	geometryCounts uint8
	vertexIndex    []uint8
}

func (c cellData) vertexCount() int {
	return int(c.geometryCounts >> 4)
}

func (c cellData) triangleCount() int {
	return int(c.geometryCounts & 0x0F)
}

// Corner positions of a regular cell, in the fixed corner order shared with
// the octree: bit 0 is +x, bit 1 is +y, bit 2 is +z.
var cornerOffsets = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

// Face-local coordinates of the 13 transition cell sample points. Points 0
// through 8 form the full-resolution 3x3 grid; 9 through C repeat the grid
// corners 0, 2, 6 and 8 as the half-resolution face.
var transitionSamples = [13][2]int{
	{0, 0}, {1, 0}, {2, 0},
	{0, 1}, {1, 1}, {2, 1},
	{0, 2}, {1, 2}, {2, 2},
	{0, 0}, {2, 0}, {0, 2}, {2, 2},
}

// transitionAlias maps half-resolution sample points to the full-resolution
// sample they duplicate.
var transitionAlias = [13]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 0, 2, 6, 8}

// transitionCaseBits gives the case code bit contributed by each of the nine
// full-resolution samples when it is solid.
var transitionCaseBits = [9]uint16{0x01, 0x02, 0x04, 0x80, 0x100, 0x08, 0x40, 0x20, 0x10}

// regularCellClass maps an 8-bit corner case code to the index of its
// triangulation class in regularCellData.
var regularCellClass = [256]uint8{
	0x00, 0x01, 0x01, 0x02, 0x01, 0x02, 0x03, 0x04, 0x01, 0x03, 0x02, 0x04, 0x02, 0x04, 0x04, 0x02,
	0x01, 0x02, 0x03, 0x04, 0x03, 0x04, 0x05, 0x06, 0x03, 0x07, 0x08, 0x06, 0x07, 0x06, 0x09, 0x04,
	0x01, 0x03, 0x02, 0x04, 0x03, 0x07, 0x08, 0x06, 0x03, 0x05, 0x04, 0x06, 0x07, 0x09, 0x06, 0x04,
	0x02, 0x04, 0x04, 0x02, 0x08, 0x06, 0x0A, 0x04, 0x07, 0x09, 0x06, 0x04, 0x0B, 0x0C, 0x0C, 0x02,
	0x01, 0x03, 0x03, 0x08, 0x02, 0x04, 0x07, 0x06, 0x03, 0x05, 0x08, 0x0A, 0x04, 0x06, 0x06, 0x04,
	0x02, 0x04, 0x07, 0x06, 0x04, 0x02, 0x09, 0x04, 0x07, 0x09, 0x0B, 0x0C, 0x06, 0x04, 0x0C, 0x02,
	0x03, 0x05, 0x08, 0x0A, 0x07, 0x09, 0x0B, 0x0C, 0x05, 0x0D, 0x0A, 0x0E, 0x09, 0x0F, 0x0C, 0x06,
	0x04, 0x06, 0x06, 0x04, 0x06, 0x04, 0x0C, 0x02, 0x09, 0x0F, 0x0C, 0x06, 0x0C, 0x06, 0x03, 0x01,
	0x01, 0x03, 0x03, 0x07, 0x03, 0x07, 0x05, 0x09, 0x02, 0x08, 0x04, 0x06, 0x04, 0x06, 0x06, 0x04,
	0x03, 0x07, 0x05, 0x09, 0x05, 0x09, 0x0D, 0x0F, 0x08, 0x0B, 0x0A, 0x0C, 0x09, 0x0C, 0x0F, 0x06,
	0x02, 0x08, 0x04, 0x06, 0x08, 0x0B, 0x0A, 0x0C, 0x04, 0x0A, 0x02, 0x04, 0x06, 0x0C, 0x04, 0x02,
	0x04, 0x06, 0x06, 0x04, 0x0A, 0x0C, 0x0E, 0x06, 0x06, 0x0C, 0x04, 0x02, 0x0C, 0x03, 0x06, 0x01,
	0x02, 0x07, 0x07, 0x0B, 0x04, 0x06, 0x09, 0x0C, 0x04, 0x09, 0x06, 0x0C, 0x02, 0x04, 0x04, 0x02,
	0x04, 0x06, 0x09, 0x0C, 0x06, 0x04, 0x0F, 0x06, 0x06, 0x0C, 0x0C, 0x03, 0x04, 0x02, 0x06, 0x01,
	0x04, 0x09, 0x06, 0x0C, 0x06, 0x0C, 0x0C, 0x03, 0x06, 0x0F, 0x04, 0x06, 0x04, 0x06, 0x02, 0x01,
	0x02, 0x04, 0x04, 0x02, 0x04, 0x02, 0x06, 0x01, 0x04, 0x06, 0x02, 0x01, 0x02, 0x01, 0x01, 0x00,
}

// regularCellData holds the triangulation shared by every case of a class.
// The high nibble of the first byte is the vertex count and the low nibble is
// the triangle count.
var regularCellData = [...]cellData{
	{0x00, []uint8{}},
	{0x31, []uint8{0, 1, 2}},
	{0x42, []uint8{0, 1, 2, 0, 2, 3}},
	{0x62, []uint8{0, 1, 2, 3, 4, 5}},
	{0x53, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4}},
	{0x93, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	{0x64, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5}},
	{0x73, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6}},
	{0x73, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6}},
	{0x84, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 5, 6, 7}},
	{0x84, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6, 3, 6, 7}},
	{0x84, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}},
	{0x75, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6}},
	{0xC4, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	{0x95, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6, 3, 6, 7, 3, 7, 8}},
	{0x95, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 6, 7, 8}},
}

// regularVertexData lists one edge code per generated vertex for each case.
// The low byte names the two cell corners of the edge (first corner in the
// high nibble). The high byte is the reuse hint: its high nibble gives the
// direction of the preceding cell that owns the edge (1 = -x, 2 = -y, 4 = -z,
// 8 = this cell) and its low nibble the owned edge index in that cell.
var regularVertexData = [256][]uint16{
	{},
	{0x6201, 0x5102, 0x3304},
	{0x6201, 0x2315, 0x4113},
	{0x2315, 0x4113, 0x5102, 0x3304},
	{0x4223, 0x1326, 0x5102},
	{0x6201, 0x4223, 0x1326, 0x3304},
	{0x4223, 0x1326, 0x5102, 0x6201, 0x2315, 0x4113},
	{0x2315, 0x4113, 0x4223, 0x1326, 0x3304},
	{0x4223, 0x4113, 0x8337},
	{0x6201, 0x5102, 0x3304, 0x4223, 0x4113, 0x8337},
	{0x4223, 0x6201, 0x2315, 0x8337},
	{0x2315, 0x8337, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x8337, 0x1326, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x3304},
	{0x6201, 0x2315, 0x8337, 0x1326, 0x5102},
	{0x2315, 0x8337, 0x1326, 0x3304},
	{0x2245, 0x3304, 0x1146},
	{0x2245, 0x6201, 0x5102, 0x1146},
	{0x2245, 0x3304, 0x1146, 0x6201, 0x2315, 0x4113},
	{0x2245, 0x2315, 0x4113, 0x5102, 0x1146},
	{0x4223, 0x1326, 0x5102, 0x2245, 0x3304, 0x1146},
	{0x2245, 0x6201, 0x4223, 0x1326, 0x1146},
	{0x4223, 0x1326, 0x5102, 0x2245, 0x3304, 0x1146, 0x6201, 0x2315, 0x4113},
	{0x2245, 0x2315, 0x4113, 0x4223, 0x1326, 0x1146},
	{0x2245, 0x3304, 0x1146, 0x4223, 0x4113, 0x8337},
	{0x2245, 0x6201, 0x5102, 0x1146, 0x4223, 0x4113, 0x8337},
	{0x2245, 0x3304, 0x1146, 0x4223, 0x6201, 0x2315, 0x8337},
	{0x2245, 0x2315, 0x8337, 0x4223, 0x5102, 0x1146},
	{0x4113, 0x8337, 0x1326, 0x5102, 0x2245, 0x3304, 0x1146},
	{0x2245, 0x6201, 0x4113, 0x8337, 0x1326, 0x1146},
	{0x6201, 0x2315, 0x8337, 0x1326, 0x5102, 0x2245, 0x3304, 0x1146},
	{0x2245, 0x2315, 0x8337, 0x1326, 0x1146},
	{0x2245, 0x8157, 0x2315},
	{0x6201, 0x5102, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x6201, 0x2245, 0x8157, 0x4113},
	{0x2245, 0x8157, 0x4113, 0x5102, 0x3304},
	{0x4223, 0x1326, 0x5102, 0x2245, 0x8157, 0x2315},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x4223, 0x1326, 0x5102, 0x6201, 0x2245, 0x8157, 0x4113},
	{0x2245, 0x8157, 0x4113, 0x4223, 0x1326, 0x3304},
	{0x4223, 0x4113, 0x8337, 0x2245, 0x8157, 0x2315},
	{0x6201, 0x5102, 0x3304, 0x4223, 0x4113, 0x8337, 0x2245, 0x8157, 0x2315},
	{0x4223, 0x6201, 0x2245, 0x8157, 0x8337},
	{0x2245, 0x8157, 0x8337, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x8337, 0x1326, 0x5102, 0x2245, 0x8157, 0x2315},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x1326, 0x5102},
	{0x2245, 0x8157, 0x8337, 0x1326, 0x3304},
	{0x8157, 0x2315, 0x3304, 0x1146},
	{0x8157, 0x2315, 0x6201, 0x5102, 0x1146},
	{0x8157, 0x4113, 0x6201, 0x3304, 0x1146},
	{0x8157, 0x4113, 0x5102, 0x1146},
	{0x4223, 0x1326, 0x5102, 0x8157, 0x2315, 0x3304, 0x1146},
	{0x8157, 0x2315, 0x6201, 0x4223, 0x1326, 0x1146},
	{0x4223, 0x1326, 0x5102, 0x8157, 0x4113, 0x6201, 0x3304, 0x1146},
	{0x8157, 0x4113, 0x4223, 0x1326, 0x1146},
	{0x8157, 0x2315, 0x3304, 0x1146, 0x4223, 0x4113, 0x8337},
	{0x8157, 0x2315, 0x6201, 0x5102, 0x1146, 0x4223, 0x4113, 0x8337},
	{0x8157, 0x8337, 0x4223, 0x6201, 0x3304, 0x1146},
	{0x8157, 0x8337, 0x4223, 0x5102, 0x1146},
	{0x4113, 0x8337, 0x1326, 0x5102, 0x8157, 0x2315, 0x3304, 0x1146},
	{0x8157, 0x2315, 0x6201, 0x4113, 0x8337, 0x1326, 0x1146},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x8337, 0x1326, 0x5102},
	{0x8157, 0x8337, 0x1326, 0x1146},
	{0x8267, 0x1146, 0x1326},
	{0x8267, 0x1146, 0x1326, 0x6201, 0x5102, 0x3304},
	{0x8267, 0x1146, 0x1326, 0x6201, 0x2315, 0x4113},
	{0x8267, 0x1146, 0x1326, 0x2315, 0x4113, 0x5102, 0x3304},
	{0x4223, 0x8267, 0x1146, 0x5102},
	{0x6201, 0x4223, 0x8267, 0x1146, 0x3304},
	{0x4223, 0x8267, 0x1146, 0x5102, 0x6201, 0x2315, 0x4113},
	{0x2315, 0x4113, 0x4223, 0x8267, 0x1146, 0x3304},
	{0x8267, 0x1146, 0x1326, 0x4223, 0x4113, 0x8337},
	{0x8267, 0x1146, 0x1326, 0x6201, 0x5102, 0x3304, 0x4223, 0x4113, 0x8337},
	{0x8267, 0x1146, 0x1326, 0x4223, 0x6201, 0x2315, 0x8337},
	{0x8267, 0x1146, 0x1326, 0x2315, 0x8337, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x8337, 0x8267, 0x1146, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304},
	{0x6201, 0x2315, 0x8337, 0x8267, 0x1146, 0x5102},
	{0x2315, 0x8337, 0x8267, 0x1146, 0x3304},
	{0x8267, 0x2245, 0x3304, 0x1326},
	{0x8267, 0x2245, 0x6201, 0x5102, 0x1326},
	{0x8267, 0x2245, 0x3304, 0x1326, 0x6201, 0x2315, 0x4113},
	{0x8267, 0x2245, 0x2315, 0x4113, 0x5102, 0x1326},
	{0x4223, 0x8267, 0x2245, 0x3304, 0x5102},
	{0x4223, 0x8267, 0x2245, 0x6201},
	{0x4223, 0x8267, 0x2245, 0x3304, 0x5102, 0x6201, 0x2315, 0x4113},
	{0x4223, 0x8267, 0x2245, 0x2315, 0x4113},
	{0x8267, 0x2245, 0x3304, 0x1326, 0x4223, 0x4113, 0x8337},
	{0x8267, 0x2245, 0x6201, 0x5102, 0x1326, 0x4223, 0x4113, 0x8337},
	{0x8267, 0x2245, 0x3304, 0x1326, 0x4223, 0x6201, 0x2315, 0x8337},
	{0x8267, 0x2245, 0x2315, 0x8337, 0x4223, 0x5102, 0x1326},
	{0x4113, 0x8337, 0x8267, 0x2245, 0x3304, 0x5102},
	{0x8267, 0x2245, 0x6201, 0x4113, 0x8337},
	{0x6201, 0x2315, 0x8337, 0x8267, 0x2245, 0x3304, 0x5102},
	{0x8267, 0x2245, 0x2315, 0x8337},
	{0x8267, 0x1146, 0x1326, 0x2245, 0x8157, 0x2315},
	{0x8267, 0x1146, 0x1326, 0x6201, 0x5102, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x8267, 0x1146, 0x1326, 0x6201, 0x2245, 0x8157, 0x4113},
	{0x8267, 0x1146, 0x1326, 0x2245, 0x8157, 0x4113, 0x5102, 0x3304},
	{0x4223, 0x8267, 0x1146, 0x5102, 0x2245, 0x8157, 0x2315},
	{0x6201, 0x4223, 0x8267, 0x1146, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x4223, 0x8267, 0x1146, 0x5102, 0x6201, 0x2245, 0x8157, 0x4113},
	{0x2245, 0x8157, 0x4113, 0x4223, 0x8267, 0x1146, 0x3304},
	{0x8267, 0x1146, 0x1326, 0x4223, 0x4113, 0x8337, 0x2245, 0x8157, 0x2315},
	{0x8267, 0x1146, 0x1326, 0x6201, 0x5102, 0x3304, 0x4223, 0x4113, 0x8337, 0x2245, 0x8157, 0x2315},
	{0x8267, 0x1146, 0x1326, 0x4223, 0x6201, 0x2245, 0x8157, 0x8337},
	{0x8267, 0x1146, 0x1326, 0x2245, 0x8157, 0x8337, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x8337, 0x8267, 0x1146, 0x5102, 0x2245, 0x8157, 0x2315},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x8267, 0x1146, 0x5102},
	{0x2245, 0x8157, 0x8337, 0x8267, 0x1146, 0x3304},
	{0x8267, 0x8157, 0x2315, 0x3304, 0x1326},
	{0x8267, 0x8157, 0x2315, 0x6201, 0x5102, 0x1326},
	{0x8267, 0x8157, 0x4113, 0x6201, 0x3304, 0x1326},
	{0x8267, 0x8157, 0x4113, 0x5102, 0x1326},
	{0x4223, 0x8267, 0x8157, 0x2315, 0x3304, 0x5102},
	{0x6201, 0x4223, 0x8267, 0x8157, 0x2315},
	{0x4223, 0x8267, 0x8157, 0x4113, 0x6201, 0x3304, 0x5102},
	{0x4223, 0x8267, 0x8157, 0x4113},
	{0x8267, 0x8157, 0x2315, 0x3304, 0x1326, 0x4223, 0x4113, 0x8337},
	{0x8267, 0x8157, 0x2315, 0x6201, 0x5102, 0x1326, 0x4223, 0x4113, 0x8337},
	{0x8267, 0x8157, 0x8337, 0x4223, 0x6201, 0x3304, 0x1326},
	{0x8267, 0x8157, 0x8337, 0x4223, 0x5102, 0x1326},
	{0x4113, 0x8337, 0x8267, 0x8157, 0x2315, 0x3304, 0x5102},
	{0x8267, 0x8157, 0x2315, 0x6201, 0x4113, 0x8337},
	{0x6201, 0x3304, 0x5102, 0x8267, 0x8157, 0x8337},
	{0x8267, 0x8157, 0x8337},
	{0x8267, 0x8337, 0x8157},
	{0x6201, 0x5102, 0x3304, 0x8267, 0x8337, 0x8157},
	{0x8267, 0x8337, 0x8157, 0x6201, 0x2315, 0x4113},
	{0x2315, 0x4113, 0x5102, 0x3304, 0x8267, 0x8337, 0x8157},
	{0x4223, 0x1326, 0x5102, 0x8267, 0x8337, 0x8157},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x8267, 0x8337, 0x8157},
	{0x4223, 0x1326, 0x5102, 0x8267, 0x8337, 0x8157, 0x6201, 0x2315, 0x4113},
	{0x2315, 0x4113, 0x4223, 0x1326, 0x3304, 0x8267, 0x8337, 0x8157},
	{0x8267, 0x4223, 0x4113, 0x8157},
	{0x6201, 0x5102, 0x3304, 0x8267, 0x4223, 0x4113, 0x8157},
	{0x8267, 0x4223, 0x6201, 0x2315, 0x8157},
	{0x2315, 0x8157, 0x8267, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x8157, 0x8267, 0x1326, 0x5102},
	{0x6201, 0x4113, 0x8157, 0x8267, 0x1326, 0x3304},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102},
	{0x2315, 0x8157, 0x8267, 0x1326, 0x3304},
	{0x2245, 0x3304, 0x1146, 0x8267, 0x8337, 0x8157},
	{0x2245, 0x6201, 0x5102, 0x1146, 0x8267, 0x8337, 0x8157},
	{0x2245, 0x3304, 0x1146, 0x8267, 0x8337, 0x8157, 0x6201, 0x2315, 0x4113},
	{0x2245, 0x2315, 0x4113, 0x5102, 0x1146, 0x8267, 0x8337, 0x8157},
	{0x4223, 0x1326, 0x5102, 0x2245, 0x3304, 0x1146, 0x8267, 0x8337, 0x8157},
	{0x2245, 0x6201, 0x4223, 0x1326, 0x1146, 0x8267, 0x8337, 0x8157},
	{0x4223, 0x1326, 0x5102, 0x2245, 0x3304, 0x1146, 0x8267, 0x8337, 0x8157, 0x6201, 0x2315, 0x4113},
	{0x2245, 0x2315, 0x4113, 0x4223, 0x1326, 0x1146, 0x8267, 0x8337, 0x8157},
	{0x2245, 0x3304, 0x1146, 0x8267, 0x4223, 0x4113, 0x8157},
	{0x2245, 0x6201, 0x5102, 0x1146, 0x8267, 0x4223, 0x4113, 0x8157},
	{0x2245, 0x3304, 0x1146, 0x8267, 0x4223, 0x6201, 0x2315, 0x8157},
	{0x2245, 0x2315, 0x8157, 0x8267, 0x4223, 0x5102, 0x1146},
	{0x4113, 0x8157, 0x8267, 0x1326, 0x5102, 0x2245, 0x3304, 0x1146},
	{0x2245, 0x6201, 0x4113, 0x8157, 0x8267, 0x1326, 0x1146},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102, 0x2245, 0x3304, 0x1146},
	{0x2245, 0x2315, 0x8157, 0x8267, 0x1326, 0x1146},
	{0x2245, 0x8267, 0x8337, 0x2315},
	{0x6201, 0x5102, 0x3304, 0x2245, 0x8267, 0x8337, 0x2315},
	{0x6201, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x2245, 0x8267, 0x8337, 0x4113, 0x5102, 0x3304},
	{0x4223, 0x1326, 0x5102, 0x2245, 0x8267, 0x8337, 0x2315},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x2245, 0x8267, 0x8337, 0x2315},
	{0x4223, 0x1326, 0x5102, 0x6201, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x2245, 0x8267, 0x8337, 0x4113, 0x4223, 0x1326, 0x3304},
	{0x2245, 0x8267, 0x4223, 0x4113, 0x2315},
	{0x6201, 0x5102, 0x3304, 0x2245, 0x8267, 0x4223, 0x4113, 0x2315},
	{0x8267, 0x4223, 0x6201, 0x2245},
	{0x2245, 0x8267, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x2315, 0x2245, 0x8267, 0x1326, 0x5102},
	{0x6201, 0x4113, 0x2315, 0x2245, 0x8267, 0x1326, 0x3304},
	{0x6201, 0x2245, 0x8267, 0x1326, 0x5102},
	{0x2245, 0x8267, 0x1326, 0x3304},
	{0x8267, 0x8337, 0x2315, 0x3304, 0x1146},
	{0x8267, 0x8337, 0x2315, 0x6201, 0x5102, 0x1146},
	{0x8267, 0x8337, 0x4113, 0x6201, 0x3304, 0x1146},
	{0x8267, 0x8337, 0x4113, 0x5102, 0x1146},
	{0x4223, 0x1326, 0x5102, 0x8267, 0x8337, 0x2315, 0x3304, 0x1146},
	{0x8267, 0x8337, 0x2315, 0x6201, 0x4223, 0x1326, 0x1146},
	{0x4223, 0x1326, 0x5102, 0x8267, 0x8337, 0x4113, 0x6201, 0x3304, 0x1146},
	{0x8267, 0x8337, 0x4113, 0x4223, 0x1326, 0x1146},
	{0x8267, 0x4223, 0x4113, 0x2315, 0x3304, 0x1146},
	{0x8267, 0x4223, 0x4113, 0x2315, 0x6201, 0x5102, 0x1146},
	{0x8267, 0x4223, 0x6201, 0x3304, 0x1146},
	{0x8267, 0x4223, 0x5102, 0x1146},
	{0x4113, 0x2315, 0x3304, 0x1146, 0x8267, 0x1326, 0x5102},
	{0x8267, 0x1326, 0x1146, 0x6201, 0x4113, 0x2315},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x1326, 0x5102},
	{0x8267, 0x1326, 0x1146},
	{0x8337, 0x8157, 0x1146, 0x1326},
	{0x8337, 0x8157, 0x1146, 0x1326, 0x6201, 0x5102, 0x3304},
	{0x8337, 0x8157, 0x1146, 0x1326, 0x6201, 0x2315, 0x4113},
	{0x8337, 0x8157, 0x1146, 0x1326, 0x2315, 0x4113, 0x5102, 0x3304},
	{0x4223, 0x8337, 0x8157, 0x1146, 0x5102},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x1146, 0x3304},
	{0x4223, 0x8337, 0x8157, 0x1146, 0x5102, 0x6201, 0x2315, 0x4113},
	{0x2315, 0x4113, 0x4223, 0x8337, 0x8157, 0x1146, 0x3304},
	{0x4223, 0x4113, 0x8157, 0x1146, 0x1326},
	{0x4223, 0x4113, 0x8157, 0x1146, 0x1326, 0x6201, 0x5102, 0x3304},
	{0x4223, 0x6201, 0x2315, 0x8157, 0x1146, 0x1326},
	{0x4223, 0x5102, 0x3304, 0x2315, 0x8157, 0x1146, 0x1326},
	{0x4113, 0x8157, 0x1146, 0x5102},
	{0x6201, 0x4113, 0x8157, 0x1146, 0x3304},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x5102},
	{0x2315, 0x8157, 0x1146, 0x3304},
	{0x8337, 0x8157, 0x2245, 0x3304, 0x1326},
	{0x8337, 0x8157, 0x2245, 0x6201, 0x5102, 0x1326},
	{0x8337, 0x8157, 0x2245, 0x3304, 0x1326, 0x6201, 0x2315, 0x4113},
	{0x8337, 0x8157, 0x2245, 0x2315, 0x4113, 0x5102, 0x1326},
	{0x4223, 0x8337, 0x8157, 0x2245, 0x3304, 0x5102},
	{0x2245, 0x6201, 0x4223, 0x8337, 0x8157},
	{0x4223, 0x8337, 0x8157, 0x2245, 0x3304, 0x5102, 0x6201, 0x2315, 0x4113},
	{0x2245, 0x2315, 0x4113, 0x4223, 0x8337, 0x8157},
	{0x4223, 0x4113, 0x8157, 0x2245, 0x3304, 0x1326},
	{0x4223, 0x4113, 0x8157, 0x2245, 0x6201, 0x5102, 0x1326},
	{0x4223, 0x6201, 0x2315, 0x8157, 0x2245, 0x3304, 0x1326},
	{0x4223, 0x5102, 0x1326, 0x2245, 0x2315, 0x8157},
	{0x4113, 0x8157, 0x2245, 0x3304, 0x5102},
	{0x2245, 0x6201, 0x4113, 0x8157},
	{0x6201, 0x2315, 0x8157, 0x2245, 0x3304, 0x5102},
	{0x2245, 0x2315, 0x8157},
	{0x8337, 0x2315, 0x2245, 0x1146, 0x1326},
	{0x8337, 0x2315, 0x2245, 0x1146, 0x1326, 0x6201, 0x5102, 0x3304},
	{0x8337, 0x4113, 0x6201, 0x2245, 0x1146, 0x1326},
	{0x8337, 0x4113, 0x5102, 0x3304, 0x2245, 0x1146, 0x1326},
	{0x4223, 0x8337, 0x2315, 0x2245, 0x1146, 0x5102},
	{0x6201, 0x4223, 0x8337, 0x2315, 0x2245, 0x1146, 0x3304},
	{0x4223, 0x8337, 0x4113, 0x6201, 0x2245, 0x1146, 0x5102},
	{0x2245, 0x1146, 0x3304, 0x4223, 0x8337, 0x4113},
	{0x4223, 0x4113, 0x2315, 0x2245, 0x1146, 0x1326},
	{0x4223, 0x4113, 0x2315, 0x2245, 0x1146, 0x1326, 0x6201, 0x5102, 0x3304},
	{0x4223, 0x6201, 0x2245, 0x1146, 0x1326},
	{0x4223, 0x5102, 0x3304, 0x2245, 0x1146, 0x1326},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x5102},
	{0x6201, 0x4113, 0x2315, 0x2245, 0x1146, 0x3304},
	{0x6201, 0x2245, 0x1146, 0x5102},
	{0x2245, 0x1146, 0x3304},
	{0x8337, 0x2315, 0x3304, 0x1326},
	{0x8337, 0x2315, 0x6201, 0x5102, 0x1326},
	{0x8337, 0x4113, 0x6201, 0x3304, 0x1326},
	{0x8337, 0x4113, 0x5102, 0x1326},
	{0x4223, 0x8337, 0x2315, 0x3304, 0x5102},
	{0x6201, 0x4223, 0x8337, 0x2315},
	{0x4223, 0x8337, 0x4113, 0x6201, 0x3304, 0x5102},
	{0x4223, 0x8337, 0x4113},
	{0x4223, 0x4113, 0x2315, 0x3304, 0x1326},
	{0x4223, 0x4113, 0x2315, 0x6201, 0x5102, 0x1326},
	{0x4223, 0x6201, 0x3304, 0x1326},
	{0x4223, 0x5102, 0x1326},
	{0x4113, 0x2315, 0x3304, 0x5102},
	{0x6201, 0x4113, 0x2315},
	{0x6201, 0x3304, 0x5102},
	{},
}

// transitionCellClass maps a 9-bit transition case code to its class in
// transitionCellData. Bit 7 is set when the case's triangles are stored with
// inverted winding.
var transitionCellClass = [512]uint8{
	0x00, 0x01, 0x02, 0x03, 0x01, 0x04, 0x03, 0x03, 0x02, 0x05, 0x06, 0x07, 0x03, 0x08, 0x04, 0x04,
	0x01, 0x09, 0x0A, 0x0B, 0x04, 0x0C, 0x08, 0x08, 0x03, 0x0D, 0x0E, 0x0F, 0x03, 0x08, 0x04, 0x84,
	0x02, 0x05, 0x06, 0x07, 0x05, 0x10, 0x07, 0x07, 0x06, 0x11, 0x12, 0x13, 0x07, 0x14, 0x10, 0x90,
	0x03, 0x0D, 0x0E, 0x0F, 0x08, 0x15, 0x0C, 0x8C, 0x04, 0x16, 0x17, 0x98, 0x04, 0x8C, 0x88, 0x88,
	0x01, 0x04, 0x0A, 0x08, 0x09, 0x0C, 0x0B, 0x08, 0x0A, 0x10, 0x19, 0x14, 0x0B, 0x15, 0x1A, 0x8C,
	0x04, 0x0C, 0x17, 0x15, 0x0C, 0x0C, 0x15, 0x88, 0x08, 0x15, 0x1B, 0x9C, 0x08, 0x88, 0x8C, 0x84,
	0x03, 0x08, 0x0E, 0x0C, 0x0D, 0x15, 0x0F, 0x8C, 0x0E, 0x14, 0x1D, 0x9E, 0x0F, 0x9C, 0x9F, 0x95,
	0x03, 0x08, 0x0E, 0x8C, 0x08, 0x88, 0x8C, 0x84, 0x04, 0x8C, 0x97, 0x95, 0x84, 0x84, 0x88, 0x83,
	0x02, 0x03, 0x06, 0x04, 0x0A, 0x08, 0x07, 0x04, 0x06, 0x07, 0x12, 0x10, 0x0E, 0x0C, 0x10, 0x88,
	0x0A, 0x0B, 0x19, 0x1A, 0x17, 0x15, 0x14, 0x8C, 0x0E, 0x0F, 0x1D, 0x9F, 0x0E, 0x8C, 0x90, 0x88,
	0x06, 0x07, 0x12, 0x10, 0x20, 0x14, 0x13, 0x90, 0x12, 0x13, 0x21, 0xA2, 0x23, 0x9E, 0xA2, 0x94,
	0x0E, 0x0F, 0x1D, 0x9F, 0x1B, 0x9C, 0x9E, 0x95, 0x17, 0x98, 0xA4, 0xA5, 0x97, 0x95, 0x94, 0x8C,
	0x03, 0x03, 0x0E, 0x04, 0x0B, 0x08, 0x0F, 0x84, 0x07, 0x07, 0x23, 0x90, 0x0F, 0x8C, 0x9F, 0x88,
	0x08, 0x08, 0x1B, 0x8C, 0x15, 0x88, 0x9C, 0x84, 0x0C, 0x8C, 0xA6, 0x95, 0x8C, 0x84, 0x95, 0x83,
	0x04, 0x04, 0x17, 0x88, 0x1A, 0x8C, 0x98, 0x88, 0x10, 0x90, 0xA7, 0x94, 0x9F, 0x95, 0xA5, 0x8C,
	0x04, 0x84, 0x97, 0x88, 0x8C, 0x84, 0x95, 0x83, 0x88, 0x88, 0x9B, 0x8C, 0x88, 0x83, 0x8C, 0x81,
	0x01, 0x09, 0x03, 0x08, 0x09, 0x16, 0x08, 0x08, 0x03, 0x0B, 0x04, 0x0C, 0x08, 0x15, 0x04, 0x84,
	0x09, 0x28, 0x0B, 0x29, 0x16, 0x2A, 0x15, 0x95, 0x08, 0x29, 0x0C, 0x9C, 0x08, 0x95, 0x84, 0x84,
	0x03, 0x0B, 0x04, 0x0C, 0x0B, 0x18, 0x0C, 0x8C, 0x04, 0x1A, 0x08, 0x95, 0x0C, 0x9C, 0x88, 0x88,
	0x08, 0x29, 0x0C, 0x9C, 0x15, 0xAB, 0x87, 0x87, 0x04, 0x9A, 0x88, 0x95, 0x84, 0x8C, 0x83, 0x83,
	0x09, 0x16, 0x0B, 0x15, 0x28, 0x2A, 0x29, 0x95, 0x0B, 0x18, 0x1A, 0x9C, 0x29, 0xAB, 0x9A, 0x8C,
	0x16, 0x2A, 0x18, 0xAB, 0x2A, 0xAA, 0xAB, 0x95, 0x15, 0xAB, 0x9C, 0x9A, 0x95, 0x95, 0x8C, 0x84,
	0x08, 0x15, 0x0C, 0x8E, 0x29, 0xAB, 0x9C, 0x8E, 0x0C, 0x9C, 0x95, 0x97, 0x9C, 0x9A, 0x95, 0x8A,
	0x08, 0x95, 0x8C, 0x8E, 0x95, 0x95, 0x87, 0x86, 0x84, 0x8C, 0x88, 0x8A, 0x84, 0x84, 0x83, 0x82,
	0x03, 0x08, 0x04, 0x04, 0x0B, 0x15, 0x0C, 0x84, 0x04, 0x0C, 0x08, 0x88, 0x0C, 0x8E, 0x88, 0x83,
	0x0B, 0x29, 0x1A, 0x9A, 0x18, 0xAB, 0x9C, 0x8C, 0x0C, 0x9C, 0x95, 0x95, 0x8C, 0x8E, 0x88, 0x83,
	0x04, 0x0C, 0x08, 0x88, 0x1A, 0x9C, 0x95, 0x88, 0x08, 0x95, 0x8C, 0x8C, 0x95, 0x97, 0x8C, 0x84,
	0x0C, 0x9C, 0x95, 0x95, 0x9C, 0x9A, 0x90, 0x8A, 0x88, 0x95, 0x8C, 0x8C, 0x88, 0x8A, 0x84, 0x81,
	0x08, 0x08, 0x0C, 0x84, 0x29, 0x95, 0x9C, 0x84, 0x0C, 0x8C, 0x95, 0x88, 0x9C, 0x8E, 0x95, 0x83,
	0x15, 0x95, 0x9C, 0x8C, 0xAB, 0x95, 0x96, 0x84, 0x87, 0x87, 0x90, 0x85, 0x87, 0x86, 0x85, 0x82,
	0x04, 0x84, 0x88, 0x83, 0x9A, 0x8C, 0x95, 0x83, 0x88, 0x88, 0x8C, 0x84, 0x95, 0x8A, 0x8C, 0x81,
	0x84, 0x84, 0x88, 0x83, 0x8C, 0x84, 0x85, 0x82, 0x83, 0x83, 0x84, 0x81, 0x83, 0x82, 0x81, 0x80,
}

// transitionCellData holds the triangulation shared by every case of a
// transition class, in the same layout as regularCellData.
var transitionCellData = [...]cellData{
	{0x00, []uint8{}},
	{0x42, []uint8{0, 1, 2, 0, 2, 3}},
	{0x31, []uint8{0, 1, 2}},
	{0x53, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4}},
	{0x64, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5}},
	{0x73, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6}},
	{0x62, []uint8{0, 1, 2, 3, 4, 5}},
	{0x84, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 5, 6, 7}},
	{0x75, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6}},
	{0x84, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}},
	{0x73, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6}},
	{0x95, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 5, 6, 7, 5, 7, 8}},
	{0x86, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6, 0, 6, 7}},
	{0x95, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7, 4, 7, 8}},
	{0x84, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6, 3, 6, 7}},
	{0xA6, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 5, 6, 7, 5, 7, 8, 5, 8, 9}},
	{0x95, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 6, 7, 8}},
	{0xA4, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 7, 8, 9}},
	{0x93, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	{0xB5, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 5, 6, 7, 8, 9, 10}},
	{0xA6, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6, 7, 8, 9}},
	{0x97, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6, 0, 6, 7, 0, 7, 8}},
	{0xA6, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7, 4, 7, 8, 4, 8, 9}},
	{0x95, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6, 3, 6, 7, 3, 7, 8}},
	{0xB7, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 5, 6, 7, 5, 7, 8, 5, 8, 9, 5, 9, 10}},
	{0xA4, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 6, 8, 9}},
	{0xA6, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 6, 7, 8, 6, 8, 9}},
	{0xA6, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6, 3, 6, 7, 3, 7, 8, 3, 8, 9}},
	{0xA8, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6, 0, 6, 7, 0, 7, 8, 0, 8, 9}},
	{0xB5, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 6, 8, 9, 6, 9, 10}},
	{0xB7, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6, 0, 6, 7, 8, 9, 10}},
	{0xB7, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 6, 7, 8, 6, 8, 9, 6, 9, 10}},
	{0xA4, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6, 7, 8, 9}},
	{0xC4, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	{0xC6, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 6, 7, 8, 9, 10, 11}},
	{0xB5, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6, 3, 6, 7, 8, 9, 10}},
	{0xC6, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 6, 8, 9, 6, 9, 10, 6, 10, 11}},
	{0xC8, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 6, 7, 8, 6, 8, 9, 6, 9, 10, 6, 10, 11}},
	{0xB7, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6, 3, 6, 7, 3, 7, 8, 3, 8, 9, 3, 9, 10}},
	{0xC6, []uint8{0, 1, 2, 3, 4, 5, 3, 5, 6, 3, 6, 7, 3, 7, 8, 9, 10, 11}},
	{0xC6, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7, 8, 9, 10, 8, 10, 11}},
	{0xB7, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6, 7, 8, 9, 7, 9, 10}},
	{0xC8, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7, 4, 7, 8, 4, 8, 9, 4, 9, 10, 4, 10, 11}},
	{0xB9, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6, 0, 6, 7, 0, 7, 8, 0, 8, 9, 0, 9, 10}},
}

// transitionVertexData lists one edge code per generated vertex for each
// transition case. The low byte names the two sample points of the edge
// (0x0 through 0xC); transition cells carry no reuse hint.
var transitionVertexData = [512][]uint16{
	{},
	{0x009A, 0x009B, 0x0003, 0x0001},
	{0x0012, 0x0001, 0x0014},
	{0x0012, 0x009A, 0x009B, 0x0003, 0x0014},
	{0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0012, 0x0025, 0x00AC, 0x009B, 0x0003, 0x0001},
	{0x0025, 0x00AC, 0x009A, 0x0001, 0x0014},
	{0x0025, 0x00AC, 0x009B, 0x0003, 0x0014},
	{0x0058, 0x0025, 0x0045},
	{0x009A, 0x009B, 0x0003, 0x0001, 0x0058, 0x0025, 0x0045},
	{0x0012, 0x0001, 0x0014, 0x0058, 0x0025, 0x0045},
	{0x0012, 0x009A, 0x009B, 0x0003, 0x0014, 0x0058, 0x0025, 0x0045},
	{0x0058, 0x00AC, 0x009A, 0x0012, 0x0045},
	{0x0012, 0x0045, 0x0058, 0x00AC, 0x009B, 0x0003, 0x0001},
	{0x0045, 0x0058, 0x00AC, 0x009A, 0x0001, 0x0014},
	{0x0045, 0x0058, 0x00AC, 0x009B, 0x0003, 0x0014},
	{0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x009A, 0x009B, 0x0003, 0x0001, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0012, 0x0001, 0x0014, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0012, 0x009A, 0x009B, 0x0003, 0x0014, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0058, 0x0078, 0x00BC, 0x009A, 0x0012, 0x0025},
	{0x0012, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009B, 0x0003, 0x0001},
	{0x0025, 0x0058, 0x0078, 0x00BC, 0x009A, 0x0001, 0x0014},
	{0x0025, 0x0058, 0x0078, 0x00BC, 0x009B, 0x0003, 0x0014},
	{0x0078, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x009A, 0x009B, 0x0003, 0x0001, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x0012, 0x0001, 0x0014, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x0012, 0x009A, 0x009B, 0x0003, 0x0014, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x0078, 0x00BC, 0x009A, 0x0012, 0x0045},
	{0x0012, 0x0045, 0x0078, 0x00BC, 0x009B, 0x0003, 0x0001},
	{0x0045, 0x0078, 0x00BC, 0x009A, 0x0001, 0x0014},
	{0x0014, 0x0003, 0x009B, 0x00BC, 0x0078, 0x0045},
	{0x0078, 0x0047, 0x0067},
	{0x009A, 0x009B, 0x0003, 0x0001, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x0001, 0x0014, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x009A, 0x009B, 0x0003, 0x0014, 0x0078, 0x0047, 0x0067},
	{0x00AC, 0x009A, 0x0012, 0x0025, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x0025, 0x00AC, 0x009B, 0x0003, 0x0001, 0x0078, 0x0047, 0x0067},
	{0x0025, 0x00AC, 0x009A, 0x0001, 0x0014, 0x0078, 0x0047, 0x0067},
	{0x0025, 0x00AC, 0x009B, 0x0003, 0x0014, 0x0078, 0x0047, 0x0067},
	{0x0058, 0x0025, 0x0045, 0x0078, 0x0047, 0x0067},
	{0x009A, 0x009B, 0x0003, 0x0001, 0x0058, 0x0025, 0x0045, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x0001, 0x0014, 0x0058, 0x0025, 0x0045, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x009A, 0x009B, 0x0003, 0x0014, 0x0058, 0x0025, 0x0045, 0x0078, 0x0047, 0x0067},
	{0x0058, 0x00AC, 0x009A, 0x0012, 0x0045, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x0045, 0x0058, 0x00AC, 0x009B, 0x0003, 0x0001, 0x0078, 0x0047, 0x0067},
	{0x0045, 0x0058, 0x00AC, 0x009A, 0x0001, 0x0014, 0x0078, 0x0047, 0x0067},
	{0x0014, 0x0003, 0x009B, 0x00AC, 0x0058, 0x0045, 0x0067, 0x0047, 0x0078},
	{0x00BC, 0x00AC, 0x0058, 0x0047, 0x0067},
	{0x009A, 0x009B, 0x0003, 0x0001, 0x00BC, 0x00AC, 0x0058, 0x0047, 0x0067},
	{0x0012, 0x0001, 0x0014, 0x00BC, 0x00AC, 0x0058, 0x0047, 0x0067},
	{0x0012, 0x009A, 0x009B, 0x0003, 0x0014, 0x00BC, 0x00AC, 0x0058, 0x0047, 0x0067},
	{0x0058, 0x0047, 0x0067, 0x00BC, 0x009A, 0x0012, 0x0025},
	{0x0012, 0x0025, 0x0058, 0x0047, 0x0067, 0x00BC, 0x009B, 0x0003, 0x0001},
	{0x0025, 0x0058, 0x0047, 0x0067, 0x00BC, 0x009A, 0x0001, 0x0014},
	{0x0014, 0x0003, 0x009B, 0x00BC, 0x0067, 0x0047, 0x0058, 0x0025},
	{0x0047, 0x0067, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x009A, 0x009B, 0x0003, 0x0001, 0x0047, 0x0067, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x0012, 0x0001, 0x0014, 0x0047, 0x0067, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x0014, 0x0003, 0x009B, 0x009A, 0x0012, 0x0045, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0047},
	{0x0047, 0x0067, 0x00BC, 0x009A, 0x0012, 0x0045},
	{0x0001, 0x0003, 0x009B, 0x00BC, 0x0067, 0x0047, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x00BC, 0x0067, 0x0047, 0x0045},
	{0x0014, 0x0003, 0x009B, 0x00BC, 0x0067, 0x0047, 0x0045},
	{0x009B, 0x00BC, 0x0067, 0x0036},
	{0x009A, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0012, 0x0001, 0x0014, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0012, 0x009A, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0014},
	{0x00AC, 0x009A, 0x0012, 0x0025, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0012, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0025, 0x00AC, 0x009A, 0x0001, 0x0014, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0025, 0x00AC, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0014},
	{0x0058, 0x0025, 0x0045, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x009A, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0001, 0x0058, 0x0025, 0x0045},
	{0x0012, 0x0001, 0x0014, 0x0058, 0x0025, 0x0045, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0012, 0x009A, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0014, 0x0058, 0x0025, 0x0045},
	{0x0058, 0x00AC, 0x009A, 0x0012, 0x0045, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0012, 0x0045, 0x0058, 0x00AC, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0045, 0x0058, 0x00AC, 0x009A, 0x0001, 0x0014, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0014, 0x0003, 0x0036, 0x0067, 0x00BC, 0x00AC, 0x0058, 0x0045},
	{0x009B, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0036},
	{0x009A, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0012, 0x0001, 0x0014, 0x009B, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0036},
	{0x0012, 0x009A, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0036, 0x0003, 0x0014},
	{0x0058, 0x0078, 0x0067, 0x0036, 0x009B, 0x009A, 0x0012, 0x0025},
	{0x0012, 0x0025, 0x0058, 0x0078, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0025, 0x0058, 0x0078, 0x0067, 0x0036, 0x009B, 0x009A, 0x0001, 0x0014},
	{0x0014, 0x0003, 0x0036, 0x0067, 0x0078, 0x0058, 0x0025},
	{0x0078, 0x0067, 0x0036, 0x009B, 0x00AC, 0x0025, 0x0045},
	{0x009A, 0x00AC, 0x0025, 0x0045, 0x0078, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0012, 0x0001, 0x0014, 0x0078, 0x0067, 0x0036, 0x009B, 0x00AC, 0x0025, 0x0045},
	{0x0014, 0x0003, 0x0036, 0x0067, 0x0078, 0x0045, 0x0025, 0x00AC, 0x009A, 0x0012},
	{0x0078, 0x0067, 0x0036, 0x009B, 0x009A, 0x0012, 0x0045},
	{0x0001, 0x0003, 0x0036, 0x0067, 0x0078, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x009B, 0x0036, 0x0067, 0x0078, 0x0045},
	{0x0014, 0x0003, 0x0036, 0x0067, 0x0078, 0x0045},
	{0x009B, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x009A, 0x00BC, 0x0078, 0x0047, 0x0036, 0x0003, 0x0001},
	{0x0012, 0x0001, 0x0014, 0x009B, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x0012, 0x009A, 0x00BC, 0x0078, 0x0047, 0x0036, 0x0003, 0x0014},
	{0x00AC, 0x009A, 0x0012, 0x0025, 0x009B, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x0012, 0x0025, 0x00AC, 0x00BC, 0x0078, 0x0047, 0x0036, 0x0003, 0x0001},
	{0x0025, 0x00AC, 0x009A, 0x0001, 0x0014, 0x009B, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x0014, 0x0003, 0x0036, 0x0047, 0x0078, 0x00BC, 0x00AC, 0x0025},
	{0x0058, 0x0025, 0x0045, 0x009B, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x009A, 0x00BC, 0x0078, 0x0047, 0x0036, 0x0003, 0x0001, 0x0058, 0x0025, 0x0045},
	{0x0012, 0x0001, 0x0014, 0x0058, 0x0025, 0x0045, 0x009B, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x0014, 0x0003, 0x0036, 0x0047, 0x0078, 0x00BC, 0x009A, 0x0012, 0x0045, 0x0025, 0x0058},
	{0x0058, 0x00AC, 0x009A, 0x0012, 0x0045, 0x009B, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x0001, 0x0003, 0x0036, 0x0047, 0x0078, 0x00BC, 0x00AC, 0x0058, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0045, 0x0036, 0x0047, 0x0078, 0x00BC, 0x009B},
	{0x0014, 0x0003, 0x0036, 0x0047, 0x0078, 0x00BC, 0x00AC, 0x0058, 0x0045},
	{0x009B, 0x00AC, 0x0058, 0x0047, 0x0036},
	{0x009A, 0x00AC, 0x0058, 0x0047, 0x0036, 0x0003, 0x0001},
	{0x0012, 0x0001, 0x0014, 0x009B, 0x00AC, 0x0058, 0x0047, 0x0036},
	{0x0014, 0x0003, 0x0036, 0x0047, 0x0058, 0x00AC, 0x009A, 0x0012},
	{0x0058, 0x0047, 0x0036, 0x009B, 0x009A, 0x0012, 0x0025},
	{0x0001, 0x0003, 0x0036, 0x0047, 0x0058, 0x0025, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x009B, 0x0036, 0x0047, 0x0058, 0x0025},
	{0x0014, 0x0003, 0x0036, 0x0047, 0x0058, 0x0025},
	{0x0047, 0x0036, 0x009B, 0x00AC, 0x0025, 0x0045},
	{0x0001, 0x0003, 0x0036, 0x0047, 0x0045, 0x0025, 0x00AC, 0x009A},
	{0x0014, 0x0001, 0x0012, 0x0045, 0x0025, 0x00AC, 0x009B, 0x0036, 0x0047},
	{0x0014, 0x0003, 0x0036, 0x0047, 0x0045, 0x0025, 0x00AC, 0x009A, 0x0012},
	{0x0045, 0x0012, 0x009A, 0x009B, 0x0036, 0x0047},
	{0x0001, 0x0003, 0x0036, 0x0047, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x009B, 0x0036, 0x0047, 0x0045},
	{0x0014, 0x0003, 0x0036, 0x0047, 0x0045},
	{0x0036, 0x0034, 0x0003},
	{0x009A, 0x009B, 0x0036, 0x0034, 0x0001},
	{0x0012, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003},
	{0x0012, 0x009A, 0x009B, 0x0036, 0x0034, 0x0014},
	{0x0036, 0x0034, 0x0003, 0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0012, 0x0025, 0x00AC, 0x009B, 0x0036, 0x0034, 0x0001},
	{0x0025, 0x00AC, 0x009A, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003},
	{0x0025, 0x00AC, 0x009B, 0x0036, 0x0034, 0x0014},
	{0x0036, 0x0034, 0x0003, 0x0058, 0x0025, 0x0045},
	{0x009A, 0x009B, 0x0036, 0x0034, 0x0001, 0x0058, 0x0025, 0x0045},
	{0x0012, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003, 0x0058, 0x0025, 0x0045},
	{0x0012, 0x009A, 0x009B, 0x0036, 0x0034, 0x0014, 0x0058, 0x0025, 0x0045},
	{0x0036, 0x0034, 0x0003, 0x0058, 0x00AC, 0x009A, 0x0012, 0x0045},
	{0x0012, 0x0045, 0x0058, 0x00AC, 0x009B, 0x0036, 0x0034, 0x0001},
	{0x0045, 0x0058, 0x00AC, 0x009A, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x00AC, 0x0058, 0x0045},
	{0x0036, 0x0034, 0x0003, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x009A, 0x009B, 0x0036, 0x0034, 0x0001, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0012, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0012, 0x009A, 0x009B, 0x0036, 0x0034, 0x0014, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0036, 0x0034, 0x0003, 0x0058, 0x0078, 0x00BC, 0x009A, 0x0012, 0x0025},
	{0x0012, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009B, 0x0036, 0x0034, 0x0001},
	{0x0025, 0x0058, 0x0078, 0x00BC, 0x009A, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x00BC, 0x0078, 0x0058, 0x0025},
	{0x0036, 0x0034, 0x0003, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x009A, 0x009B, 0x0036, 0x0034, 0x0001, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x0012, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x009A, 0x0012, 0x0045, 0x0025, 0x00AC, 0x00BC, 0x0078},
	{0x0036, 0x0034, 0x0003, 0x0078, 0x00BC, 0x009A, 0x0012, 0x0045},
	{0x0001, 0x0034, 0x0036, 0x009B, 0x00BC, 0x0078, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x00BC, 0x0078, 0x0045, 0x0003, 0x0034, 0x0036},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x00BC, 0x0078, 0x0045},
	{0x0036, 0x0034, 0x0003, 0x0078, 0x0047, 0x0067},
	{0x009A, 0x009B, 0x0036, 0x0034, 0x0001, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x009A, 0x009B, 0x0036, 0x0034, 0x0014, 0x0078, 0x0047, 0x0067},
	{0x0036, 0x0034, 0x0003, 0x00AC, 0x009A, 0x0012, 0x0025, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x0025, 0x00AC, 0x009B, 0x0036, 0x0034, 0x0001, 0x0078, 0x0047, 0x0067},
	{0x0025, 0x00AC, 0x009A, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003, 0x0078, 0x0047, 0x0067},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x00AC, 0x0025, 0x0067, 0x0047, 0x0078},
	{0x0036, 0x0034, 0x0003, 0x0058, 0x0025, 0x0045, 0x0078, 0x0047, 0x0067},
	{0x009A, 0x009B, 0x0036, 0x0034, 0x0001, 0x0058, 0x0025, 0x0045, 0x0078, 0x0047, 0x0067},
	{0x0012, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003, 0x0058, 0x0025, 0x0045, 0x0078, 0x0047, 0x0067},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x009A, 0x0012, 0x0045, 0x0025, 0x0058, 0x0067, 0x0047, 0x0078},
	{0x0036, 0x0034, 0x0003, 0x0058, 0x00AC, 0x009A, 0x0012, 0x0045, 0x0078, 0x0047, 0x0067},
	{0x0001, 0x0034, 0x0036, 0x009B, 0x00AC, 0x0058, 0x0045, 0x0012, 0x0067, 0x0047, 0x0078},
	{0x0014, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0045, 0x0003, 0x0034, 0x0036, 0x0067, 0x0047, 0x0078},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x00AC, 0x0058, 0x0045, 0x0067, 0x0047, 0x0078},
	{0x0036, 0x0034, 0x0003, 0x00BC, 0x00AC, 0x0058, 0x0047, 0x0067},
	{0x009A, 0x009B, 0x0036, 0x0034, 0x0001, 0x00BC, 0x00AC, 0x0058, 0x0047, 0x0067},
	{0x0012, 0x0001, 0x0014, 0x0036, 0x0034, 0x0003, 0x00BC, 0x00AC, 0x0058, 0x0047, 0x0067},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x009A, 0x0012, 0x0067, 0x0047, 0x0058, 0x00AC, 0x00BC},
	{0x0036, 0x0034, 0x0003, 0x0058, 0x0047, 0x0067, 0x00BC, 0x009A, 0x0012, 0x0025},
	{0x0001, 0x0034, 0x0036, 0x009B, 0x00BC, 0x0067, 0x0047, 0x0058, 0x0025, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x00BC, 0x0067, 0x0047, 0x0058, 0x0025, 0x0003, 0x0034, 0x0036},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x00BC, 0x0067, 0x0047, 0x0058, 0x0025},
	{0x0036, 0x0034, 0x0003, 0x0047, 0x0067, 0x00BC, 0x00AC, 0x0025, 0x0045},
	{0x0001, 0x0034, 0x0036, 0x009B, 0x009A, 0x0045, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0047},
	{0x0014, 0x0001, 0x0012, 0x0003, 0x0034, 0x0036, 0x0045, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0047},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x009A, 0x0012, 0x0045, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0047},
	{0x0003, 0x0034, 0x0036, 0x0045, 0x0012, 0x009A, 0x00BC, 0x0067, 0x0047},
	{0x0001, 0x0034, 0x0036, 0x009B, 0x00BC, 0x0067, 0x0047, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x00BC, 0x0067, 0x0047, 0x0045, 0x0003, 0x0034, 0x0036},
	{0x0014, 0x0034, 0x0036, 0x009B, 0x00BC, 0x0067, 0x0047, 0x0045},
	{0x009B, 0x00BC, 0x0067, 0x0034, 0x0003},
	{0x009A, 0x00BC, 0x0067, 0x0034, 0x0001},
	{0x0012, 0x0001, 0x0014, 0x009B, 0x00BC, 0x0067, 0x0034, 0x0003},
	{0x0012, 0x009A, 0x00BC, 0x0067, 0x0034, 0x0014},
	{0x009B, 0x00BC, 0x0067, 0x0034, 0x0003, 0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0012, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0034, 0x0001},
	{0x0025, 0x00AC, 0x009A, 0x0001, 0x0014, 0x009B, 0x00BC, 0x0067, 0x0034, 0x0003},
	{0x0014, 0x0034, 0x0067, 0x00BC, 0x00AC, 0x0025},
	{0x009B, 0x00BC, 0x0067, 0x0034, 0x0003, 0x0058, 0x0025, 0x0045},
	{0x009A, 0x00BC, 0x0067, 0x0034, 0x0001, 0x0058, 0x0025, 0x0045},
	{0x0012, 0x0001, 0x0014, 0x009B, 0x00BC, 0x0067, 0x0034, 0x0003, 0x0058, 0x0025, 0x0045},
	{0x0014, 0x0034, 0x0067, 0x00BC, 0x009A, 0x0012, 0x0045, 0x0025, 0x0058},
	{0x009B, 0x00BC, 0x0067, 0x0034, 0x0003, 0x0058, 0x00AC, 0x009A, 0x0012, 0x0045},
	{0x0001, 0x0034, 0x0067, 0x00BC, 0x00AC, 0x0058, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0045, 0x0003, 0x0034, 0x0067, 0x00BC, 0x009B},
	{0x0014, 0x0034, 0x0067, 0x00BC, 0x00AC, 0x0058, 0x0045},
	{0x009B, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0034, 0x0003},
	{0x009A, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0034, 0x0001},
	{0x0012, 0x0001, 0x0014, 0x009B, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0034, 0x0003},
	{0x0014, 0x0034, 0x0067, 0x0078, 0x0058, 0x00AC, 0x009A, 0x0012},
	{0x009B, 0x009A, 0x0012, 0x0025, 0x0058, 0x0078, 0x0067, 0x0034, 0x0003},
	{0x0001, 0x0034, 0x0067, 0x0078, 0x0058, 0x0025, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x009B, 0x0003, 0x0034, 0x0067, 0x0078, 0x0058, 0x0025},
	{0x0014, 0x0034, 0x0067, 0x0078, 0x0058, 0x0025},
	{0x009B, 0x00AC, 0x0025, 0x0045, 0x0078, 0x0067, 0x0034, 0x0003},
	{0x0001, 0x0034, 0x0067, 0x0078, 0x0045, 0x0025, 0x00AC, 0x009A},
	{0x0014, 0x0001, 0x0012, 0x0003, 0x0034, 0x0067, 0x0078, 0x0045, 0x0025, 0x00AC, 0x009B},
	{0x0014, 0x0034, 0x0067, 0x0078, 0x0045, 0x0025, 0x00AC, 0x009A, 0x0012},
	{0x0003, 0x0034, 0x0067, 0x0078, 0x0045, 0x0012, 0x009A, 0x009B},
	{0x0001, 0x0034, 0x0067, 0x0078, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x009B, 0x0003, 0x0034, 0x0067, 0x0078, 0x0045},
	{0x0014, 0x0034, 0x0067, 0x0078, 0x0045},
	{0x009B, 0x00BC, 0x0078, 0x0047, 0x0034, 0x0003},
	{0x009A, 0x00BC, 0x0078, 0x0047, 0x0034, 0x0001},
	{0x0012, 0x0001, 0x0014, 0x009B, 0x00BC, 0x0078, 0x0047, 0x0034, 0x0003},
	{0x0014, 0x0034, 0x0047, 0x0078, 0x00BC, 0x009A, 0x0012},
	{0x009B, 0x00BC, 0x0078, 0x0047, 0x0034, 0x0003, 0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0001, 0x0034, 0x0047, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x00AC, 0x0025, 0x0003, 0x0034, 0x0047, 0x0078, 0x00BC, 0x009B},
	{0x0014, 0x0034, 0x0047, 0x0078, 0x00BC, 0x00AC, 0x0025},
	{0x009B, 0x00BC, 0x0078, 0x0047, 0x0034, 0x0003, 0x0058, 0x0025, 0x0045},
	{0x0001, 0x0034, 0x0047, 0x0078, 0x00BC, 0x009A, 0x0045, 0x0025, 0x0058},
	{0x0014, 0x0001, 0x0012, 0x0003, 0x0034, 0x0047, 0x0078, 0x00BC, 0x009B, 0x0045, 0x0025, 0x0058},
	{0x0014, 0x0034, 0x0047, 0x0078, 0x00BC, 0x009A, 0x0012, 0x0045, 0x0025, 0x0058},
	{0x0003, 0x0034, 0x0047, 0x0078, 0x00BC, 0x009B, 0x0045, 0x0012, 0x009A, 0x00AC, 0x0058},
	{0x0001, 0x0034, 0x0047, 0x0078, 0x00BC, 0x00AC, 0x0058, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0045, 0x0003, 0x0034, 0x0047, 0x0078, 0x00BC, 0x009B},
	{0x0014, 0x0034, 0x0047, 0x0078, 0x00BC, 0x00AC, 0x0058, 0x0045},
	{0x009B, 0x00AC, 0x0058, 0x0047, 0x0034, 0x0003},
	{0x0001, 0x0034, 0x0047, 0x0058, 0x00AC, 0x009A},
	{0x0014, 0x0001, 0x0012, 0x0003, 0x0034, 0x0047, 0x0058, 0x00AC, 0x009B},
	{0x0014, 0x0034, 0x0047, 0x0058, 0x00AC, 0x009A, 0x0012},
	{0x0003, 0x0034, 0x0047, 0x0058, 0x0025, 0x0012, 0x009A, 0x009B},
	{0x0001, 0x0034, 0x0047, 0x0058, 0x0025, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x009B, 0x0003, 0x0034, 0x0047, 0x0058, 0x0025},
	{0x0014, 0x0034, 0x0047, 0x0058, 0x0025},
	{0x0003, 0x0034, 0x0047, 0x0045, 0x0025, 0x00AC, 0x009B},
	{0x0001, 0x0034, 0x0047, 0x0045, 0x0025, 0x00AC, 0x009A},
	{0x0014, 0x0001, 0x0012, 0x0003, 0x0034, 0x0047, 0x0045, 0x0025, 0x00AC, 0x009B},
	{0x0014, 0x0034, 0x0047, 0x0045, 0x0025, 0x00AC, 0x009A, 0x0012},
	{0x0003, 0x0034, 0x0047, 0x0045, 0x0012, 0x009A, 0x009B},
	{0x0001, 0x0034, 0x0047, 0x0045, 0x0012},
	{0x0014, 0x0001, 0x009A, 0x009B, 0x0003, 0x0034, 0x0047, 0x0045},
	{0x0014, 0x0034, 0x0047, 0x0045},
	{0x0047, 0x0045, 0x0014, 0x0034},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x009A, 0x009B, 0x0003, 0x0001},
	{0x0047, 0x0045, 0x0012, 0x0001, 0x0034},
	{0x0047, 0x0045, 0x0012, 0x009A, 0x009B, 0x0003, 0x0034},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x0012, 0x0025, 0x00AC, 0x009B, 0x0003, 0x0001},
	{0x0047, 0x0045, 0x0025, 0x00AC, 0x009A, 0x0001, 0x0034},
	{0x0047, 0x0045, 0x0025, 0x00AC, 0x009B, 0x0003, 0x0034},
	{0x0047, 0x0058, 0x0025, 0x0014, 0x0034},
	{0x0047, 0x0058, 0x0025, 0x0014, 0x0034, 0x009A, 0x009B, 0x0003, 0x0001},
	{0x0047, 0x0058, 0x0025, 0x0012, 0x0001, 0x0034},
	{0x0047, 0x0058, 0x0025, 0x0012, 0x009A, 0x009B, 0x0003, 0x0034},
	{0x0047, 0x0058, 0x00AC, 0x009A, 0x0012, 0x0014, 0x0034},
	{0x0047, 0x0058, 0x00AC, 0x009B, 0x0003, 0x0001, 0x0012, 0x0014, 0x0034},
	{0x0047, 0x0058, 0x00AC, 0x009A, 0x0001, 0x0034},
	{0x0034, 0x0003, 0x009B, 0x00AC, 0x0058, 0x0047},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x009A, 0x009B, 0x0003, 0x0001, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0047, 0x0045, 0x0012, 0x0001, 0x0034, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0047, 0x0045, 0x0012, 0x009A, 0x009B, 0x0003, 0x0034, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x0058, 0x0078, 0x00BC, 0x009A, 0x0012, 0x0025},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x0012, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009B, 0x0003, 0x0001},
	{0x0047, 0x0045, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009A, 0x0001, 0x0034},
	{0x0034, 0x0003, 0x009B, 0x00BC, 0x0078, 0x0058, 0x0025, 0x0045, 0x0047},
	{0x0047, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0014, 0x0034},
	{0x0047, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0014, 0x0034, 0x009A, 0x009B, 0x0003, 0x0001},
	{0x0047, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0012, 0x0001, 0x0034},
	{0x0034, 0x0003, 0x009B, 0x009A, 0x0012, 0x0025, 0x00AC, 0x00BC, 0x0078, 0x0047},
	{0x0047, 0x0078, 0x00BC, 0x009A, 0x0012, 0x0014, 0x0034},
	{0x0034, 0x0014, 0x0012, 0x0001, 0x0003, 0x009B, 0x00BC, 0x0078, 0x0047},
	{0x0034, 0x0001, 0x009A, 0x00BC, 0x0078, 0x0047},
	{0x0034, 0x0003, 0x009B, 0x00BC, 0x0078, 0x0047},
	{0x0067, 0x0078, 0x0045, 0x0014, 0x0034},
	{0x0067, 0x0078, 0x0045, 0x0014, 0x0034, 0x009A, 0x009B, 0x0003, 0x0001},
	{0x0067, 0x0078, 0x0045, 0x0012, 0x0001, 0x0034},
	{0x0067, 0x0078, 0x0045, 0x0012, 0x009A, 0x009B, 0x0003, 0x0034},
	{0x0067, 0x0078, 0x0045, 0x0014, 0x0034, 0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0067, 0x0078, 0x0045, 0x0014, 0x0034, 0x0012, 0x0025, 0x00AC, 0x009B, 0x0003, 0x0001},
	{0x0067, 0x0078, 0x0045, 0x0025, 0x00AC, 0x009A, 0x0001, 0x0034},
	{0x0034, 0x0003, 0x009B, 0x00AC, 0x0025, 0x0045, 0x0078, 0x0067},
	{0x0067, 0x0078, 0x0058, 0x0025, 0x0014, 0x0034},
	{0x0067, 0x0078, 0x0058, 0x0025, 0x0014, 0x0034, 0x009A, 0x009B, 0x0003, 0x0001},
	{0x0067, 0x0078, 0x0058, 0x0025, 0x0012, 0x0001, 0x0034},
	{0x0034, 0x0003, 0x009B, 0x009A, 0x0012, 0x0025, 0x0058, 0x0078, 0x0067},
	{0x0067, 0x0078, 0x0058, 0x00AC, 0x009A, 0x0012, 0x0014, 0x0034},
	{0x0034, 0x0014, 0x0012, 0x0001, 0x0003, 0x009B, 0x00AC, 0x0058, 0x0078, 0x0067},
	{0x0034, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0078, 0x0067},
	{0x0034, 0x0003, 0x009B, 0x00AC, 0x0058, 0x0078, 0x0067},
	{0x0067, 0x00BC, 0x00AC, 0x0058, 0x0045, 0x0014, 0x0034},
	{0x0067, 0x00BC, 0x00AC, 0x0058, 0x0045, 0x0014, 0x0034, 0x009A, 0x009B, 0x0003, 0x0001},
	{0x0067, 0x00BC, 0x00AC, 0x0058, 0x0045, 0x0012, 0x0001, 0x0034},
	{0x0034, 0x0003, 0x009B, 0x009A, 0x0012, 0x0045, 0x0058, 0x00AC, 0x00BC, 0x0067},
	{0x0067, 0x00BC, 0x009A, 0x0012, 0x0025, 0x0058, 0x0045, 0x0014, 0x0034},
	{0x0034, 0x0014, 0x0045, 0x0058, 0x0025, 0x0012, 0x0001, 0x0003, 0x009B, 0x00BC, 0x0067},
	{0x0034, 0x0001, 0x009A, 0x00BC, 0x0067, 0x0025, 0x0045, 0x0058},
	{0x0034, 0x0003, 0x009B, 0x00BC, 0x0067, 0x0025, 0x0045, 0x0058},
	{0x0067, 0x00BC, 0x00AC, 0x0025, 0x0014, 0x0034},
	{0x0034, 0x0014, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0001, 0x0003, 0x009B, 0x009A},
	{0x0034, 0x0001, 0x0012, 0x0025, 0x00AC, 0x00BC, 0x0067},
	{0x0034, 0x0003, 0x009B, 0x009A, 0x0012, 0x0025, 0x00AC, 0x00BC, 0x0067},
	{0x0034, 0x0014, 0x0012, 0x009A, 0x00BC, 0x0067},
	{0x0034, 0x0014, 0x0012, 0x0001, 0x0003, 0x009B, 0x00BC, 0x0067},
	{0x0034, 0x0001, 0x009A, 0x00BC, 0x0067},
	{0x0034, 0x0003, 0x009B, 0x00BC, 0x0067},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x009A, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0047, 0x0045, 0x0012, 0x0001, 0x0034, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0047, 0x0045, 0x0012, 0x009A, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0034},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x00AC, 0x009A, 0x0012, 0x0025, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x0012, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0047, 0x0045, 0x0025, 0x00AC, 0x009A, 0x0001, 0x0034, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0034, 0x0003, 0x0036, 0x0067, 0x00BC, 0x00AC, 0x0025, 0x0045, 0x0047},
	{0x0047, 0x0058, 0x0025, 0x0014, 0x0034, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0047, 0x0058, 0x0025, 0x0014, 0x0034, 0x009A, 0x00BC, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0047, 0x0058, 0x0025, 0x0012, 0x0001, 0x0034, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0034, 0x0003, 0x0036, 0x0067, 0x00BC, 0x009A, 0x0012, 0x0025, 0x0058, 0x0047},
	{0x0047, 0x0058, 0x00AC, 0x009A, 0x0012, 0x0014, 0x0034, 0x009B, 0x00BC, 0x0067, 0x0036},
	{0x0034, 0x0014, 0x0012, 0x0001, 0x0003, 0x0036, 0x0067, 0x00BC, 0x00AC, 0x0058, 0x0047},
	{0x0034, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0047, 0x0036, 0x0067, 0x00BC, 0x009B},
	{0x0034, 0x0003, 0x0036, 0x0067, 0x00BC, 0x00AC, 0x0058, 0x0047},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x009B, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0036},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x009A, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0036, 0x0003, 0x0001},
	{0x0047, 0x0045, 0x0012, 0x0001, 0x0034, 0x009B, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0036},
	{0x0034, 0x0003, 0x0036, 0x0067, 0x0078, 0x0058, 0x00AC, 0x009A, 0x0012, 0x0045, 0x0047},
	{0x0047, 0x0045, 0x0014, 0x0034, 0x0058, 0x0078, 0x0067, 0x0036, 0x009B, 0x009A, 0x0012, 0x0025},
	{0x0034, 0x0014, 0x0045, 0x0047, 0x0001, 0x0003, 0x0036, 0x0067, 0x0078, 0x0058, 0x0025, 0x0012},
	{0x0034, 0x0001, 0x009A, 0x009B, 0x0036, 0x0067, 0x0078, 0x0058, 0x0025, 0x0045, 0x0047},
	{0x0034, 0x0003, 0x0036, 0x0067, 0x0078, 0x0058, 0x0025, 0x0045, 0x0047},
	{0x0047, 0x0078, 0x0067, 0x0036, 0x009B, 0x00AC, 0x0025, 0x0014, 0x0034},
	{0x0034, 0x0014, 0x0025, 0x00AC, 0x009A, 0x0001, 0x0003, 0x0036, 0x0067, 0x0078, 0x0047},
	{0x0034, 0x0001, 0x0012, 0x0025, 0x00AC, 0x009B, 0x0036, 0x0067, 0x0078, 0x0047},
	{0x0034, 0x0003, 0x0036, 0x0067, 0x0078, 0x0047, 0x0012, 0x0025, 0x00AC, 0x009A},
	{0x0034, 0x0014, 0x0012, 0x009A, 0x009B, 0x0036, 0x0067, 0x0078, 0x0047},
	{0x0034, 0x0014, 0x0012, 0x0001, 0x0003, 0x0036, 0x0067, 0x0078, 0x0047},
	{0x0034, 0x0001, 0x009A, 0x009B, 0x0036, 0x0067, 0x0078, 0x0047},
	{0x0034, 0x0003, 0x0036, 0x0067, 0x0078, 0x0047},
	{0x0036, 0x009B, 0x00BC, 0x0078, 0x0045, 0x0014, 0x0034},
	{0x0036, 0x0003, 0x0001, 0x009A, 0x00BC, 0x0078, 0x0045, 0x0014, 0x0034},
	{0x0036, 0x009B, 0x00BC, 0x0078, 0x0045, 0x0012, 0x0001, 0x0034},
	{0x0034, 0x0003, 0x0036, 0x0012, 0x0045, 0x0078, 0x00BC, 0x009A},
	{0x0036, 0x009B, 0x00BC, 0x0078, 0x0045, 0x0014, 0x0034, 0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0034, 0x0014, 0x0045, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0012, 0x0001, 0x0003, 0x0036},
	{0x0034, 0x0001, 0x009A, 0x00AC, 0x0025, 0x0045, 0x0078, 0x00BC, 0x009B, 0x0036},
	{0x0034, 0x0003, 0x0036, 0x0025, 0x0045, 0x0078, 0x00BC, 0x00AC},
	{0x0036, 0x009B, 0x00BC, 0x0078, 0x0058, 0x0025, 0x0014, 0x0034},
	{0x0034, 0x0014, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009A, 0x0001, 0x0003, 0x0036},
	{0x0034, 0x0001, 0x0012, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009B, 0x0036},
	{0x0034, 0x0003, 0x0036, 0x0012, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009A},
	{0x0034, 0x0014, 0x0012, 0x009A, 0x00AC, 0x0058, 0x0078, 0x00BC, 0x009B, 0x0036},
	{0x0034, 0x0014, 0x0012, 0x0001, 0x0003, 0x0036, 0x0058, 0x0078, 0x00BC, 0x00AC},
	{0x0034, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0078, 0x00BC, 0x009B, 0x0036},
	{0x0034, 0x0003, 0x0036, 0x0058, 0x0078, 0x00BC, 0x00AC},
	{0x0036, 0x009B, 0x00AC, 0x0058, 0x0045, 0x0014, 0x0034},
	{0x0034, 0x0014, 0x0045, 0x0058, 0x00AC, 0x009A, 0x0001, 0x0003, 0x0036},
	{0x0034, 0x0001, 0x0012, 0x0045, 0x0058, 0x00AC, 0x009B, 0x0036},
	{0x0034, 0x0003, 0x0036, 0x0012, 0x0045, 0x0058, 0x00AC, 0x009A},
	{0x0034, 0x0014, 0x0045, 0x0058, 0x0025, 0x0012, 0x009A, 0x009B, 0x0036},
	{0x0034, 0x0014, 0x0045, 0x0058, 0x0025, 0x0012, 0x0001, 0x0003, 0x0036},
	{0x0034, 0x0001, 0x009A, 0x009B, 0x0036, 0x0025, 0x0045, 0x0058},
	{0x0034, 0x0003, 0x0036, 0x0025, 0x0045, 0x0058},
	{0x0034, 0x0014, 0x0025, 0x00AC, 0x009B, 0x0036},
	{0x0034, 0x0014, 0x0025, 0x00AC, 0x009A, 0x0001, 0x0003, 0x0036},
	{0x0034, 0x0001, 0x0012, 0x0025, 0x00AC, 0x009B, 0x0036},
	{0x0034, 0x0003, 0x0036, 0x0012, 0x0025, 0x00AC, 0x009A},
	{0x0034, 0x0014, 0x0012, 0x009A, 0x009B, 0x0036},
	{0x0034, 0x0014, 0x0012, 0x0001, 0x0003, 0x0036},
	{0x0034, 0x0001, 0x009A, 0x009B, 0x0036},
	{0x0034, 0x0003, 0x0036},
	{0x0036, 0x0047, 0x0045, 0x0014, 0x0003},
	{0x009A, 0x009B, 0x0036, 0x0047, 0x0045, 0x0014, 0x0001},
	{0x0036, 0x0047, 0x0045, 0x0012, 0x0001, 0x0003},
	{0x009A, 0x009B, 0x0036, 0x0047, 0x0045, 0x0012},
	{0x0036, 0x0047, 0x0045, 0x0014, 0x0003, 0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0012, 0x0025, 0x00AC, 0x009B, 0x0036, 0x0047, 0x0045, 0x0014, 0x0001},
	{0x0036, 0x0047, 0x0045, 0x0025, 0x00AC, 0x009A, 0x0001, 0x0003},
	{0x0025, 0x0045, 0x0047, 0x0036, 0x009B, 0x00AC},
	{0x0036, 0x0047, 0x0058, 0x0025, 0x0014, 0x0003},
	{0x009A, 0x009B, 0x0036, 0x0047, 0x0058, 0x0025, 0x0014, 0x0001},
	{0x0036, 0x0047, 0x0058, 0x0025, 0x0012, 0x0001, 0x0003},
	{0x0012, 0x0025, 0x0058, 0x0047, 0x0036, 0x009B, 0x009A},
	{0x0036, 0x0047, 0x0058, 0x00AC, 0x009A, 0x0012, 0x0014, 0x0003},
	{0x0001, 0x0014, 0x0012, 0x0047, 0x0036, 0x009B, 0x00AC, 0x0058},
	{0x0003, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0047, 0x0036},
	{0x0047, 0x0036, 0x009B, 0x00AC, 0x0058},
	{0x0036, 0x0047, 0x0045, 0x0014, 0x0003, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x009A, 0x009B, 0x0036, 0x0047, 0x0045, 0x0014, 0x0001, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0036, 0x0047, 0x0045, 0x0012, 0x0001, 0x0003, 0x00BC, 0x00AC, 0x0058, 0x0078},
	{0x0012, 0x0045, 0x0047, 0x0036, 0x009B, 0x009A, 0x0078, 0x0058, 0x00AC, 0x00BC},
	{0x0036, 0x0047, 0x0045, 0x0014, 0x0003, 0x0058, 0x0078, 0x00BC, 0x009A, 0x0012, 0x0025},
	{0x0001, 0x0014, 0x0045, 0x0047, 0x0036, 0x009B, 0x00BC, 0x0078, 0x0058, 0x0025, 0x0012},
	{0x0003, 0x0001, 0x009A, 0x00BC, 0x0078, 0x0058, 0x0025, 0x0045, 0x0047, 0x0036},
	{0x0025, 0x0045, 0x0047, 0x0036, 0x009B, 0x00BC, 0x0078, 0x0058},
	{0x0036, 0x0047, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0014, 0x0003},
	{0x0001, 0x0014, 0x0025, 0x00AC, 0x00BC, 0x0078, 0x0047, 0x0036, 0x009B, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0025, 0x00AC, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x0012, 0x0025, 0x00AC, 0x00BC, 0x0078, 0x0047, 0x0036, 0x009B, 0x009A},
	{0x0003, 0x0014, 0x0012, 0x009A, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x0001, 0x0014, 0x0012, 0x0047, 0x0036, 0x009B, 0x00BC, 0x0078},
	{0x0003, 0x0001, 0x009A, 0x00BC, 0x0078, 0x0047, 0x0036},
	{0x0047, 0x0036, 0x009B, 0x00BC, 0x0078},
	{0x0036, 0x0067, 0x0078, 0x0045, 0x0014, 0x0003},
	{0x009A, 0x009B, 0x0036, 0x0067, 0x0078, 0x0045, 0x0014, 0x0001},
	{0x0036, 0x0067, 0x0078, 0x0045, 0x0012, 0x0001, 0x0003},
	{0x0012, 0x0045, 0x0078, 0x0067, 0x0036, 0x009B, 0x009A},
	{0x0036, 0x0067, 0x0078, 0x0045, 0x0014, 0x0003, 0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0001, 0x0014, 0x0045, 0x0078, 0x0067, 0x0036, 0x009B, 0x00AC, 0x0025, 0x0012},
	{0x0003, 0x0001, 0x009A, 0x00AC, 0x0025, 0x0045, 0x0078, 0x0067, 0x0036},
	{0x0025, 0x0045, 0x0078, 0x0067, 0x0036, 0x009B, 0x00AC},
	{0x0036, 0x0067, 0x0078, 0x0058, 0x0025, 0x0014, 0x0003},
	{0x0001, 0x0014, 0x0025, 0x0058, 0x0078, 0x0067, 0x0036, 0x009B, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0025, 0x0058, 0x0078, 0x0067, 0x0036},
	{0x0012, 0x0025, 0x0058, 0x0078, 0x0067, 0x0036, 0x009B, 0x009A},
	{0x0003, 0x0014, 0x0012, 0x009A, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0036},
	{0x0001, 0x0014, 0x0012, 0x0067, 0x0036, 0x009B, 0x00AC, 0x0058, 0x0078},
	{0x0003, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0036},
	{0x0067, 0x0036, 0x009B, 0x00AC, 0x0058, 0x0078},
	{0x0036, 0x0067, 0x00BC, 0x00AC, 0x0058, 0x0045, 0x0014, 0x0003},
	{0x0001, 0x0014, 0x0045, 0x0058, 0x00AC, 0x00BC, 0x0067, 0x0036, 0x009B, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0045, 0x0058, 0x00AC, 0x00BC, 0x0067, 0x0036},
	{0x0012, 0x0045, 0x0058, 0x00AC, 0x00BC, 0x0067, 0x0036, 0x009B, 0x009A},
	{0x0003, 0x0014, 0x0045, 0x0058, 0x0025, 0x0012, 0x009A, 0x00BC, 0x0067, 0x0036},
	{0x0001, 0x0014, 0x0045, 0x0058, 0x0025, 0x0012, 0x0067, 0x0036, 0x009B, 0x00BC},
	{0x0003, 0x0001, 0x009A, 0x00BC, 0x0067, 0x0036, 0x0025, 0x0045, 0x0058},
	{0x0025, 0x0045, 0x0058, 0x0067, 0x0036, 0x009B, 0x00BC},
	{0x0003, 0x0014, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0036},
	{0x0001, 0x0014, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0036, 0x009B, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0036},
	{0x0012, 0x0025, 0x00AC, 0x00BC, 0x0067, 0x0036, 0x009B, 0x009A},
	{0x0003, 0x0014, 0x0012, 0x009A, 0x00BC, 0x0067, 0x0036},
	{0x0001, 0x0014, 0x0012, 0x0067, 0x0036, 0x009B, 0x00BC},
	{0x0003, 0x0001, 0x009A, 0x00BC, 0x0067, 0x0036},
	{0x0067, 0x0036, 0x009B, 0x00BC},
	{0x009B, 0x00BC, 0x0067, 0x0047, 0x0045, 0x0014, 0x0003},
	{0x009A, 0x00BC, 0x0067, 0x0047, 0x0045, 0x0014, 0x0001},
	{0x009B, 0x00BC, 0x0067, 0x0047, 0x0045, 0x0012, 0x0001, 0x0003},
	{0x0012, 0x0045, 0x0047, 0x0067, 0x00BC, 0x009A},
	{0x009B, 0x00BC, 0x0067, 0x0047, 0x0045, 0x0014, 0x0003, 0x00AC, 0x009A, 0x0012, 0x0025},
	{0x0001, 0x0014, 0x0045, 0x0047, 0x0067, 0x00BC, 0x00AC, 0x0025, 0x0012},
	{0x0003, 0x0001, 0x009A, 0x00AC, 0x0025, 0x0045, 0x0047, 0x0067, 0x00BC, 0x009B},
	{0x0025, 0x0045, 0x0047, 0x0067, 0x00BC, 0x00AC},
	{0x009B, 0x00BC, 0x0067, 0x0047, 0x0058, 0x0025, 0x0014, 0x0003},
	{0x0001, 0x0014, 0x0025, 0x0058, 0x0047, 0x0067, 0x00BC, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0025, 0x0058, 0x0047, 0x0067, 0x00BC, 0x009B},
	{0x0012, 0x0025, 0x0058, 0x0047, 0x0067, 0x00BC, 0x009A},
	{0x0003, 0x0014, 0x0012, 0x009A, 0x00AC, 0x0058, 0x0047, 0x0067, 0x00BC, 0x009B},
	{0x0001, 0x0014, 0x0012, 0x0047, 0x0067, 0x00BC, 0x00AC, 0x0058},
	{0x0003, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0047, 0x0067, 0x00BC, 0x009B},
	{0x0047, 0x0067, 0x00BC, 0x00AC, 0x0058},
	{0x009B, 0x00AC, 0x0058, 0x0078, 0x0067, 0x0047, 0x0045, 0x0014, 0x0003},
	{0x0001, 0x0014, 0x0045, 0x0047, 0x0067, 0x0078, 0x0058, 0x00AC, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0045, 0x0047, 0x0067, 0x0078, 0x0058, 0x00AC, 0x009B},
	{0x0012, 0x0045, 0x0047, 0x0067, 0x0078, 0x0058, 0x00AC, 0x009A},
	{0x0003, 0x0014, 0x0045, 0x0047, 0x0067, 0x0078, 0x0058, 0x0025, 0x0012, 0x009A, 0x009B},
	{0x0001, 0x0014, 0x0045, 0x0047, 0x0067, 0x0078, 0x0058, 0x0025, 0x0012},
	{0x0003, 0x0001, 0x009A, 0x009B, 0x0025, 0x0045, 0x0047, 0x0067, 0x0078, 0x0058},
	{0x0025, 0x0045, 0x0047, 0x0067, 0x0078, 0x0058},
	{0x0003, 0x0014, 0x0025, 0x00AC, 0x009B, 0x0047, 0x0067, 0x0078},
	{0x0001, 0x0014, 0x0025, 0x00AC, 0x009A, 0x0047, 0x0067, 0x0078},
	{0x0003, 0x0001, 0x0012, 0x0025, 0x00AC, 0x009B, 0x0047, 0x0067, 0x0078},
	{0x0012, 0x0025, 0x00AC, 0x009A, 0x0047, 0x0067, 0x0078},
	{0x0003, 0x0014, 0x0012, 0x009A, 0x009B, 0x0047, 0x0067, 0x0078},
	{0x0001, 0x0014, 0x0012, 0x0047, 0x0067, 0x0078},
	{0x0003, 0x0001, 0x009A, 0x009B, 0x0047, 0x0067, 0x0078},
	{0x0047, 0x0067, 0x0078},
	{0x009B, 0x00BC, 0x0078, 0x0045, 0x0014, 0x0003},
	{0x0001, 0x0014, 0x0045, 0x0078, 0x00BC, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0045, 0x0078, 0x00BC, 0x009B},
	{0x0012, 0x0045, 0x0078, 0x00BC, 0x009A},
	{0x0003, 0x0014, 0x0045, 0x0078, 0x00BC, 0x009B, 0x0025, 0x0012, 0x009A, 0x00AC},
	{0x0001, 0x0014, 0x0045, 0x0078, 0x00BC, 0x00AC, 0x0025, 0x0012},
	{0x0003, 0x0001, 0x009A, 0x00AC, 0x0025, 0x0045, 0x0078, 0x00BC, 0x009B},
	{0x0025, 0x0045, 0x0078, 0x00BC, 0x00AC},
	{0x0003, 0x0014, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009B},
	{0x0001, 0x0014, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009B},
	{0x0012, 0x0025, 0x0058, 0x0078, 0x00BC, 0x009A},
	{0x0003, 0x0014, 0x0012, 0x009A, 0x00AC, 0x0058, 0x0078, 0x00BC, 0x009B},
	{0x0001, 0x0014, 0x0012, 0x0058, 0x0078, 0x00BC, 0x00AC},
	{0x0003, 0x0001, 0x009A, 0x00AC, 0x0058, 0x0078, 0x00BC, 0x009B},
	{0x0058, 0x0078, 0x00BC, 0x00AC},
	{0x0003, 0x0014, 0x0045, 0x0058, 0x00AC, 0x009B},
	{0x0001, 0x0014, 0x0045, 0x0058, 0x00AC, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0045, 0x0058, 0x00AC, 0x009B},
	{0x0012, 0x0045, 0x0058, 0x00AC, 0x009A},
	{0x0003, 0x0014, 0x0045, 0x0058, 0x0025, 0x0012, 0x009A, 0x009B},
	{0x0001, 0x0014, 0x0045, 0x0058, 0x0025, 0x0012},
	{0x0003, 0x0001, 0x009A, 0x009B, 0x0025, 0x0045, 0x0058},
	{0x0025, 0x0045, 0x0058},
	{0x0003, 0x0014, 0x0025, 0x00AC, 0x009B},
	{0x0001, 0x0014, 0x0025, 0x00AC, 0x009A},
	{0x0003, 0x0001, 0x0012, 0x0025, 0x00AC, 0x009B},
	{0x0012, 0x0025, 0x00AC, 0x009A},
	{0x0003, 0x0014, 0x0012, 0x009A, 0x009B},
	{0x0001, 0x0014, 0x0012},
	{0x0003, 0x0001, 0x009A, 0x009B},
	{},
}
