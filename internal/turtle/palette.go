package turtle

// Palette is the set RandomPenColor draws from, as RGB triples.
var Palette = [16][3]uint8{
	{255, 255, 255}, // white
	{0, 0, 255},     // blue
	{0, 255, 0},     // green
	{0, 255, 255},   // cyan
	{255, 0, 0},     // red
	{255, 0, 255},   // magenta
	{255, 255, 0},   // yellow
	{180, 180, 180}, // grey
	{155, 96, 59},   // brown
	{197, 136, 18},  // orange-brown
	{100, 162, 64},  // olive green
	{120, 187, 187}, // teal
	{255, 149, 119}, // salmon
	{144, 113, 208}, // purple
	{255, 163, 0},   // orange
	{183, 183, 183}, // light grey
}
