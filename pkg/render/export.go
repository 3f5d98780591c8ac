package render

import (
	"fmt"
	"path/filepath"
)

// ExportFilename is the fixed name every export writes. Exporting twice
// overwrites the previous image.
const ExportFilename = "relationship-graph.png"

// ExportPNG renders the scene at the given pixel size and writes it to
// dir/ExportFilename, returning the written path. One-shot; it is not
// part of the frame loop.
func ExportPNG(s Scene, width, height int, dir string) (string, error) {
	c := NewGGCanvas(width, height)
	Draw(c, s)
	DrawLegend(c)

	path := filepath.Join(dir, ExportFilename)
	if err := c.SavePNG(path); err != nil {
		return "", fmt.Errorf("export png: %w", err)
	}
	return path, nil
}
