package render

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	faceOnce sync.Once
	face     font.Face
)

// labelFace returns the shared 12pt label face used by both backends.
// goregular.TTF is embedded in the binary, so parsing cannot fail at
// runtime with anything a caller could handle.
func labelFace() font.Face {
	faceOnce.Do(func() {
		otf, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(err)
		}
		face, err = opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    12,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			panic(err)
		}
	})
	return face
}
