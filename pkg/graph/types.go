package graph

import (
	"fmt"
	"image/color"
)

// Character is an external cast record. The graph reads it and never
// writes it back.
type Character struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Kind classifies a relationship. The vocabulary is closed; values
// outside it are tolerated and drawn with the neutral color.
type Kind string

const (
	KindFamily       Kind = "family"
	KindRomantic     Kind = "romantic"
	KindFriend       Kind = "friend"
	KindEnemy        Kind = "enemy"
	KindAlly         Kind = "ally"
	KindMentor       Kind = "mentor"
	KindRival        Kind = "rival"
	KindColleague    Kind = "colleague"
	KindAcquaintance Kind = "acquaintance"
	KindOther        Kind = "other"
)

// Kinds returns every known kind in legend order.
func Kinds() []Kind {
	return []Kind{
		KindFamily, KindRomantic, KindFriend, KindEnemy, KindAlly,
		KindMentor, KindRival, KindColleague, KindAcquaintance, KindOther,
	}
}

// neutralColor is used for KindOther and for any kind outside the
// vocabulary.
var neutralColor = color.RGBA{0x95, 0xA5, 0xA6, 0xFF}

// Color returns the display color for the kind. Unknown kinds map to
// the neutral color, never an error.
func (k Kind) Color() color.RGBA {
	switch k {
	case KindFamily:
		return color.RGBA{0xE6, 0x7E, 0x22, 0xFF}
	case KindRomantic:
		return color.RGBA{0xE9, 0x1E, 0x63, 0xFF}
	case KindFriend:
		return color.RGBA{0x2E, 0xCC, 0x71, 0xFF}
	case KindEnemy:
		return color.RGBA{0xE7, 0x4C, 0x3C, 0xFF}
	case KindAlly:
		return color.RGBA{0x34, 0x98, 0xDB, 0xFF}
	case KindMentor:
		return color.RGBA{0x9B, 0x59, 0xB6, 0xFF}
	case KindRival:
		return color.RGBA{0xD3, 0x54, 0x00, 0xFF}
	case KindColleague:
		return color.RGBA{0x1A, 0xBC, 0x9C, 0xFF}
	case KindAcquaintance:
		return color.RGBA{0x7F, 0x8C, 0x8D, 0xFF}
	default:
		return neutralColor
	}
}

// parseHex converts a "#RRGGBB" string to an RGBA color. The palette
// entries are compile-time data, so a malformed entry just comes out
// black rather than erroring.
func parseHex(s string) color.RGBA {
	var r, g, b uint8
	fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	return color.RGBA{r, g, b, 0xFF}
}

// Relationship is an external record connecting two characters.
type Relationship struct {
	ID          string `json:"id"`
	FromID      string `json:"fromId"`
	ToID        string `json:"toId"`
	Kind        Kind   `json:"kind"`
	Description string `json:"description,omitempty"`
	Strength    int    `json:"strength"` // 1..10
	Public      bool   `json:"isPublic"`
}

// Node is the simulated point for one character. Position and velocity
// are mutated every tick; the rest is fixed at build time.
type Node struct {
	ID     string
	Name   string
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.RGBA
}

// Edge connects two nodes. Color comes from the relationship kind,
// width from its strength.
type Edge struct {
	From  *Node
	To    *Node
	Rel   Relationship
	Color color.RGBA
	Width float64
}
