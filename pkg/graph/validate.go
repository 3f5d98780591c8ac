package graph

import "fmt"

// Warning describes a non-blocking finding about the input cast.
// Nothing here stops a graph from building; dangling relationships are
// simply dropped and self-loops draw as zero-length edges.
type Warning struct {
	RelationshipID string
	Message        string
}

func (w Warning) String() string {
	if w.RelationshipID == "" {
		return w.Message
	}
	return fmt.Sprintf("relationship %s: %s", w.RelationshipID, w.Message)
}

// Validate reports relationships that will not produce a usable edge.
// This function is read-only and never mutates its inputs.
func Validate(chars []Character, rels []Relationship) []Warning {
	ids := make(map[string]bool, len(chars))
	for _, ch := range chars {
		ids[ch.ID] = true
	}

	var warns []Warning
	for _, rel := range rels {
		if !ids[rel.FromID] {
			warns = append(warns, Warning{
				RelationshipID: rel.ID,
				Message:        fmt.Sprintf("unknown character %q; edge dropped", rel.FromID),
			})
			continue
		}
		if !ids[rel.ToID] {
			warns = append(warns, Warning{
				RelationshipID: rel.ID,
				Message:        fmt.Sprintf("unknown character %q; edge dropped", rel.ToID),
			})
			continue
		}
		if rel.FromID == rel.ToID {
			warns = append(warns, Warning{
				RelationshipID: rel.ID,
				Message:        "self-referencing relationship; drawn as a zero-length edge",
			})
		}
		if rel.Strength < 1 || rel.Strength > 10 {
			warns = append(warns, Warning{
				RelationshipID: rel.ID,
				Message:        fmt.Sprintf("strength %d outside 1..10", rel.Strength),
			})
		}
	}
	return warns
}
