package graph

import "github.com/google/uuid"

// SampleCast returns the built-in demo cast, used when no cast file is
// supplied. It covers most relationship kinds so the legend and the
// palette get exercised out of the box.
func SampleCast() ([]Character, []Relationship) {
	chars := []Character{
		{ID: "mara", Name: "Mara Voss"},
		{ID: "dario", Name: "Dario Quell"},
		{ID: "imre", Name: "Imre Sel"},
		{ID: "tamsin", Name: "Tamsin Voss"},
		{ID: "okonkwo", Name: "Okonkwo Bere"},
		{ID: "liet", Name: "Liet Harrow"},
		{ID: "petra", Name: "Petra Anselm"},
		{ID: "corvin", Name: "Corvin Dray"},
	}

	rel := func(from, to string, kind Kind, desc string, strength int, public bool) Relationship {
		return Relationship{
			ID:          uuid.NewString(),
			FromID:      from,
			ToID:        to,
			Kind:        kind,
			Description: desc,
			Strength:    strength,
			Public:      public,
		}
	}

	rels := []Relationship{
		rel("mara", "tamsin", KindFamily, "sisters, estranged since the mutiny", 8, true),
		rel("mara", "dario", KindAlly, "first mate, loyal to a fault", 9, true),
		rel("dario", "liet", KindRomantic, "kept quiet from the rest of the crew", 7, false),
		rel("imre", "mara", KindMentor, "taught her to read the currents", 6, true),
		rel("okonkwo", "corvin", KindEnemy, "Corvin sold out his old crew", 9, true),
		rel("petra", "imre", KindColleague, "shared charts for a decade", 4, true),
		rel("liet", "petra", KindFriend, "met in the Harrow archives", 5, true),
		rel("tamsin", "corvin", KindRival, "both claim the same salvage", 6, true),
		rel("okonkwo", "dario", KindAcquaintance, "crossed paths in port once", 2, true),
	}
	return chars, rels
}
