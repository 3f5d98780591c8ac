package graph

import "testing"

func TestSampleCast(t *testing.T) {
	chars, rels := SampleCast()
	if len(chars) == 0 || len(rels) == 0 {
		t.Fatal("sample cast should not be empty")
	}
	if warns := Validate(chars, rels); len(warns) != 0 {
		t.Errorf("sample cast should validate cleanly, got %v", warns)
	}

	known := make(map[Kind]bool)
	for _, k := range Kinds() {
		known[k] = true
	}
	kindsUsed := make(map[Kind]bool)
	for _, r := range rels {
		if !known[r.Kind] {
			t.Errorf("relationship %s uses unknown kind %q", r.ID, r.Kind)
		}
		if r.ID == "" {
			t.Error("sample relationships should carry ids")
		}
		kindsUsed[r.Kind] = true
	}
	if len(kindsUsed) < 6 {
		t.Errorf("sample cast exercises only %d kinds, want at least 6", len(kindsUsed))
	}

	g := Build(chars, rels, DefaultWidth, DefaultHeight)
	if len(g.Edges) != len(rels) {
		t.Errorf("all sample relationships should resolve: %d edges from %d relationships", len(g.Edges), len(rels))
	}
}
