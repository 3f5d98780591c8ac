package graph

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCast(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cast.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCast(t *testing.T) {
	path := writeCast(t, `{
		"characters": [
			{"id": "a", "name": "A"},
			{"id": "b", "name": "B"}
		],
		"relationships": [
			{"id": "r1", "fromId": "a", "toId": "b", "kind": "rival", "strength": 6, "isPublic": true}
		]
	}`)
	cf, err := LoadCast(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cf.Characters) != 2 || len(cf.Relationships) != 1 {
		t.Fatalf("loaded %d characters, %d relationships", len(cf.Characters), len(cf.Relationships))
	}
	r := cf.Relationships[0]
	if r.Kind != KindRival || r.Strength != 6 || !r.Public {
		t.Errorf("relationship fields wrong: %+v", r)
	}
}

func TestLoadCastMintsIDs(t *testing.T) {
	path := writeCast(t, `{
		"characters": [{"id": "a", "name": "A"}, {"id": "b", "name": "B"}],
		"relationships": [
			{"fromId": "a", "toId": "b", "kind": "friend", "strength": 4},
			{"fromId": "b", "toId": "a", "kind": "rival", "strength": 4}
		]
	}`)
	cf, err := LoadCast(path)
	if err != nil {
		t.Fatal(err)
	}
	r0, r1 := cf.Relationships[0], cf.Relationships[1]
	if r0.ID == "" || r1.ID == "" {
		t.Fatal("missing relationship ids should be minted")
	}
	if r0.ID == r1.ID {
		t.Error("minted ids should be unique")
	}
}

func TestLoadCastClampsStrength(t *testing.T) {
	path := writeCast(t, `{
		"characters": [{"id": "a", "name": "A"}, {"id": "b", "name": "B"}],
		"relationships": [
			{"id": "lo", "fromId": "a", "toId": "b", "kind": "friend", "strength": 0},
			{"id": "hi", "fromId": "b", "toId": "a", "kind": "rival", "strength": 99}
		]
	}`)
	cf, err := LoadCast(path)
	if err != nil {
		t.Fatal(err)
	}
	if cf.Relationships[0].Strength != 1 {
		t.Errorf("strength 0 clamped to %d, want 1", cf.Relationships[0].Strength)
	}
	if cf.Relationships[1].Strength != 10 {
		t.Errorf("strength 99 clamped to %d, want 10", cf.Relationships[1].Strength)
	}
}

func TestLoadCastErrors(t *testing.T) {
	if _, err := LoadCast(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should error")
	}
	path := writeCast(t, `{not json`)
	if _, err := LoadCast(path); err == nil {
		t.Error("malformed JSON should error")
	}
}
