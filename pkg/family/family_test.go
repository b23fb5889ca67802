package family

import (
	"encoding/json"
	"testing"
)

func TestRelTypeInverse(t *testing.T) {
	cases := []struct {
		typ, want RelType
	}{
		{RelParent, RelChild},
		{RelChild, RelParent},
		{RelGrandparent, RelGrandchild},
		{RelGrandchild, RelGrandparent},
		{RelAuntUncle, RelNieceNephew},
		{RelSpouse, RelSpouse},
		{RelSibling, RelSibling},
		{RelCousin, RelCousin},
		{RelOther, RelOther},
	}
	for _, c := range cases {
		if got := c.typ.Inverse(); got != c.want {
			t.Errorf("Inverse(%s): expected %s, got %s", c.typ, c.want, got)
		}
		// Inverting twice must round-trip.
		if got := c.typ.Inverse().Inverse(); got != c.typ {
			t.Errorf("double Inverse(%s): got %s", c.typ, got)
		}
	}
}

func TestParseRelTypeAliases(t *testing.T) {
	for alias, want := range map[string]RelType{
		"father": RelParent, "mother": RelParent,
		"son": RelChild, "daughter": RelChild,
		"husband": RelSpouse, "wife": RelSpouse,
		"sister": RelSibling,
		"spouse": RelSpouse,
		"nope":   RelOther,
	} {
		if got := ParseRelType(alias); got != want {
			t.Errorf("ParseRelType(%q): expected %s, got %s", alias, want, got)
		}
	}
}

func TestNormalizedDirection(t *testing.T) {
	// child edge B→A is the same fact as parent edge A→B
	childEdge := Relationship{FromPID: 2, ToPID: 1, Type: RelChild, Active: true}
	n := childEdge.Normalized()
	if n.FromPID != 1 || n.ToPID != 2 || n.Type != RelParent {
		t.Errorf("expected parent 1→2, got %s %d→%d", n.Type, n.FromPID, n.ToPID)
	}
}

func TestNormalizeRelationshipsDedup(t *testing.T) {
	persons := []Person{{PID: 1, Name: "a"}, {PID: 2, Name: "b"}}
	rels := []Relationship{
		{FromPID: 1, ToPID: 2, Type: RelParent, Active: true},
		{FromPID: 2, ToPID: 1, Type: RelChild, Active: true},  // mirror of the above
		{FromPID: 2, ToPID: 1, Type: RelSpouse, Active: true}, // distinct fact
		{FromPID: 1, ToPID: 2, Type: RelSibling, Active: false},
		{FromPID: 1, ToPID: 99, Type: RelParent, Active: true}, // unknown pid
		{FromPID: 1, ToPID: 1, Type: RelSpouse, Active: true},  // self edge
	}
	got := NormalizeRelationships(persons, rels)
	if len(got) != 2 {
		t.Fatalf("expected 2 normalized facts, got %d: %v", len(got), got)
	}
	if got[0].Type != RelParent || got[0].FromPID != 1 {
		t.Errorf("fact 0: expected parent 1→2, got %+v", got[0])
	}
	if got[1].Type != RelSpouse || got[1].FromPID != 1 || got[1].ToPID != 2 {
		t.Errorf("fact 1: expected spouse 1→2 (stable endpoint order), got %+v", got[1])
	}
}

func TestPersonJSONRoundTrip(t *testing.T) {
	p := Person{PID: 7, Name: "Aishath", Age: AgeOf(42), Gender: GenderFemale}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Person
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.PID != 7 || back.Name != "Aishath" || back.AgeYears() != 42 || back.Gender != GenderFemale {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestGenderParsing(t *testing.T) {
	if ParseGender("M") != GenderMale || ParseGender("f") != GenderFemale {
		t.Error("basic gender parsing failed")
	}
	if ParseGender("x") != GenderUnknown || ParseGender("") != GenderUnknown {
		t.Error("unknown gender should parse to GenderUnknown")
	}
}

func TestSeniorityDelta(t *testing.T) {
	if d, ok := RelParent.SeniorityDelta(); !ok || d != 1 {
		t.Errorf("parent delta: got %d ok=%v", d, ok)
	}
	if d, ok := RelGrandchild.SeniorityDelta(); !ok || d != -2 {
		t.Errorf("grandchild delta: got %d ok=%v", d, ok)
	}
	if _, ok := RelOther.SeniorityDelta(); ok {
		t.Error("other must carry no level information")
	}
	if _, ok := RelInLaw.SeniorityDelta(); ok {
		t.Error("in-law must carry no level information")
	}
}
