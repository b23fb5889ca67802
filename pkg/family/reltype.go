package family

import "fmt"

// RelType is the tagged set of explicit relationship kinds the engine
// understands. Anything outside this set is carried as RelOther and
// ignored during generation traversal.
type RelType int

const (
	RelOther RelType = iota
	RelParent
	RelChild
	RelSpouse
	RelSibling
	RelGrandparent
	RelGrandchild
	RelAuntUncle
	RelNieceNephew
	RelCousin
	RelInLaw
)

var relTypeNames = map[RelType]string{
	RelOther:       "other",
	RelParent:      "parent",
	RelChild:       "child",
	RelSpouse:      "spouse",
	RelSibling:     "sibling",
	RelGrandparent: "grandparent",
	RelGrandchild:  "grandchild",
	RelAuntUncle:   "aunt-uncle",
	RelNieceNephew: "niece-nephew",
	RelCousin:      "cousin",
	RelInLaw:       "in-law",
}

var relTypeValues = func() map[string]RelType {
	m := make(map[string]RelType, len(relTypeNames))
	for t, n := range relTypeNames {
		m[n] = t
	}
	// Wire aliases seen in directory exports.
	m["father"] = RelParent
	m["mother"] = RelParent
	m["son"] = RelChild
	m["daughter"] = RelChild
	m["husband"] = RelSpouse
	m["wife"] = RelSpouse
	m["brother"] = RelSibling
	m["sister"] = RelSibling
	return m
}()

// String returns the canonical wire name of the type.
func (t RelType) String() string {
	if n, ok := relTypeNames[t]; ok {
		return n
	}
	return "other"
}

// ParseRelType converts a wire name (or alias) to a RelType.
// Unknown names map to RelOther.
func ParseRelType(s string) RelType {
	if t, ok := relTypeValues[s]; ok {
		return t
	}
	return RelOther
}

// Inverse returns the same fact viewed from the other endpoint.
// A "parent" edge from A to B is the "child" edge from B to A.
func (t RelType) Inverse() RelType {
	switch t {
	case RelParent:
		return RelChild
	case RelChild:
		return RelParent
	case RelGrandparent:
		return RelGrandchild
	case RelGrandchild:
		return RelGrandparent
	case RelAuntUncle:
		return RelNieceNephew
	case RelNieceNephew:
		return RelAuntUncle
	default:
		// spouse, sibling, cousin, in-law and other are symmetric
		return t
	}
}

// SeniorityDelta is the generation offset from the edge source to the
// edge target: a parent edge A→B means B sits one generation below A,
// so the delta is +1. Same-generation links are 0. RelOther and RelInLaw
// carry no level information and report ok=false.
func (t RelType) SeniorityDelta() (delta int, ok bool) {
	switch t {
	case RelParent:
		return 1, true
	case RelChild:
		return -1, true
	case RelGrandparent:
		return 2, true
	case RelGrandchild:
		return -2, true
	case RelAuntUncle:
		return 1, true
	case RelNieceNephew:
		return -1, true
	case RelSpouse, RelSibling, RelCousin:
		return 0, true
	default:
		return 0, false
	}
}

// MarshalJSON encodes the type as its canonical name.
func (t RelType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes a wire name into a RelType.
func (t *RelType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("relationship type must be a JSON string, got %s", s)
	}
	*t = ParseRelType(s[1 : len(s)-1])
	return nil
}
