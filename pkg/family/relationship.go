package family

// Relationship is an explicit, typed link between two persons as
// supplied by the backend. It is read-only to the inference engine.
type Relationship struct {
	FromPID int     `json:"from_pid" validate:"required,min=1"`
	ToPID   int     `json:"to_pid" validate:"required,min=1"`
	Type    RelType `json:"type"`
	Active  bool    `json:"active"`
}

// Normalized returns the relationship with its direction canonicalized
// senior→junior (or left as-is for same-generation and untyped links),
// so that A-parent-B and B-child-A collapse to the same fact.
func (r Relationship) Normalized() Relationship {
	delta, ok := r.Type.SeniorityDelta()
	if !ok {
		return r
	}
	if delta < 0 {
		return Relationship{
			FromPID: r.ToPID,
			ToPID:   r.FromPID,
			Type:    r.Type.Inverse(),
			Active:  r.Active,
		}
	}
	if delta == 0 && r.FromPID > r.ToPID {
		// Symmetric types get a stable endpoint order too.
		return Relationship{
			FromPID: r.ToPID,
			ToPID:   r.FromPID,
			Type:    r.Type,
			Active:  r.Active,
		}
	}
	return r
}

// key identifies the normalized fact for de-duplication.
type relKey struct {
	from, to int
	typ      RelType
}

// NormalizeRelationships canonicalizes direction, drops inactive edges,
// drops edges referencing PIDs outside the person set, and collapses
// mirror-image duplicates to a single fact. Output order is
// deterministic: first occurrence order of the surviving facts.
func NormalizeRelationships(persons []Person, rels []Relationship) []Relationship {
	known := make(map[int]bool, len(persons))
	for _, p := range persons {
		known[p.PID] = true
	}

	seen := make(map[relKey]bool, len(rels))
	out := make([]Relationship, 0, len(rels))
	for _, r := range rels {
		if !r.Active {
			continue
		}
		if !known[r.FromPID] || !known[r.ToPID] {
			continue
		}
		if r.FromPID == r.ToPID {
			continue
		}
		n := r.Normalized()
		k := relKey{from: n.FromPID, to: n.ToPID, typ: n.Type}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, n)
	}
	return out
}
