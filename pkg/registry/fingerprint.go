package registry

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
)

// Fingerprint derives a deterministic cache key from a layout request.
// Persons and relationships are canonicalized (sorted, normalized
// direction) first, so semantically identical inputs presented in a
// different order share a key.
func Fingerprint(persons []family.Person, rels []family.Relationship, width float64) string {
	sortedPersons := make([]family.Person, len(persons))
	copy(sortedPersons, persons)
	sort.SliceStable(sortedPersons, func(i, j int) bool {
		return sortedPersons[i].PID < sortedPersons[j].PID
	})

	norm := family.NormalizeRelationships(persons, rels)
	sort.SliceStable(norm, func(i, j int) bool {
		if norm[i].FromPID != norm[j].FromPID {
			return norm[i].FromPID < norm[j].FromPID
		}
		if norm[i].ToPID != norm[j].ToPID {
			return norm[i].ToPID < norm[j].ToPID
		}
		return norm[i].Type < norm[j].Type
	})

	var b strings.Builder
	fmt.Fprintf(&b, "w=%g;", width)
	// The name is length-prefixed so a name containing the separator
	// characters cannot collide with an adjacent field or record.
	for _, p := range sortedPersons {
		fmt.Fprintf(&b, "p=%d,%d:%s,%d,%s;", p.PID, len(p.Name), p.Name, p.AgeYears(), p.Gender)
	}
	for _, r := range norm {
		fmt.Fprintf(&b, "r=%d,%d,%s;", r.FromPID, r.ToPID, r.Type)
	}

	h := fnv.New64a()
	h.Write([]byte(b.String()))
	return fmt.Sprintf("%016x", h.Sum64())
}
