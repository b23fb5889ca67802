package kinship

import (
	"sort"

	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
)

// Classify infers parent/child roles for a flat set of persons sharing
// an address. When the supplied relationships carry generation
// information the explicit graph wins (see AssignGenerations);
// otherwise the age-gap heuristic decides.
func Classify(persons []family.Person, rels []family.Relationship) *Classification {
	return ClassifyWithOptions(persons, rels, Options{})
}

// ClassifyWithOptions is Classify with tunable behavior.
func ClassifyWithOptions(persons []family.Person, rels []family.Relationship, opts Options) *Classification {
	if len(persons) == 0 {
		return newClassification()
	}

	norm := family.NormalizeRelationships(persons, rels)
	for _, r := range norm {
		if _, ok := r.Type.SeniorityDelta(); ok {
			return AssignGenerations(persons, rels)
		}
	}
	return classifyByAge(persons, opts)
}

// ClassifyByAge applies the age-gap heuristic alone, ignoring any
// explicit relationship data. This is the single authoritative
// implementation of the heuristic; every caller goes through it.
func ClassifyByAge(persons []family.Person) *Classification {
	return classifyByAge(persons, Options{})
}

func classifyByAge(persons []family.Person, opts Options) *Classification {
	result := newClassification()
	if len(persons) == 0 {
		return result
	}

	// Persons without age data sit out the gap math and default to
	// children, preserving their input order.
	aged := make([]family.Person, 0, len(persons))
	ageless := make([]family.Person, 0)
	for _, p := range persons {
		if p.HasAge() {
			aged = append(aged, p)
		} else {
			ageless = append(ageless, p)
		}
	}

	// Stable sort keeps equal-age candidates in input order so the
	// result is deterministic across runs.
	sort.SliceStable(aged, func(i, j int) bool {
		return aged[i].AgeYears() > aged[j].AgeYears()
	})

	if len(aged) == 0 {
		// Wholly absent age data is a degraded result, not an error.
		return allChildren(result, nil, ageless)
	}

	eldest := aged[0]
	children := make([]family.Person, 0, len(aged))
	peers := make([]family.Person, 0)
	for _, p := range aged[1:] {
		if eldest.AgeYears()-p.AgeYears() >= MinParentGap {
			children = append(children, p)
		} else {
			peers = append(peers, p)
		}
	}

	if len(children) == 0 {
		// Nobody is a full generation younger than the eldest, so no
		// parent can be identified. Everyone is a child.
		return allChildren(result, aged, ageless)
	}

	parents := []family.Person{eldest}

	// A peer sits inside the eldest's ten-year window, so it can only
	// remain in the result as the co-parent. More than one peer, or a
	// peer whose gap to some child falls short, leaves no assignment
	// where every parent clears the gap to every child.
	if len(peers) > 1 {
		return allChildren(result, aged, ageless)
	}
	if len(peers) == 1 {
		cand := peers[0]
		for _, c := range children {
			if cand.AgeYears()-c.AgeYears() < MinParentGap {
				return allChildren(result, aged, ageless)
			}
		}
		parents = append(parents, cand)
	}

	children = append(children, ageless...)

	result.Parents = parents
	result.Children = children
	for _, p := range parents {
		result.Levels[p.PID] = 0
	}
	for _, p := range children {
		result.Levels[p.PID] = 1
	}

	if opts.SecondPass {
		splitChildGeneration(result)
	}
	return result
}

// allChildren fills the degraded no-parents result: aged persons in
// descending-age order, ageless persons after them, everyone at level 0.
func allChildren(result *Classification, aged, ageless []family.Person) *Classification {
	result.Children = append(result.Children, aged...)
	result.Children = append(result.Children, ageless...)
	for _, p := range result.Children {
		result.Levels[p.PID] = 0
	}
	return result
}

// splitChildGeneration re-runs the gap rule over the child bucket. When
// the children themselves split into two generations, the original
// parents shift up to grandparents and the buckets cascade down.
func splitChildGeneration(c *Classification) {
	if len(c.Parents) == 0 || len(c.Children) < 2 {
		return
	}
	sub := ClassifyByAge(c.Children)
	if len(sub.Parents) == 0 {
		return
	}
	c.Grandparents = c.Parents
	c.Parents = sub.Parents
	c.Children = sub.Children
	for _, p := range c.Grandparents {
		c.Levels[p.PID] = 0
	}
	for _, p := range c.Parents {
		c.Levels[p.PID] = 1
	}
	for _, p := range c.Children {
		c.Levels[p.PID] = 2
	}
}
