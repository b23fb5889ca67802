package kinship

import (
	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
)

// arc is one direction of a normalized relationship: delta is the
// generation offset of to relative to from (+1 = one level below).
type arc struct {
	to    int
	delta int
}

// AssignGenerations derives a generation level per person from explicit
// relationship edges via breadth-first propagation. Persons with no
// edges at all are batch-handed to the age-gap classifier and merged
// into the parent/child bands of the result.
//
// Conflicting level assignments (inconsistent input data) resolve by
// first-discovered-wins; later conflicting paths are ignored.
func AssignGenerations(persons []family.Person, rels []family.Relationship) *Classification {
	result := newClassification()
	if len(persons) == 0 {
		return result
	}

	norm := family.NormalizeRelationships(persons, rels)

	adj := make(map[int][]arc)
	for _, r := range norm {
		delta, ok := r.Type.SeniorityDelta()
		if !ok {
			continue
		}
		adj[r.FromPID] = append(adj[r.FromPID], arc{to: r.ToPID, delta: delta})
		adj[r.ToPID] = append(adj[r.ToPID], arc{to: r.FromPID, delta: -delta})
	}

	linked := make([]family.Person, 0, len(persons))
	isolated := make([]family.Person, 0)
	for _, p := range persons {
		if len(adj[p.PID]) > 0 {
			linked = append(linked, p)
		} else {
			isolated = append(isolated, p)
		}
	}

	if len(linked) == 0 {
		return ClassifyByAge(persons)
	}

	levels := traverse(linked, adj)
	normalizeLevels(levels)

	bandPersons := bandOrder(linked, levels)
	assignBuckets(result, bandPersons, levels)

	if len(isolated) > 0 {
		mergeIsolated(result, isolated)
	}
	return result
}

// traverse runs BFS level propagation. Roots are persons with no senior
// neighbor and at least one junior one; components without a root are
// seeded from their first person in input order. Visit-once semantics:
// the first-discovered level wins.
func traverse(linked []family.Person, adj map[int][]arc) map[int]int {
	levels := make(map[int]int, len(linked))
	visited := make(map[int]bool, len(linked))

	var queue []int
	for _, p := range linked {
		hasSenior, hasJunior := false, false
		for _, a := range adj[p.PID] {
			if a.delta < 0 {
				hasSenior = true
			}
			if a.delta > 0 {
				hasJunior = true
			}
		}
		if !hasSenior && hasJunior {
			queue = append(queue, p.PID)
			visited[p.PID] = true
			levels[p.PID] = 0
		}
	}

	bfs := func(queue []int) {
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, a := range adj[cur] {
				if visited[a.to] {
					continue
				}
				visited[a.to] = true
				levels[a.to] = levels[cur] + a.delta
				queue = append(queue, a.to)
			}
		}
	}
	bfs(queue)

	// Rootless components (spouse-only groups, cycles) still get
	// deterministic levels: seed from input order.
	for _, p := range linked {
		if !visited[p.PID] {
			visited[p.PID] = true
			levels[p.PID] = 0
			bfs([]int{p.PID})
		}
	}
	return levels
}

// normalizeLevels shifts all levels so the most senior generation is 0.
func normalizeLevels(levels map[int]int) {
	if len(levels) == 0 {
		return
	}
	min := 0
	first := true
	for _, l := range levels {
		if first || l < min {
			min = l
			first = false
		}
	}
	if min == 0 {
		return
	}
	for pid, l := range levels {
		levels[pid] = l - min
	}
}

// bandOrder groups linked persons by level, preserving input order
// within each band, and returns them band by band from most senior.
func bandOrder(linked []family.Person, levels map[int]int) [][]family.Person {
	max := 0
	for _, l := range levels {
		if l > max {
			max = l
		}
	}
	bands := make([][]family.Person, max+1)
	for _, p := range linked {
		l := levels[p.PID]
		bands[l] = append(bands[l], p)
	}
	return bands
}

// assignBuckets maps level bands onto the grandparent/parent/child/
// grandchild buckets. The mapping is anchored on the senior side since
// roots are seniors: two bands are parents+children, three bands add
// grandparents, four or more fill all buckets with any deeper levels
// folded into grandchildren.
func assignBuckets(result *Classification, bands [][]family.Person, levels map[int]int) {
	occupied := make([]int, 0, len(bands))
	for i, band := range bands {
		if len(band) > 0 {
			occupied = append(occupied, i)
		}
	}

	// Re-number to contiguous levels starting at 0.
	contiguous := make(map[int]int, len(occupied))
	for rank, lvl := range occupied {
		contiguous[lvl] = rank
	}
	for pid := range levels {
		levels[pid] = contiguous[levels[pid]]
	}

	n := len(occupied)
	bucketFor := func(rank int) Bucket {
		switch {
		case n <= 2:
			if rank == 0 && n == 2 {
				return BucketParent
			}
			if n == 1 {
				return BucketParent
			}
			return BucketChild
		case n == 3:
			return [...]Bucket{BucketGrandparent, BucketParent, BucketChild}[rank]
		default:
			if rank >= 3 {
				return BucketGrandchild
			}
			return [...]Bucket{BucketGrandparent, BucketParent, BucketChild}[rank]
		}
	}

	for rank, lvl := range occupied {
		band := bands[lvl]
		switch bucketFor(rank) {
		case BucketGrandparent:
			result.Grandparents = append(result.Grandparents, band...)
		case BucketParent:
			result.Parents = append(result.Parents, band...)
		case BucketChild:
			result.Children = append(result.Children, band...)
		case BucketGrandchild:
			result.Grandchildren = append(result.Grandchildren, band...)
		}
	}
	for pid, lvl := range levels {
		result.Levels[pid] = lvl
	}
}

// mergeIsolated classifies edge-less persons by age and folds them
// into the parent and child bands of the existing result.
func mergeIsolated(result *Classification, isolated []family.Person) {
	sub := ClassifyByAge(isolated)

	parentLevel := 0
	if len(result.Grandparents) > 0 {
		parentLevel = 1
	}
	childLevel := parentLevel + 1

	result.Parents = append(result.Parents, sub.Parents...)
	for _, p := range sub.Parents {
		result.Levels[p.PID] = parentLevel
	}
	result.Children = append(result.Children, sub.Children...)
	for _, p := range sub.Children {
		result.Levels[p.PID] = childLevel
	}
}
