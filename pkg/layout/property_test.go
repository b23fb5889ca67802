package layout

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
	"github.com/dhimarketer/newDirReact-sub000/pkg/kinship"
)

// genFamily produces a classified family with 1..2 parents and 0..8
// children, classified the same way the real pipeline would.
func genFamily() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(1, 2),
		gen.IntRange(0, 8),
	).Map(func(vals []any) *kinship.Classification {
		nParents, nChildren := vals[0].(int), vals[1].(int)
		persons := make([]family.Person, 0, nParents+nChildren)
		for i := 0; i < nParents; i++ {
			persons = append(persons, family.Person{PID: i + 1, Name: "p", Age: family.AgeOf(70 - i)})
		}
		for i := 0; i < nChildren; i++ {
			persons = append(persons, family.Person{PID: 100 + i, Name: "c", Age: family.AgeOf(40 - i)})
		}
		return kinship.Classify(persons, nil)
	})
}

func TestLayoutInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("re-invocation is coordinate-identical", prop.ForAll(
		func(c *kinship.Classification, width int) bool {
			first := Compute(c, float64(width))
			second := Compute(c, float64(width))
			return reflect.DeepEqual(first, second)
		},
		genFamily(),
		gen.IntRange(400, 2000),
	))

	properties.Property("junction sits at the exact adjoining-edge midpoint", prop.ForAll(
		func(c *kinship.Classification, width int) bool {
			r := Compute(c, float64(width))
			var persons []Node
			var junction *Node
			for i, n := range r.Nodes {
				if n.Kind == KindJunction {
					junction = &r.Nodes[i]
				} else {
					persons = append(persons, n)
				}
			}
			if junction == nil {
				// junction only exists with two parents and a child
				return len(c.Parents) != 2 || len(c.Children) == 0
			}
			if len(c.Parents) != 2 {
				return false
			}
			left, right := persons[0], persons[1]
			return junction.X == (left.X+left.Width+right.X)/2
		},
		genFamily(),
		gen.IntRange(400, 2000),
	))

	properties.Property("child connectors attach to the junction when two parents exist", prop.ForAll(
		func(c *kinship.Classification) bool {
			r := Compute(c, 800)
			if len(c.Parents) != 2 || len(c.Children) == 0 {
				return true
			}
			for _, e := range r.Edges {
				if e.Kind == EdgeParentChild && e.Source != "union-parent" {
					return false
				}
			}
			return true
		},
		genFamily(),
	))

	properties.Property("every classified person gets exactly one node", prop.ForAll(
		func(c *kinship.Classification) bool {
			r := Compute(c, 800)
			personNodes := 0
			for _, n := range r.Nodes {
				if n.Kind == KindPerson {
					personNodes++
				}
			}
			return personNodes == c.Size()
		},
		genFamily(),
	))

	properties.TestingRun(t)
}
