package layout

import (
	"fmt"
	"strconv"

	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
	"github.com/dhimarketer/newDirReact-sub000/pkg/kinship"
)

// DefaultWidth is used when the caller passes a non-positive container
// width.
const DefaultWidth = 800

// Engine computes deterministic org-chart layouts for classified
// family groups. All ordering derives from the classification slices;
// no map iteration or randomness is involved, so identical input
// yields byte-identical output.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given geometry. Zero-valued
// config fields fall back to DefaultConfig.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// Compute lays out a classification with the default geometry.
func Compute(c *kinship.Classification, width float64) *Result {
	return NewEngine(DefaultConfig()).Compute(c, width)
}

// band is one generation row group during placement.
type band struct {
	role   kinship.Bucket
	people []family.Person
	couple bool // two partners placed with SpouseGap
	nodes  []Node
}

// Compute lays out the classification within the given container
// width. An empty classification yields an empty result.
func (e *Engine) Compute(c *kinship.Classification, width float64) *Result {
	result := &Result{Nodes: []Node{}, Edges: []Edge{}}
	if c == nil || c.Size() == 0 {
		return result
	}
	if width <= 0 {
		width = DefaultWidth
	}
	result.Width = width

	bands := e.collectBands(c)

	y := e.cfg.Margin
	for i := range bands {
		y = e.placeBand(&bands[i], width, y)
	}
	result.Height = y - e.cfg.BandGap + e.cfg.Margin

	for i := range bands {
		result.Nodes = append(result.Nodes, bands[i].nodes...)
	}
	for i := 0; i+1 < len(bands); i++ {
		e.connect(result, &bands[i], &bands[i+1])
	}
	// A trailing partner pair still gets its spouse line even with no
	// junior band below it.
	if last := &bands[len(bands)-1]; last.couple {
		e.connect(result, last, nil)
	}
	return result
}

// collectBands assembles the non-empty generation bands from most
// senior to most junior.
func (e *Engine) collectBands(c *kinship.Classification) []band {
	all := []band{
		{role: kinship.BucketGrandparent, people: c.Grandparents},
		{role: kinship.BucketParent, people: c.Parents},
		{role: kinship.BucketChild, people: c.Children},
		{role: kinship.BucketGrandchild, people: c.Grandchildren},
	}
	bands := make([]band, 0, len(all))
	for _, b := range all {
		if len(b.people) == 0 {
			continue
		}
		b.couple = len(b.people) == 2 &&
			(b.role == kinship.BucketParent || b.role == kinship.BucketGrandparent)
		bands = append(bands, b)
	}
	return bands
}

// placeBand positions one band's nodes starting at the given y and
// returns the y where the next band begins.
func (e *Engine) placeBand(b *band, width, y float64) float64 {
	w, h := e.cfg.NodeWidth, e.cfg.NodeHeight

	if b.couple {
		// Partners side by side, centered as a pair.
		total := 2*w + e.cfg.SpouseGap
		x0 := (width - total) / 2
		b.nodes = append(b.nodes,
			e.personNode(b.people[0], x0, y),
			e.personNode(b.people[1], x0+w+e.cfg.SpouseGap, y),
		)
		return y + h + e.cfg.BandGap
	}

	rows := 0
	for start := 0; start < len(b.people); start += e.cfg.RowCapacity {
		end := start + e.cfg.RowCapacity
		if end > len(b.people) {
			end = len(b.people)
		}
		row := b.people[start:end]
		n := float64(len(row))
		rowWidth := n*w + (n-1)*e.cfg.SiblingGap
		x0 := (width - rowWidth) / 2
		rowY := y + float64(rows)*(h+e.cfg.WrapGap)
		for i, p := range row {
			b.nodes = append(b.nodes, e.personNode(p, x0+float64(i)*(w+e.cfg.SiblingGap), rowY))
		}
		rows++
	}
	bandHeight := float64(rows)*h + float64(rows-1)*e.cfg.WrapGap
	return y + bandHeight + e.cfg.BandGap
}

func (e *Engine) personNode(p family.Person, x, y float64) Node {
	return Node{
		ID:     strconv.Itoa(p.PID),
		Kind:   KindPerson,
		PID:    p.PID,
		Label:  p.Name,
		X:      x,
		Y:      y,
		Width:  e.cfg.NodeWidth,
		Height: e.cfg.NodeHeight,
	}
}

// connect routes connectors from a senior band down to its junior
// band. A junior of nil draws only the senior band's spouse line.
//
// Attachment rules: a lone senior connects children directly from its
// bottom center; a partner pair connects them through a synthesized
// junction node at the exact midpoint of the pair's adjoining edges.
// Senior bands of three or more get no connectors, since no single
// attachment point would be unambiguous.
func (e *Engine) connect(result *Result, senior, junior *band) {
	hasJuniors := junior != nil && len(junior.nodes) > 0

	if senior.couple {
		left, right := senior.nodes[0], senior.nodes[1]
		cy := left.Y + left.Height/2

		if !hasJuniors {
			result.Edges = append(result.Edges, Edge{
				ID:     fmt.Sprintf("spouse-%s-%s", left.ID, right.ID),
				Source: left.ID,
				Target: right.ID,
				Kind:   EdgeSpouse,
				Dashed: true,
				Points: []Point{{X: left.X + left.Width, Y: cy}, {X: right.X, Y: cy}},
			})
			return
		}

		// Junction at the midpoint between the partners' adjoining
		// edges, level with the partners.
		jx := (left.X + left.Width + right.X) / 2
		j := Node{
			ID:   fmt.Sprintf("union-%s", senior.role),
			Kind: KindJunction,
			X:    jx,
			Y:    cy,
		}
		result.Nodes = append(result.Nodes, j)

		// Spouse line passes through the junction.
		result.Edges = append(result.Edges,
			Edge{
				ID:     fmt.Sprintf("spouse-%s-%s", left.ID, j.ID),
				Source: left.ID,
				Target: j.ID,
				Kind:   EdgeSpouse,
				Dashed: true,
				Points: []Point{{X: left.X + left.Width, Y: cy}, {X: jx, Y: cy}},
			},
			Edge{
				ID:     fmt.Sprintf("spouse-%s-%s", j.ID, right.ID),
				Source: j.ID,
				Target: right.ID,
				Kind:   EdgeSpouse,
				Dashed: true,
				Points: []Point{{X: jx, Y: cy}, {X: right.X, Y: cy}},
			},
		)

		for _, child := range junior.nodes {
			result.Edges = append(result.Edges, e.orthogonalEdge(j.ID, Point{X: jx, Y: cy}, child))
		}
		return
	}

	if len(senior.nodes) == 1 && hasJuniors {
		p := senior.nodes[0]
		from := Point{X: p.X + p.Width/2, Y: p.Y + p.Height}
		for _, child := range junior.nodes {
			result.Edges = append(result.Edges, e.orthogonalEdge(p.ID, from, child))
		}
	}
}

// orthogonalEdge routes a right-angle connector: vertical drop from the
// source point, horizontal traverse along a bus line above the child's
// row, then a vertical drop into the child's top center.
func (e *Engine) orthogonalEdge(sourceID string, from Point, child Node) Edge {
	busY := child.Y - e.cfg.BusOffset
	cx := child.X + child.Width/2
	return Edge{
		ID:     fmt.Sprintf("pc-%s-%s", sourceID, child.ID),
		Source: sourceID,
		Target: child.ID,
		Kind:   EdgeParentChild,
		Points: []Point{
			from,
			{X: from.X, Y: busY},
			{X: cx, Y: busY},
			{X: cx, Y: child.Y},
		},
	}
}
