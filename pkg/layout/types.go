package layout

// NodeKind distinguishes visible person nodes from invisible junctions.
type NodeKind int

const (
	// KindPerson is a visible directory-entry node.
	KindPerson NodeKind = iota
	// KindJunction is an invisible union point between two partners.
	// It has zero visual footprint but valid coordinates.
	KindJunction
)

// String returns the kind name.
func (k NodeKind) String() string {
	if k == KindJunction {
		return "junction"
	}
	return "person"
}

// EdgeKind distinguishes spouse lines from parent-child connectors.
type EdgeKind int

const (
	EdgeParentChild EdgeKind = iota
	EdgeSpouse
)

// String returns the kind name.
func (k EdgeKind) String() string {
	if k == EdgeSpouse {
		return "spouse"
	}
	return "parent-child"
}

// Point is a 2D coordinate on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a positioned visual element. X and Y address the top-left
// corner; junction nodes have zero width and height and X,Y address
// the junction point itself.
type Node struct {
	ID     string   `json:"id"`
	Kind   NodeKind `json:"kind"`
	PID    int      `json:"pid,omitempty"` // zero for junctions
	Label  string   `json:"label,omitempty"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
}

// Edge is a routed connector. Points holds the full polyline including
// both endpoints; parent-child connectors are orthogonal (vertical and
// horizontal segments only), spouse lines are straight segments through
// the junction and drawn dashed.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
	Dashed bool     `json:"dashed"`
	Points []Point  `json:"points"`
}

// Result is a complete computed layout.
type Result struct {
	Nodes  []Node  `json:"nodes"`
	Edges  []Edge  `json:"edges"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Config sets the geometric constants of the layout. Zero values are
// replaced by the defaults from DefaultConfig.
type Config struct {
	NodeWidth   float64 // person node width
	NodeHeight  float64 // person node height
	SpouseGap   float64 // horizontal gap between two partners
	SiblingGap  float64 // horizontal gap between row mates
	BandGap     float64 // vertical gap between generation bands
	WrapGap     float64 // vertical gap between wrapped rows of one band
	RowCapacity int     // nodes per row before wrapping
	Margin      float64 // canvas margin, all sides
	BusOffset   float64 // distance above a row where connectors traverse
}

// DefaultConfig returns the standard chart geometry.
func DefaultConfig() Config {
	return Config{
		NodeWidth:   200,
		NodeHeight:  80,
		SpouseGap:   60,
		SiblingGap:  40,
		BandGap:     100,
		WrapGap:     50,
		RowCapacity: 5,
		Margin:      40,
		BusOffset:   30,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.NodeWidth == 0 {
		c.NodeWidth = d.NodeWidth
	}
	if c.NodeHeight == 0 {
		c.NodeHeight = d.NodeHeight
	}
	if c.SpouseGap == 0 {
		c.SpouseGap = d.SpouseGap
	}
	if c.SiblingGap == 0 {
		c.SiblingGap = d.SiblingGap
	}
	if c.BandGap == 0 {
		c.BandGap = d.BandGap
	}
	if c.WrapGap == 0 {
		c.WrapGap = d.WrapGap
	}
	if c.RowCapacity == 0 {
		c.RowCapacity = d.RowCapacity
	}
	if c.Margin == 0 {
		c.Margin = d.Margin
	}
	if c.BusOffset == 0 {
		c.BusOffset = d.BusOffset
	}
	return c
}
