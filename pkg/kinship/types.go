package kinship

import "github.com/dhimarketer/newDirReact-sub000/pkg/family"

// MinParentGap is the minimum age difference, in years, for one person
// to be considered a plausible parent of another.
const MinParentGap = 10

// Bucket names the generation a person was placed in.
type Bucket int

const (
	BucketGrandparent Bucket = iota
	BucketParent
	BucketChild
	BucketGrandchild
)

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case BucketGrandparent:
		return "grandparent"
	case BucketParent:
		return "parent"
	case BucketChild:
		return "child"
	case BucketGrandchild:
		return "grandchild"
	default:
		return "unknown"
	}
}

// Classification is the result of kinship inference. Every input person
// appears in exactly one bucket. Levels maps each PID to its generation
// level: contiguous integers with 0 at the most senior detected
// generation.
type Classification struct {
	Parents       []family.Person `json:"parents"`
	Children      []family.Person `json:"children"`
	Grandparents  []family.Person `json:"grandparents,omitempty"`
	Grandchildren []family.Person `json:"grandchildren,omitempty"`
	Levels        map[int]int     `json:"levels"`
}

// Options tunes classification behavior.
type Options struct {
	// SecondPass re-runs the age-gap rule over the child generation to
	// split out a third generation when the gaps support it.
	SecondPass bool
}

func newClassification() *Classification {
	return &Classification{
		Parents:  []family.Person{},
		Children: []family.Person{},
		Levels:   make(map[int]int),
	}
}

// Size returns the total number of classified persons.
func (c *Classification) Size() int {
	return len(c.Parents) + len(c.Children) + len(c.Grandparents) + len(c.Grandchildren)
}

// BucketOf returns the bucket holding the given PID.
func (c *Classification) BucketOf(pid int) (Bucket, bool) {
	for _, p := range c.Grandparents {
		if p.PID == pid {
			return BucketGrandparent, true
		}
	}
	for _, p := range c.Parents {
		if p.PID == pid {
			return BucketParent, true
		}
	}
	for _, p := range c.Children {
		if p.PID == pid {
			return BucketChild, true
		}
	}
	for _, p := range c.Grandchildren {
		if p.PID == pid {
			return BucketGrandchild, true
		}
	}
	return 0, false
}
