package kinship

import (
	"reflect"
	"testing"

	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
)

func person(pid int, name string, age int) family.Person {
	return family.Person{PID: pid, Name: name, Age: family.AgeOf(age)}
}

func agelessPerson(pid int, name string) family.Person {
	return family.Person{PID: pid, Name: name}
}

func pids(persons []family.Person) []int {
	out := make([]int, 0, len(persons))
	for _, p := range persons {
		out = append(out, p.PID)
	}
	return out
}

func TestClassify_TwoPersonsWideGap(t *testing.T) {
	// ages 75 and 42, gap 33 >= 10: parent and child
	persons := []family.Person{
		person(1, "Hassan", 75),
		person(2, "Ahmed", 42),
	}

	c := Classify(persons, nil)

	if !reflect.DeepEqual(pids(c.Parents), []int{1}) {
		t.Errorf("Parents: expected [1], got %v", pids(c.Parents))
	}
	if !reflect.DeepEqual(pids(c.Children), []int{2}) {
		t.Errorf("Children: expected [2], got %v", pids(c.Children))
	}
	if c.Levels[1] != 0 || c.Levels[2] != 1 {
		t.Errorf("Levels: expected {1:0 2:1}, got %v", c.Levels)
	}
}

func TestClassify_CoParentSearch(t *testing.T) {
	// ages [75,74,57,42]: 74 is within 10 years of 75 but clears the
	// gap to both children, so both elders are parents
	persons := []family.Person{
		person(1, "Hassan", 75),
		person(2, "Mariyam", 74),
		person(3, "Ahmed", 57),
		person(4, "Fathimath", 42),
	}

	c := Classify(persons, nil)

	if !reflect.DeepEqual(pids(c.Parents), []int{1, 2}) {
		t.Errorf("Parents: expected [1 2], got %v", pids(c.Parents))
	}
	if !reflect.DeepEqual(pids(c.Children), []int{3, 4}) {
		t.Errorf("Children: expected [3 4], got %v", pids(c.Children))
	}
}

func TestClassify_NoValidParent(t *testing.T) {
	// ages 30 and 25, gap 5 < 10: nobody qualifies as parent
	persons := []family.Person{
		person(1, "Ali", 30),
		person(2, "Ibrahim", 25),
	}

	c := Classify(persons, nil)

	if len(c.Parents) != 0 {
		t.Errorf("Parents: expected none, got %v", pids(c.Parents))
	}
	if len(c.Children) != 2 {
		t.Errorf("Children: expected both, got %v", pids(c.Children))
	}
	for _, p := range persons {
		if c.Levels[p.PID] != 0 {
			t.Errorf("Level of %d: expected 0, got %d", p.PID, c.Levels[p.PID])
		}
	}
}

func TestClassify_UnqualifiedPeerBlocksParentAssignment(t *testing.T) {
	// 70 is a peer of 75 but only 8 years above the child, so it can
	// neither co-parent nor become a child without shrinking some
	// parent-child gap below 10 years. Nobody is a parent.
	persons := []family.Person{
		person(1, "a", 75),
		person(2, "b", 70),
		person(3, "c", 62),
	}

	c := Classify(persons, nil)

	if len(c.Parents) != 0 {
		t.Errorf("Parents: expected none, got %v", pids(c.Parents))
	}
	if !reflect.DeepEqual(pids(c.Children), []int{1, 2, 3}) {
		t.Errorf("Children: expected [1 2 3], got %v", pids(c.Children))
	}
	for _, par := range c.Parents {
		for _, ch := range c.Children {
			if par.AgeYears()-ch.AgeYears() < MinParentGap {
				t.Errorf("parent %d child %d violate the age gap", par.PID, ch.PID)
			}
		}
	}
}

func TestClassify_MultiplePeersBlockParentAssignment(t *testing.T) {
	// 74 and 73 both clear the gap to the child, but only one co-parent
	// slot exists and the leftover peer cannot be anyone's child
	persons := []family.Person{
		person(1, "a", 75),
		person(2, "b", 74),
		person(3, "c", 73),
		person(4, "d", 40),
	}

	c := Classify(persons, nil)

	if len(c.Parents) != 0 {
		t.Errorf("Parents: expected none, got %v", pids(c.Parents))
	}
	if !reflect.DeepEqual(pids(c.Children), []int{1, 2, 3, 4}) {
		t.Errorf("Children: expected [1 2 3 4], got %v", pids(c.Children))
	}
}

func TestClassify_AgelessDefaultToChildren(t *testing.T) {
	persons := []family.Person{
		person(1, "a", 70),
		agelessPerson(2, "b"),
		person(3, "c", 40),
	}

	c := Classify(persons, nil)

	if !reflect.DeepEqual(pids(c.Parents), []int{1}) {
		t.Errorf("Parents: expected [1], got %v", pids(c.Parents))
	}
	// ageless person listed after the aged children
	if !reflect.DeepEqual(pids(c.Children), []int{3, 2}) {
		t.Errorf("Children: expected [3 2], got %v", pids(c.Children))
	}
}

func TestClassify_AllAgeless(t *testing.T) {
	persons := []family.Person{
		agelessPerson(1, "a"),
		agelessPerson(2, "b"),
	}

	c := Classify(persons, nil)

	if len(c.Parents) != 0 {
		t.Errorf("Parents: expected none, got %v", pids(c.Parents))
	}
	if !reflect.DeepEqual(pids(c.Children), []int{1, 2}) {
		t.Errorf("Children: expected input order [1 2], got %v", pids(c.Children))
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	c := Classify(nil, nil)
	if c.Size() != 0 {
		t.Errorf("expected empty classification, got %d persons", c.Size())
	}
	if len(c.Levels) != 0 {
		t.Errorf("expected no levels, got %v", c.Levels)
	}
}

func TestClassify_EqualAgesKeepInputOrder(t *testing.T) {
	persons := []family.Person{
		person(5, "first", 40),
		person(3, "second", 40),
		person(9, "third", 40),
	}

	c := Classify(persons, nil)

	if !reflect.DeepEqual(pids(c.Children), []int{5, 3, 9}) {
		t.Errorf("equal ages must preserve input order, got %v", pids(c.Children))
	}
}

func TestClassify_SingleParentAgeGapInvariant(t *testing.T) {
	persons := []family.Person{
		person(1, "a", 55),
		person(2, "b", 46),
		person(3, "c", 20),
	}

	c := Classify(persons, nil)

	// 46 is only 9 years below 55: peer, and 46-20=26 clears the
	// co-parent gap
	if !reflect.DeepEqual(pids(c.Parents), []int{1, 2}) {
		t.Errorf("Parents: expected [1 2], got %v", pids(c.Parents))
	}
	for _, par := range c.Parents {
		for _, ch := range c.Children {
			if par.HasAge() && ch.HasAge() && par.AgeYears()-ch.AgeYears() < MinParentGap {
				t.Errorf("parent %d child %d violate the age gap", par.PID, ch.PID)
			}
		}
	}
}

func TestClassify_SecondPassSplitsGrandchildren(t *testing.T) {
	persons := []family.Person{
		person(1, "grand", 95),
		person(2, "parent", 70),
		person(3, "child", 40),
	}

	c := ClassifyWithOptions(persons, nil, Options{SecondPass: true})

	if !reflect.DeepEqual(pids(c.Grandparents), []int{1}) {
		t.Errorf("Grandparents: expected [1], got %v", pids(c.Grandparents))
	}
	if !reflect.DeepEqual(pids(c.Parents), []int{2}) {
		t.Errorf("Parents: expected [2], got %v", pids(c.Parents))
	}
	if !reflect.DeepEqual(pids(c.Children), []int{3}) {
		t.Errorf("Children: expected [3], got %v", pids(c.Children))
	}
	if c.Levels[1] != 0 || c.Levels[2] != 1 || c.Levels[3] != 2 {
		t.Errorf("Levels: expected 0/1/2, got %v", c.Levels)
	}
}

func TestClassify_SecondPassNoSplitWhenGapsTight(t *testing.T) {
	persons := []family.Person{
		person(1, "p", 70),
		person(2, "c1", 45),
		person(3, "c2, close in age", 41),
	}

	c := ClassifyWithOptions(persons, nil, Options{SecondPass: true})

	if len(c.Grandparents) != 0 {
		t.Errorf("expected no grandparents, got %v", pids(c.Grandparents))
	}
	if !reflect.DeepEqual(pids(c.Children), []int{2, 3}) {
		t.Errorf("Children: expected [2 3], got %v", pids(c.Children))
	}
}
