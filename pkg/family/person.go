package family

import "fmt"

// Gender is the recorded gender of a directory entry.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

// String returns the single-letter form used on the wire ("M", "F", "").
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	default:
		return ""
	}
}

// ParseGender converts a wire value to a Gender.
// Unrecognized values map to GenderUnknown rather than erroring.
func ParseGender(s string) Gender {
	switch s {
	case "M", "m", "male", "Male":
		return GenderMale
	case "F", "f", "female", "Female":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// MarshalJSON encodes the gender as its wire string.
func (g Gender) MarshalJSON() ([]byte, error) {
	return []byte(`"` + g.String() + `"`), nil
}

// UnmarshalJSON decodes a wire string into a Gender.
func (g *Gender) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*g = ParseGender(s)
	return nil
}

// Person is one directory entry considered for family placement.
// PID must be unique within the input set of a single computation.
// Age and Gender are optional; a nil Age excludes the person from
// age-gap arithmetic.
type Person struct {
	PID    int    `json:"pid" validate:"required,min=1"`
	Name   string `json:"name" validate:"required,max=200"`
	Age    *int   `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
	Gender Gender `json:"gender,omitempty"`
}

// HasAge reports whether the person carries usable age data.
func (p Person) HasAge() bool {
	return p.Age != nil
}

// AgeYears returns the age in years, or -1 when no age is recorded.
func (p Person) AgeYears() int {
	if p.Age == nil {
		return -1
	}
	return *p.Age
}

func (p Person) String() string {
	if p.Age != nil {
		return fmt.Sprintf("Person(%d %q age=%d)", p.PID, p.Name, *p.Age)
	}
	return fmt.Sprintf("Person(%d %q age=?)", p.PID, p.Name)
}

// AgeOf is a convenience constructor for optional ages.
func AgeOf(years int) *int {
	return &years
}
