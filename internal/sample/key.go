package sample

import (
	"fmt"
	"strconv"
	"strings"
)

// Gender is the dataset gender code.
type Gender int

const (
	Male   Gender = 0
	Female Gender = 1
)

// Valid reports whether g is a known gender code.
func (g Gender) Valid() bool { return g == Male || g == Female }

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return "gender(" + strconv.Itoa(int(g)) + ")"
}

// Race is the dataset race code.
type Race int

const (
	White  Race = 0
	Black  Race = 1
	Asian  Race = 2
	Indian Race = 3
	Other  Race = 4
)

// Valid reports whether r is a known race code.
func (r Race) Valid() bool { return r >= White && r <= Other }

func (r Race) String() string {
	switch r {
	case White:
		return "white"
	case Black:
		return "black"
	case Asian:
		return "asian"
	case Indian:
		return "indian"
	case Other:
		return "other"
	}
	return "race(" + strconv.Itoa(int(r)) + ")"
}

// DemographicKey is the (age, gender, race) triple a sample is filed under.
type DemographicKey struct {
	Age    int
	Gender Gender
	Race   Race
}

func (k DemographicKey) String() string {
	return fmt.Sprintf("age=%d gender=%d race=%d", k.Age, k.Gender, k.Race)
}

// Prefix returns the file name prefix shared by every sample filed under k.
// The trailing separator keeps age 2 from matching age 25.
func (k DemographicKey) Prefix() string {
	return fmt.Sprintf("%d_%d_%d_", k.Age, int(k.Gender), int(k.Race))
}

// ParseID decodes the demographic key encoded at the start of a sample
// identifier, e.g. "25_0_0_20170116174525125.jpg".
func ParseID(id string) (DemographicKey, error) {
	parts := strings.SplitN(id, "_", 4)
	if len(parts) < 4 {
		return DemographicKey{}, fmt.Errorf("sample id %q: want {age}_{gender}_{race}_...", id)
	}
	age, err := strconv.Atoi(parts[0])
	if err != nil || age < 0 {
		return DemographicKey{}, fmt.Errorf("sample id %q: bad age %q", id, parts[0])
	}
	g, err := strconv.Atoi(parts[1])
	if err != nil || !Gender(g).Valid() {
		return DemographicKey{}, fmt.Errorf("sample id %q: bad gender %q", id, parts[1])
	}
	r, err := strconv.Atoi(parts[2])
	if err != nil || !Race(r).Valid() {
		return DemographicKey{}, fmt.Errorf("sample id %q: bad race %q", id, parts[2])
	}
	return DemographicKey{Age: age, Gender: Gender(g), Race: Race(r)}, nil
}
