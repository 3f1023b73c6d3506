package valueobject

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// BloodGroup is a value object representing an ABO/Rh blood group.
// It is immutable and restricted to the eight clinically valid values.
// Compatibility is exact equality: cross-group substitution rules
// (e.g. O- as universal donor) are intentionally not modeled.
type BloodGroup struct {
	value string
}

// The eight valid blood groups
var (
	BloodGroupAPositive  = BloodGroup{"A+"}
	BloodGroupANegative  = BloodGroup{"A-"}
	BloodGroupBPositive  = BloodGroup{"B+"}
	BloodGroupBNegative  = BloodGroup{"B-"}
	BloodGroupOPositive  = BloodGroup{"O+"}
	BloodGroupONegative  = BloodGroup{"O-"}
	BloodGroupABPositive = BloodGroup{"AB+"}
	BloodGroupABNegative = BloodGroup{"AB-"}
)

var validBloodGroups = map[string]BloodGroup{
	"A+":  BloodGroupAPositive,
	"A-":  BloodGroupANegative,
	"B+":  BloodGroupBPositive,
	"B-":  BloodGroupBNegative,
	"O+":  BloodGroupOPositive,
	"O-":  BloodGroupONegative,
	"AB+": BloodGroupABPositive,
	"AB-": BloodGroupABNegative,
}

// ParseBloodGroup parses a string into a BloodGroup.
// The ABO part is case-insensitive; the Rh sign is required.
func ParseBloodGroup(s string) (BloodGroup, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	bg, ok := validBloodGroups[normalized]
	if !ok {
		return BloodGroup{}, fmt.Errorf("invalid blood group: %q", s)
	}
	return bg, nil
}

// MustParseBloodGroup parses a blood group and panics on error.
// Use only when you're certain the input is valid.
func MustParseBloodGroup(s string) BloodGroup {
	bg, err := ParseBloodGroup(s)
	if err != nil {
		panic(err)
	}
	return bg
}

// AllBloodGroups returns the eight valid blood groups in a stable order.
func AllBloodGroups() []BloodGroup {
	return []BloodGroup{
		BloodGroupAPositive, BloodGroupANegative,
		BloodGroupBPositive, BloodGroupBNegative,
		BloodGroupOPositive, BloodGroupONegative,
		BloodGroupABPositive, BloodGroupABNegative,
	}
}

// String returns the canonical representation (e.g. "AB-").
func (b BloodGroup) String() string {
	return b.value
}

// IsValid returns true if this is one of the eight valid blood groups.
func (b BloodGroup) IsValid() bool {
	_, ok := validBloodGroups[b.value]
	return ok
}

// IsZero returns true if this is a zero-value BloodGroup.
func (b BloodGroup) IsZero() bool {
	return b.value == ""
}

// Equals returns true if both blood groups are the same value.
func (b BloodGroup) Equals(other BloodGroup) bool {
	return b.value == other.value
}

// MarshalJSON implements json.Marshaler.
func (b BloodGroup) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BloodGroup) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseBloodGroup(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Value implements driver.Valuer for database storage.
func (b BloodGroup) Value() (driver.Value, error) {
	return b.value, nil
}

// Scan implements sql.Scanner for database retrieval.
func (b *BloodGroup) Scan(value any) error {
	if value == nil {
		b.value = ""
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	default:
		return fmt.Errorf("cannot scan %T into BloodGroup", value)
	}

	parsed, err := ParseBloodGroup(strVal)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
