package msgtree

import (
	"fmt"
	"strings"
)

// Gender selects a gendered variant of a message, stored under key + "." + gender.
type Gender string

const (
	GenderNone   Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ParseGender accepts male, female, other or an empty string, case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderNone, GenderMale, GenderFemale, GenderOther:
		return g, nil
	default:
		return GenderNone, fmt.Errorf("gender must be male, female or other, got %q", s)
	}
}

// UnmarshalYAML allows gender to be given in any letter case in YAML.
func (g *Gender) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	if v == nil {
		*g = GenderNone
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("gender must be string, got %T", v)
	}
	parsed, err := ParseGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
