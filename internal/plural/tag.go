package plural

import "regexp"

var tagRegex = regexp.MustCompile(`^([a-z]{2,3})(?:-([A-Z0-9]{2,3})(?:-([a-zA-Z]{4}))?)?$`)

// Tag is a parsed locale tag of the form language(-REGION(-Script)?)?.
type Tag struct {
	Language string
	Region   string
	Script   string
}

// ParseTag parses tag. Underscore separators, upper case languages and lone scripts
// (e.g. "sr-Latn") are rejected.
func ParseTag(tag string) (Tag, bool) {
	matches := tagRegex.FindStringSubmatch(tag)
	if matches == nil {
		return Tag{}, false
	}
	return Tag{Language: matches[1], Region: matches[2], Script: matches[3]}, true
}

func (t Tag) String() string {
	s := t.Language
	if t.Region != "" {
		s += "-" + t.Region
		if t.Script != "" {
			s += "-" + t.Script
		}
	}
	return s
}
