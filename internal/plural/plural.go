// Package plural provides CLDR plural category selection for a locale tag and numeric operands.
// Category names: "zero", "one", "two", "few", "many", "other".
package plural

// Category is a CLDR plural category.
type Category string

const (
	Zero  Category = "zero"
	One   Category = "one"
	Two   Category = "two"
	Few   Category = "few"
	Many  Category = "many"
	Other Category = "other"
)

// Categories lists every category in CLDR order.
var Categories = []Category{Zero, One, Two, Few, Many, Other}

// Valid reports whether c is one of the six CLDR categories.
func (c Category) Valid() bool {
	switch c {
	case Zero, One, Two, Few, Many, Other:
		return true
	}
	return false
}

// Rule maps operands to a category. Rules are pure and always return a valid category.
type Rule func(o Operands) Category

// RuleFor returns the rule registered for tag, trying the exact tag, then language-REGION,
// then the bare language. ok is false when no rule matches or the tag is malformed.
func RuleFor(tag string) (Rule, bool) {
	if tag == "" {
		return nil, false
	}
	if rule, found := rules[tag]; found {
		return rule, true
	}
	parsed, ok := ParseTag(tag)
	if !ok {
		return nil, false
	}
	if parsed.Region != "" {
		if rule, found := rules[parsed.Language+"-"+parsed.Region]; found {
			return rule, true
		}
	}
	rule, found := rules[parsed.Language]
	return rule, found
}

// CategoryFor returns the plural category of o for the locale tag.
// Unknown, malformed or empty tags yield Other.
func CategoryFor(tag string, o Operands) Category {
	rule, ok := RuleFor(tag)
	if !ok {
		return Other
	}
	return rule(o)
}

// Form returns the category of n for tag, with operands computed at the default precision.
func Form(tag string, n float64) Category {
	return CategoryFor(tag, NewOperands(n, 0))
}
