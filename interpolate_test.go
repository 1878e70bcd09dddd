package msgtree

import "testing"

func TestReplaceArgs(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		args []interface{}
		want string
	}{
		{"in order", "{} {}", []interface{}{"a", "b"}, "a b"},
		{"surplus args", "{}", []interface{}{"a", "b"}, "a"},
		{"surplus tokens", "{} {} {}", []interface{}{"a"}, "a {} {}"},
		{"escaped", `\{} {}`, []interface{}{"a"}, "{} a"},
		{"escaped without args", `\{}`, nil, "{}"},
		{"double backslash", `\\{} {}`, []interface{}{"a"}, `\{} a`},
		{"nil arg", "[{}]", []interface{}{nil}, "[]"},
		{"numbers", "{}+{}", []interface{}{1, 2.5}, "1+2.5"},
		{"no tokens", "plain", []interface{}{"a"}, "plain"},
		{"adjacent", "{}{}", []interface{}{"a", "b"}, "ab"},
		{"unicode", "héllo {} ✓", []interface{}{"wörld"}, "héllo wörld ✓"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := replaceArgs(tt.tpl, tt.args); got != tt.want {
				t.Errorf("replaceArgs(%q, %v) = %q, want %q", tt.tpl, tt.args, got, tt.want)
			}
		})
	}
}

func TestReplaceNamedArgs(t *testing.T) {
	tests := []struct {
		name  string
		tpl   string
		named map[string]interface{}
		want  string
	}{
		{"single", "Hi {name}", map[string]interface{}{"name": "Gabriel"}, "Hi Gabriel"},
		{"repeated", "{a}{a}", map[string]interface{}{"a": "x"}, "xx"},
		{"unknown kept", "{a} {b}", map[string]interface{}{"a": "x"}, "x {b}"},
		{"nil is identity", "{a}", map[string]interface{}{"a": nil}, "a"},
		{"positional untouched", "{a} {}", map[string]interface{}{"a": "x"}, "x {}"},
		{"empty map", "{a}", nil, "{a}"},
		{"special chars", "{a.b} {c-d}", map[string]interface{}{"a.b": "1", "c-d": "2"}, "1 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := replaceNamedArgs(tt.tpl, tt.named); got != tt.want {
				t.Errorf("replaceNamedArgs(%q) = %q, want %q", tt.tpl, got, tt.want)
			}
		})
	}
}

func TestLinkRegex(t *testing.T) {
	tests := []struct {
		in       string
		link     string
		modifier string
		ref      string
	}{
		{"see @:common.yes", "@:common.yes", "", "common.yes"},
		{"see @.upper:common.yes!", "@.upper:common.yes", "upper", "common.yes"},
		{"see @:(common.yes).", "@:(common.yes)", "", "(common.yes)"},
		{"see @:a_b-c|d", "@:a_b-c|d", "", "a_b-c|d"},
		{"see @.snake_case:x", "@.snake_case:x", "snake_case", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := linkRegex.FindStringSubmatch(tt.in)
			if m == nil {
				t.Fatalf("no link found in %q", tt.in)
			}
			if m[0] != tt.link || m[1] != tt.modifier || m[2] != tt.ref {
				t.Errorf("got %q, want link=%q modifier=%q ref=%q", m, tt.link, tt.modifier, tt.ref)
			}
		})
	}
	for _, in := range []string{"mail me @ home", "@:", "user@example.com"} {
		if linkRegex.MatchString(in) {
			t.Errorf("unexpected link in %q", in)
		}
	}
}
