package bib

import "testing"

func TestFieldContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"braced value", "{Nature}, year = 2019", "{Nature}"},
		{"nested braces", "{Complex {N}etworks}, pages = {1}", "{Complex {N}etworks}"},
		{"deeply nested", "{A {B {C} D} E}", "{A {B {C} D} E}"},
		{"double quoted", `"hello there", x = 1`, `"hello there"`},
		{"single quoted", "'abc', y", "'abc'"},
		{"leading whitespace", "  {x}", "{x}"},
		{"escaped brace inside", `{a \{b\} c}`, `{a \{b\} c}`},
		{"escaped quote inside", `"say \" it"`, `"say \" it"`},
		{"escaped opener ignored", `\{not it {real}`, "{real}"},
		{"no delimiter", "1984,", "1984,"},
		{"unterminated brace", "{abc", "{abc"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldContent(tt.input); got != tt.want {
				t.Errorf("fieldContent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFieldValue(t *testing.T) {
	raw := "@article{k,\n  Author = {Smith, J.},\n  doi={10.1/x}\n}"

	rest, ok := fieldValue(raw, authorFieldRe)
	if !ok {
		t.Fatal("fieldValue() did not find the author field")
	}
	if got := fieldContent(rest); got != "{Smith, J.}" {
		t.Errorf("author value = %q, want {Smith, J.}", got)
	}

	if _, ok := fieldValue(raw, fieldAssignRe("journal")); ok {
		t.Error("fieldValue() found a journal field that is not there")
	}
}

func TestFieldValue_WholeWord(t *testing.T) {
	// "coauthor" must not match an "author" lookup.
	raw := "@misc{k, coauthor = {X}}"
	if _, ok := fieldValue(raw, authorFieldRe); ok {
		t.Error("fieldValue() matched author inside coauthor")
	}
}
