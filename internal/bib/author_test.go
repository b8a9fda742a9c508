package bib

import "testing"

const authorEntry = `@article{boers2019,
    author = {Smith, John AND Doe, Jane},
    title = {Complex {N}etworks},
    year = 2019
}`

func TestFirstAuthor(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"cut at AND", authorEntry, "Smith, John"},
		{"lowercase and", "@a{k, author = {A. One and B. Two}}", "A. One"},
		{"single author", "@a{k, author = {Lone Author}}", "Lone Author"},
		{"no author field", "@a{k, title = {X}}", ""},
		{"quoted value", `@a{k, author = "Jones, A. and Smith, B."}`, "Jones, A."},
		{"and inside a name", "@a{k, author = {Anderson, P.}}", "Anderson, P."},
		{"escaped accent stripped", `@a{k, author = {M\'uller, J.}}`, "M'uller, J."},
		{"undelimited value", "@a{k, author = Plain Name and Other}", "Plain Name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstAuthor(tt.raw); got != tt.want {
				t.Errorf("FirstAuthor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstAuthorText_KeepsEscapes(t *testing.T) {
	raw := `@a{k, author = {M\'{u}ller, J. and Someone}}`
	if got := FirstAuthorText(raw); got != `M\'uller, J.` {
		t.Errorf("FirstAuthorText() = %q, want %q", got, `M\'uller, J.`)
	}
}

func TestFirstAuthorName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"reorders Last, First", authorEntry, "John Smith", false},
		{"no comma unchanged", "@a{k, author = {John Smith and X}}", "John Smith", false},
		{"no author field", "@a{k, title = {X}}", "", false},
		{"two commas fatal", "@a{k, author = {Smith, John, Jr. and X}}", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstAuthorName(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("FirstAuthorName() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("FirstAuthorName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FirstAuthorName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips braces and quotes", `{Smith, "J." 'X'}`, "Smith, J. X"},
		{"escaped kept literally", `\{a\}`, "{a}"},
		{"backslash dropped", `\'el`, "'el"},
		{"plain text", "abc def", "abc def"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanString(tt.in); got != tt.want {
				t.Errorf("cleanString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanStringKeepEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"escape sequence intact", `\{a\}`, `\{a\}`},
		{"unescaped delimiters stripped", `{M\'{u}ller}`, `M\'uller`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanStringKeepEscapes(tt.in); got != tt.want {
				t.Errorf("cleanStringKeepEscapes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
