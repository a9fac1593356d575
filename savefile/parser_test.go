package savefile

import (
	"strings"
	"testing"
)

func TestParseMixedKeys(t *testing.T) {
	doc := `return {
  ["bracketed"] = 1,
  bare = "two",
  3, -- positional
  nested = { true, false },
}`
	root, err := NewParser([]byte(doc)).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n, ok := root.Get("bracketed").(int64); !ok || n != 1 {
		t.Errorf("bracketed = %v", root.Get("bracketed"))
	}
	if s, ok := root.Get("bare").(string); !ok || s != "two" {
		t.Errorf("bare = %v", root.Get("bare"))
	}
	if len(root.List) != 1 || root.List[0] != int64(3) {
		t.Errorf("List = %v", root.List)
	}
	nested, ok := root.Get("nested").(*Table)
	if !ok || len(nested.List) != 2 || nested.List[0] != true || nested.List[1] != false {
		t.Errorf("nested = %+v", root.Get("nested"))
	}
}

func TestParseNegativeNumbers(t *testing.T) {
	root, err := NewParser([]byte(`return { -1, -2, 255 }`)).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []int64{-1, -2, 255}
	for i, w := range want {
		if root.List[i] != w {
			t.Errorf("List[%d] = %v, want %d", i, root.List[i], w)
		}
	}
}

func TestParseStringEscapes(t *testing.T) {
	root, err := NewParser([]byte(`return { s = "a\"b\\c\nd" }`)).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s := root.Get("s"); s != "a\"b\\c\nd" {
		t.Errorf("s = %q", s)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"no return prefix", `{ 1 }`, "must start with return"},
		{"unterminated table", `return { 1, 2`, "unterminated table"},
		{"missing equals", `return { ["k"] 1 }`, "expected ="},
		{"trailing content", `return { } garbage`, "trailing content"},
		{"bad separator", `return { 1 2 }`, "expected , or }"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParser([]byte(tc.doc)).Parse()
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Error = %q, want substring %q", err, tc.want)
			}
		})
	}
}

func TestParseTrailingComma(t *testing.T) {
	if _, err := NewParser([]byte(`return { 1, 2, }`)).Parse(); err != nil {
		t.Errorf("Trailing comma rejected: %v", err)
	}
}
