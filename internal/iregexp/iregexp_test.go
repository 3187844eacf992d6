package iregexp

import "testing"

func TestMatchIsWholeString(t *testing.T) {
	t.Parallel()

	re, err := Compile("[a-z]+")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if !re.MatchString("abc") {
		t.Fatalf("expected whole-string match on abc")
	}
	if re.MatchString("abc123") {
		t.Fatalf("expected no whole-string match on abc123")
	}
}

func TestSearchIsSubstring(t *testing.T) {
	t.Parallel()

	re, err := Compile("[a-z]+")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if !re.SearchString("123abc456") {
		t.Fatalf("expected substring match on 123abc456")
	}
	if re.SearchString("123456") {
		t.Fatalf("expected no substring match on 123456")
	}
}

func TestCompileRejectsLookbehind(t *testing.T) {
	t.Parallel()

	if _, err := Compile(`(?<=a)b`); err == nil {
		t.Fatalf("expected lookbehind to be rejected")
	}
}

func TestCompileRejectsInvalidSyntax(t *testing.T) {
	t.Parallel()

	if _, err := Compile(`[a-`); err == nil {
		t.Fatalf("expected unterminated class to fail to compile")
	}
}
