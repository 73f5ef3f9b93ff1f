package search

import "testing"

func TestSearch_CaseSensitive(t *testing.T) {
	content := "Hello World\nhello world"

	matches, err := Search("Hello", content, Options{CaseSensitive: true})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Line != 1 {
		t.Errorf("matches[0].Line = %d, want 1", matches[0].Line)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	content := "Hello World\nhello world"

	matches, err := Search("hello", content, Options{})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("len(matches) = %d, want 2", len(matches))
	}
}

func TestSearch_WholeWord(t *testing.T) {
	matches, err := Search("hello", "hello helloworld", Options{WholeWord: true})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("len(matches) = %d, want 1", len(matches))
	}
}

func TestSearch_Positions(t *testing.T) {
	matches, err := Search("b", "a b b", Options{CaseSensitive: true})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].Column != 3 || matches[1].Column != 5 {
		t.Errorf("columns = %d, %d, want 3, 5", matches[0].Column, matches[1].Column)
	}
	if matches[0].LineText != "a b b" {
		t.Errorf("LineText = %q, want full line", matches[0].LineText)
	}
}

func TestSearch_Regex(t *testing.T) {
	matches, err := Search(`wor\w+`, "word world", Options{UseRegex: true})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("len(matches) = %d, want 2", len(matches))
	}
}

func TestSearch_LiteralQueryQuotesMetaCharacters(t *testing.T) {
	matches, err := Search("a.b", "a.b axb", Options{})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("len(matches) = %d, want 1 (dot must be literal)", len(matches))
	}
}

func TestSearch_InvalidRegex(t *testing.T) {
	if _, err := Search("(", "content", Options{UseRegex: true}); err == nil {
		t.Error("Search with invalid regex should return an error")
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	matches, err := Search("", "content", Options{})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(matches))
	}
}

func TestReplace_CaseInsensitive(t *testing.T) {
	result, err := Replace("Hello", "Hi", "Hello World\nHello Universe", Options{})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if result.ReplacedCount != 2 {
		t.Errorf("ReplacedCount = %d, want 2", result.ReplacedCount)
	}
	if result.NewContent != "Hi World\nHi Universe" {
		t.Errorf("NewContent = %q, want %q", result.NewContent, "Hi World\nHi Universe")
	}
}

func TestReplace_NoMatches(t *testing.T) {
	result, err := Replace("missing", "x", "content", Options{})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if result.ReplacedCount != 0 {
		t.Errorf("ReplacedCount = %d, want 0", result.ReplacedCount)
	}
	if result.NewContent != "content" {
		t.Errorf("NewContent = %q, want unchanged", result.NewContent)
	}
}

func TestReplace_EmptyQuery(t *testing.T) {
	result, err := Replace("", "x", "content", Options{})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if result.NewContent != "content" || result.ReplacedCount != 0 {
		t.Errorf("result = %+v, want untouched content", result)
	}
}
