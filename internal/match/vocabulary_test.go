package match

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewVocabulary(t *testing.T) {
	t.Parallel()

	vocab, err := NewVocabulary([]string{"  Python ", "SQL", "python", "Power   BI", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"python", "sql", "power bi"}
	if !reflect.DeepEqual(vocab.Terms(), want) {
		t.Fatalf("expected %v, got %v", want, vocab.Terms())
	}
}

func TestNewVocabularyEmpty(t *testing.T) {
	t.Parallel()

	for _, terms := range [][]string{nil, {}, {"", "  ", "\t"}} {
		_, err := NewVocabulary(terms)
		if err == nil {
			t.Fatalf("expected an error for %v", terms)
		}

		var confErr *ConfigurationError
		if !errors.As(err, &confErr) {
			t.Fatalf("expected a ConfigurationError, got %T", err)
		}
	}
}

func TestDefaultVocabulary(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	if vocab.Len() == 0 {
		t.Fatalf("default vocabulary must not be empty")
	}

	doc := Normalize("strong in machine learning and power bi")
	got := ExtractSkills(doc, vocab)
	want := []string{"machine learning", "power bi"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
