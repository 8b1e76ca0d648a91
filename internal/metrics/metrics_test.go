package metrics

import (
	"errors"
	"math"
	"testing"
)

func TestCounts(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []string
		wantWords  int
		wantUnique int
	}{
		{"empty", []string{}, 0, 0},
		{"single", []string{"cat"}, 1, 1},
		{"repeats", []string{"cat", "cat", "dog", "cat"}, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.tokens); got != tt.wantWords {
				t.Errorf("WordCount() = %d, want %d", got, tt.wantWords)
			}
			if got := UniqueWords(tt.tokens); got != tt.wantUnique {
				t.Errorf("UniqueWords() = %d, want %d", got, tt.wantUnique)
			}
		})
	}
}

func TestRatioMetrics(t *testing.T) {
	tests := []struct {
		name          string
		tokens        []string
		sentences     []string
		wantDiversity float64
		wantWordLen   float64
		wantSentLen   float64
		wantErr       bool
	}{
		{
			name:          "simple text",
			tokens:        []string{"the", "cat", "saw", "the", "dog"},
			sentences:     []string{"The cat saw the dog."},
			wantDiversity: 4.0 / 5.0,
			wantWordLen:   3.0,
			wantSentLen:   5.0,
		},
		{
			name:          "two sentences",
			tokens:        []string{"go", "home", "now", "please"},
			sentences:     []string{"Go home.", "Now, please."},
			wantDiversity: 1.0,
			wantWordLen:   15.0 / 4.0,
			wantSentLen:   2.0,
		},
		{
			name:    "empty document",
			tokens:  []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diversity, err := LexicalDiversity(tt.tokens)
			if tt.wantErr {
				if !errors.Is(err, ErrDivisionUndefined) {
					t.Errorf("LexicalDiversity() error = %v, want ErrDivisionUndefined", err)
				}
				if _, err := AverageWordLength(tt.tokens); !errors.Is(err, ErrDivisionUndefined) {
					t.Errorf("AverageWordLength() error = %v, want ErrDivisionUndefined", err)
				}
				if _, err := AverageSentenceLength(tt.tokens, tt.sentences); !errors.Is(err, ErrDivisionUndefined) {
					t.Errorf("AverageSentenceLength() error = %v, want ErrDivisionUndefined", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LexicalDiversity() unexpected error: %v", err)
			}
			if math.Abs(diversity-tt.wantDiversity) > 1e-9 {
				t.Errorf("LexicalDiversity() = %f, want %f", diversity, tt.wantDiversity)
			}

			wordLen, err := AverageWordLength(tt.tokens)
			if err != nil {
				t.Fatalf("AverageWordLength() unexpected error: %v", err)
			}
			if math.Abs(wordLen-tt.wantWordLen) > 1e-9 {
				t.Errorf("AverageWordLength() = %f, want %f", wordLen, tt.wantWordLen)
			}

			sentLen, err := AverageSentenceLength(tt.tokens, tt.sentences)
			if err != nil {
				t.Fatalf("AverageSentenceLength() unexpected error: %v", err)
			}
			if math.Abs(sentLen-tt.wantSentLen) > 1e-9 {
				t.Errorf("AverageSentenceLength() = %f, want %f", sentLen, tt.wantSentLen)
			}
		})
	}
}

func TestAverageWordLengthCountsRunes(t *testing.T) {
	got, err := AverageWordLength([]string{"café"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("AverageWordLength(café) = %f, want 4", got)
	}
}

func TestLongestSentenceLength(t *testing.T) {
	got, err := LongestSentenceLength([]string{"One two.", "One two three four.", "One."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("LongestSentenceLength() = %d, want 4", got)
	}

	if _, err := LongestSentenceLength(nil); !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("LongestSentenceLength(nil) error = %v, want ErrDivisionUndefined", err)
	}
}

func TestMostFrequent(t *testing.T) {
	table := NewFreqTable([]string{"b", "a", "c", "a", "b", "d", "a"})

	tests := []struct {
		name string
		n    int
		want []TermCount
	}{
		{
			name: "top one",
			n:    1,
			want: []TermCount{{"a", 3}},
		},
		{
			name: "ties keep first-seen order",
			n:    4,
			want: []TermCount{{"a", 3}, {"b", 2}, {"c", 1}, {"d", 1}},
		},
		{
			name: "n larger than table",
			n:    10,
			want: []TermCount{{"a", 3}, {"b", 2}, {"c", 1}, {"d", 1}},
		},
		{
			name: "non-positive n returns all",
			n:    0,
			want: []TermCount{{"a", 3}, {"b", 2}, {"c", 1}, {"d", 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MostFrequent(table, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("MostFrequent() length = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MostFrequent()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFreqTable(t *testing.T) {
	table := NewFreqTable([]string{"x", "y", "x"})
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if table.Count("x") != 2 || table.Count("y") != 1 || table.Count("z") != 0 {
		t.Errorf("Count() = x:%d y:%d z:%d, want 2 1 0", table.Count("x"), table.Count("y"), table.Count("z"))
	}
	terms := table.Terms()
	if len(terms) != 2 || terms[0] != "x" || terms[1] != "y" {
		t.Errorf("Terms() = %v, want [x y]", terms)
	}
}

func TestStem(t *testing.T) {
	got, err := Stem([]string{"running", "runs", "cats"}, "english")
	if err != nil {
		t.Fatalf("Stem() unexpected error: %v", err)
	}
	want := []string{"run", "run", "cat"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stem()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if UniqueWords(got) != 2 {
		t.Errorf("stemmed unique words = %d, want 2", UniqueWords(got))
	}

	if _, err := Stem([]string{"x"}, "klingon"); err == nil {
		t.Error("Stem() with unsupported language expected error, got nil")
	}
}

func TestFilterStopwords(t *testing.T) {
	got := FilterStopwords([]string{"the", "dog", "and", "her", "bone", "dont"})
	want := []string{"dog", "bone"}
	if len(got) != len(want) {
		t.Fatalf("FilterStopwords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterStopwords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	english := "It was the best of times, it was the worst of times, it was the age of wisdom, " +
		"it was the age of foolishness, it was the epoch of belief, it was the epoch of incredulity."
	lang := DetectLanguage(english)
	if lang.Code != "en" {
		t.Errorf("DetectLanguage() code = %q, want %q", lang.Code, "en")
	}
	if lang.Stemmer != "english" {
		t.Errorf("DetectLanguage() stemmer = %q, want %q", lang.Stemmer, "english")
	}

	if lang := DetectLanguage(""); lang.Stemmer != DefaultStemmerLanguage {
		t.Errorf("DetectLanguage(\"\") stemmer = %q, want default", lang.Stemmer)
	}
}
