package cleanup

import (
	"strings"
	"testing"
)

func TestStandardize(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		titleWords []string
		want       []string
	}{
		{
			name:  "collapses blank runs",
			lines: []string{"one", "", "", "  ", "two", ""},
			want:  []string{"one", "", "two", ""},
		},
		{
			name:       "drops running heads and page numbers",
			lines:      []string{"SOLDIERS' PAY", "The rain fell.", "  42 ", "It did not stop."},
			titleWords: []string{"soldiers", "pay"},
			want:       []string{"The rain fell.", "It did not stop."},
		},
		{
			name:       "head needs every title word",
			lines:      []string{"He was paid.", "Two soldiers left."},
			titleWords: []string{"soldiers", "pay"},
			want:       []string{"He was paid.", "Two soldiers left."},
		},
		{
			name:       "dropped lines do not split a blank run",
			lines:      []string{"end of page", "", "117", "", "start of page"},
			titleWords: nil,
			want:       []string{"end of page", "", "start of page"},
		},
		{
			name:  "numbers inside prose stay",
			lines: []string{"In 1928 it rained.", "1928"},
			want:  []string{"In 1928 it rained."},
		},
		{
			name:  "empty input",
			lines: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Standardize(tt.lines, tt.titleWords)
			if len(got) != len(tt.want) {
				t.Fatalf("Standardize() = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Standardize()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseTitleWords(t *testing.T) {
	got := ParseTitleWords("soldiers, pay  go,,down")
	want := []string{"soldiers", "pay", "go", "down"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("ParseTitleWords() = %q, want %q", got, want)
	}
}

func TestClassifierThreshold(t *testing.T) {
	c := NewClassifier("")
	tests := []struct {
		name  string
		index int
		total int
		want  float64
	}{
		{"small document", 1, 3, 0.5},
		{"first paragraph", 0, 11, 0.1},
		{"last paragraph", 10, 11, 0.1},
		{"middle paragraph", 5, 11, 0.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.threshold(tt.index, tt.total)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("threshold(%d, %d) = %f, want %f", tt.index, tt.total, got, tt.want)
			}
		})
	}
}

func TestIsBoilerplate(t *testing.T) {
	c := NewClassifier("english")
	tests := []struct {
		name      string
		paragraph string
		index     int
		total     int
		want      bool
	}{
		{"distributor header at edge", "The Project Gutenberg eBook of As I Lay Dying", 0, 10, true},
		{"narrative at edge", "Jewel and I come up from the field, following the path in single file.", 0, 10, false},
		{"short heading never judged", "Project Gutenberg", 0, 10, false},
		{"out of range index", "The Project Gutenberg eBook of As I Lay Dying", 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsBoilerplate(tt.paragraph, tt.index, tt.total); got != tt.want {
				t.Errorf("IsBoilerplate(%q) = %v, want %v", tt.paragraph, got, tt.want)
			}
		})
	}
}

func TestStripBoilerplate(t *testing.T) {
	c := NewClassifier("english")

	t.Run("gutenberg markers", func(t *testing.T) {
		text := strings.Join([]string{
			"The Project Gutenberg eBook of Light in August",
			"",
			"*** START OF THE PROJECT GUTENBERG EBOOK LIGHT IN AUGUST ***",
			"CHAPTER ONE",
			"",
			"Sitting beside the road, watching the wagon mount the hill toward her, Lena thinks.",
			"*** END OF THE PROJECT GUTENBERG EBOOK LIGHT IN AUGUST ***",
			"Updated editions will replace the previous one.",
		}, "\n")

		got := c.StripBoilerplate(text)
		want := "CHAPTER ONE\n\nSitting beside the road, watching the wagon mount the hill toward her, Lena thinks."
		if got != want {
			t.Errorf("StripBoilerplate() = %q, want %q", got, want)
		}
	})

	t.Run("edge trimming keeps headings and body", func(t *testing.T) {
		paragraphs := []string{
			"The Project Gutenberg eBook of Sanctuary by www gutenberg org",
			"CHAPTER ONE",
			"From beyond the screen of bushes which surrounded the spring, Popeye watched the man drinking.",
			"A faint path led from the road to the spring and the man had come up it.",
			"He had seen Popeye, a man of under size, his hands in his coat pockets.",
			"Across the spring Popeye appeared to contemplate him with two knobs of soft black rubber.",
			"Behind him the bird sang again, three bars in monotonous repetition, sad and meaningless.",
			"Project Gutenberg electronic works are distributed under the Project Gutenberg license at www gutenberg org",
		}
		got := Paragraphs(c.StripBoilerplate(strings.Join(paragraphs, "\n\n")))

		if len(got) != len(paragraphs)-2 {
			t.Fatalf("StripBoilerplate() kept %d paragraphs, want %d: %q", len(got), len(paragraphs)-2, got)
		}
		if got[0] != "CHAPTER ONE" {
			t.Errorf("first kept paragraph = %q, want heading", got[0])
		}
		if !strings.HasPrefix(got[len(got)-1], "Behind him the bird") {
			t.Errorf("last kept paragraph = %q", got[len(got)-1])
		}
	})

	t.Run("plain novel untouched", func(t *testing.T) {
		text := "The rain fell.\n\nIt did not stop for three days."
		if got := c.StripBoilerplate(text); got != text {
			t.Errorf("StripBoilerplate() = %q, want unchanged", got)
		}
	})
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("one\r\ntwo\r\n\r\n\n  \nthree\n\n")
	want := []string{"one\ntwo", "three"}
	if len(got) != len(want) {
		t.Fatalf("Paragraphs() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Paragraphs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
