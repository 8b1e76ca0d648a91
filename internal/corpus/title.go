package corpus

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultAuthor is assigned to files named without an author prefix.
const DefaultAuthor = "Faulkner"

// DimeNovelAuthor is assigned to files of the dime novel corpus.
const DimeNovelAuthor = "Dime Novel"

var (
	// datePrefix matches the "YYYY-0X_" publication prefix of corpus file names.
	datePrefix = regexp.MustCompile(`^\d{4}-\d{2}_`)
	dimePrefix = regexp.MustCompile(`^dime_[a-z]+_`)
	yearStart  = regexp.MustCompile(`^\d{4}`)
)

// titles whose punctuation cannot survive a file name
var titleOverrides = []struct {
	fragment string
	title    string
}{
	{"Soldiers_Pay", "Soldiers' Pay"},
	{"Go_Down_Moses", "Go Down, Moses"},
}

// TitleFromFilename derives an author and display title from a corpus file name.
//
//	dime_novel_042.txt                   -> Dime Novel, "#042"
//	Hemingway_1926-01_The_Sun_Also_Rises -> Hemingway, "The Sun Also Rises"
//	1929-02_The_Sound_and_the_Fury.txt   -> Faulkner, "The Sound and the Fury"
//
// Names that follow none of these patterns keep their base name with underscores
// turned into spaces and no author.
func TitleFromFilename(name string) (author, title string) {
	name = filepath.Base(name)
	if hasTextExtension(name) {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	if loc := dimePrefix.FindStringIndex(name); loc != nil {
		return DimeNovelAuthor, "#" + name[loc[1]:]
	}

	rest := name
	switch {
	case yearStart.MatchString(name):
		author = DefaultAuthor
	case datePrefix.MatchString(afterUnderscore(name)):
		i := strings.Index(name, "_")
		author, rest = name[:i], name[i+1:]
	}
	rest = datePrefix.ReplaceAllString(rest, "")

	for _, o := range titleOverrides {
		if strings.Contains(rest, o.fragment) {
			return author, o.title
		}
	}
	return author, strings.ReplaceAll(rest, "_", " ")
}

func afterUnderscore(name string) string {
	if i := strings.Index(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return ""
}
