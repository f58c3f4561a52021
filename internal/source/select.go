package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const documentExt = ".yaml"

// Selection describes how SelectOverride resolved the candidate list.
type Selection int

const (
	// SelectionNone means no candidate exists.
	SelectionNone Selection = iota
	// SelectionSingle means exactly one candidate exists and was selected.
	SelectionSingle
	// SelectionAmbiguous means several candidates exist and none was selected.
	SelectionAmbiguous
)

func (s Selection) String() string {
	switch s {
	case SelectionNone:
		return "none"
	case SelectionSingle:
		return "single"
	case SelectionAmbiguous:
		return "ambiguous"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// Candidates lists the regular "*.yaml" files in dir, excluding the file
// whose base name equals exclude. The result is sorted.
func Candidates(dir, exclude string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	excluded := filepath.Base(exclude)
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, documentExt) || name == excluded {
			continue
		}
		if !entry.Type().IsRegular() {
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}
		out = append(out, filepath.Join(dir, name))
	}
	sort.Strings(out)
	return out, nil
}

// SelectOverride picks the override document from candidates. Only a single
// candidate is selected; zero or several candidates select nothing.
func SelectOverride(candidates []string) (string, Selection) {
	switch len(candidates) {
	case 0:
		return "", SelectionNone
	case 1:
		return candidates[0], SelectionSingle
	default:
		return "", SelectionAmbiguous
	}
}
