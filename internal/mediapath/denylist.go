package mediapath

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// DenyList holds terms to scrub from every path segment before extraction.
// Each term is matched whole-word and case-insensitively; terms may use
// regex syntax as long as they stay valid inside a word-boundary wrapper.
type DenyList struct {
	terms []string
	res   []*regexp.Regexp
}

// ParseDenyList builds a deny list from newline-separated terms.
// Blank lines and terms that fail to compile are skipped.
func ParseDenyList(data string) *DenyList {
	d := &DenyList{}
	for _, line := range strings.Split(data, "\n") {
		term := strings.TrimSpace(line)
		if term == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + term + `\b`)
		if err != nil {
			continue
		}
		d.terms = append(d.terms, term)
		d.res = append(d.res, re)
	}
	return d
}

// LoadDenyList reads a deny list file. A missing file yields an empty list;
// any other read error is returned.
func LoadDenyList(fs afero.Fs, path string) (*DenyList, error) {
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("stat deny list: %w", err)
	}
	if !ok {
		return &DenyList{}, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read deny list: %w", err)
	}
	return ParseDenyList(string(data)), nil
}

// Len returns the number of usable terms.
func (d *DenyList) Len() int {
	if d == nil {
		return 0
	}
	return len(d.res)
}

// Scrub erases every deny term from s.
func (d *DenyList) Scrub(s string) string {
	if d == nil {
		return s
	}
	for _, re := range d.res {
		s = re.ReplaceAllString(s, "")
	}
	return s
}

// MatchesStart reports whether s begins with a deny term. Used for the final
// path segment, where a leftover deny term must not become the display name.
func (d *DenyList) MatchesStart(s string) bool {
	if d == nil {
		return false
	}
	for _, re := range d.res {
		loc := re.FindStringIndex(s)
		if loc != nil && loc[0] == 0 {
			return true
		}
	}
	return false
}
