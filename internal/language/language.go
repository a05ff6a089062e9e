// Package language provides the language table used for subtitle tagging:
// canonical names, ISO 639 code variants, and the weighted edit distance
// used as a fuzzy fallback when no code matches exactly.
package language

// DefaultCode is the sentinel short code for English subtitle tracks.
const DefaultCode = "default"

// English is the fallback language for subtitles with no detectable language.
const English = "english"

// Language pairs a canonical lowercase name with its ordered code variants.
type Language struct {
	Name  string
	Codes []string
}

var byCode map[string]string

func init() {
	byCode = make(map[string]string, len(Table)*4)
	for _, l := range Table {
		for _, c := range l.Codes {
			if _, ok := byCode[c]; !ok {
				byCode[c] = l.Name
			}
		}
	}
}

// FromCode returns the canonical name registered for an exact code variant.
func FromCode(code string) (string, bool) {
	name, ok := byCode[code]
	return name, ok
}

// ShortCode returns the filename tag for a canonical name: the language's
// short code, with English mapped to the "default" sentinel. Unknown names
// fall back to the English default.
func ShortCode(name string) string {
	for _, l := range Table {
		if l.Name == name {
			if l.Codes[0] == "en" {
				return DefaultCode
			}
			return l.Codes[0]
		}
	}
	return DefaultCode
}

// Names returns the canonical names in table order.
func Names() []string {
	names := make([]string, len(Table))
	for i, l := range Table {
		names[i] = l.Name
	}
	return names
}
