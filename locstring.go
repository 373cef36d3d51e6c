package gff

// NoTlkRef marks a CExoLocString that carries no talk-table reference.
const NoTlkRef uint32 = 0xFFFFFFFF

// LocEntry is one localized substring of a CExoLocString, keyed by the
// (language, gender) pair it was written for.
type LocEntry struct {
	Lang   Language
	Gender Gender
	Text   string
}

// LocString is the value of a CExoLocString field: an optional
// talk-table reference plus zero or more localized substrings.
//
// Entries preserve the order they were added in. The wire format does
// not require any particular substring order, but a deterministic one
// makes Pack's output reproducible across runs, so LocString keeps it.
type LocString struct {
	TlkRef  uint32
	Entries []LocEntry
}

// NewLocString creates an empty localization table. Use NoTlkRef for
// tlkRef if the string has no talk-table entry.
func NewLocString(tlkRef uint32) LocString {
	return LocString{TlkRef: tlkRef}
}

// With returns a copy of l with the substring for (lang, gender) set
// to text, added at the end of Entries if not already present, or
// replaced in place if it is.
func (l LocString) With(lang Language, gender Gender, text string) LocString {
	out := append([]LocEntry(nil), l.Entries...)
	for i, e := range out {
		if e.Lang == lang && e.Gender == gender {
			out[i].Text = text
			l.Entries = out
			return l
		}
	}

	l.Entries = append(out, LocEntry{Lang: lang, Gender: gender, Text: text})

	return l
}

// Get returns the substring for (lang, gender), if present.
func (l LocString) Get(lang Language, gender Gender) (string, bool) {
	for _, e := range l.Entries {
		if e.Lang == lang && e.Gender == gender {
			return e.Text, true
		}
	}

	return "", false
}

// equalLocString reports whether two localization tables carry the
// same talk-table reference and the same set of substrings,
// irrespective of Entries order.
func equalLocString(a, b LocString) bool {
	if a.TlkRef != b.TlkRef || len(a.Entries) != len(b.Entries) {
		return false
	}

	seen := make(map[LocEntry]bool, len(a.Entries))
	for _, e := range a.Entries {
		seen[e] = true
	}
	for _, e := range b.Entries {
		if !seen[e] {
			return false
		}
	}

	return true
}
