// Package codepage resolves GFF language ids to the legacy 8-bit text
// codepages NWN-family games store localized strings in.
//
// "Strings" on the wire are bytes in a language-dependent encoding, not
// UTF-8. A Codepage turns those bytes into a Go string and back; a
// Profile maps a GFF language id (or the absence of one, for
// non-localized CExoString/CResRef fields) to the Codepage that applies.
//
// Both gff.Parse and gff.Pack take a Profile (through the WithProfile
// option) rather than hard-coding one game's table, so a second
// profile (a different BioWare title with a different language set)
// can be added without touching the codec itself.
package codepage

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/youx/gff/errs"
)

// Codepage encodes and decodes byte strings in a single 8-bit or
// multi-byte legacy charset.
type Codepage interface {
	// Encode converts s to its on-wire byte representation. Runes
	// outside the codepage are replaced with the underlying charset's
	// substitute byte rather than reported as an error; callers
	// that need byte-exact round-trips must stick to in-codepage text.
	Encode(s string) ([]byte, error)
	// Decode converts on-wire bytes back to a Go string.
	Decode(b []byte) (string, error)
}

// xtextCodepage adapts a golang.org/x/text/encoding.Encoding to Codepage.
type xtextCodepage struct {
	enc *encoding.Encoder
	dec *encoding.Decoder
}

func wrap(enc encoding.Encoding) Codepage {
	return xtextCodepage{enc: encoding.ReplaceUnsupported(enc.NewEncoder()), dec: enc.NewDecoder()}
}

func (c xtextCodepage) Encode(s string) ([]byte, error) {
	return c.enc.Bytes([]byte(s))
}

func (c xtextCodepage) Decode(b []byte) (string, error) {
	out, err := c.dec.Bytes(b)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

var (
	windows1252 = wrap(charmap.Windows1252)
	windows1250 = wrap(charmap.Windows1250)
	eucKR       = wrap(korean.EUCKR)
	big5        = wrap(traditionalchinese.Big5)
	gbk         = wrap(simplifiedchinese.GBK)
	shiftJIS    = wrap(japanese.ShiftJIS)
)

// Language ids understood by the NeverwinterNights profile, per the GFF
// CExoLocString substring key (lang = key / 2).
const (
	English      = 0
	French       = 1
	German       = 2
	Italian      = 3
	Spanish      = 4
	Polish       = 5
	Korean       = 128
	ChineseTrad  = 129
	ChineseSimpl = 130
	Japanese     = 131
)

// Profile resolves a GFF language id to the Codepage that applies to it.
// A nil language (used for non-localized CExoString and CResRef fields)
// always resolves to the profile's default codepage.
type Profile struct {
	name    string
	forLang func(lang uint32) (Codepage, error)
	dflt    Codepage
}

// Name returns the profile's identifier, e.g. "NeverwinterNights".
func (p Profile) Name() string { return p.name }

// EncodingFor resolves lang to a Codepage. lang == nil is the
// non-localized case (CExoString, CResRef): it always returns the
// profile's default codepage (Windows-1252 for NeverwinterNights).
func (p Profile) EncodingFor(lang *uint32) (Codepage, error) {
	if lang == nil {
		return p.dflt, nil
	}

	return p.forLang(*lang)
}

// NeverwinterNights is the one built-in profile, covering the language
// set used by Neverwinter Nights and its expansions.
var NeverwinterNights = Profile{
	name: "NeverwinterNights",
	dflt: windows1252,
	forLang: func(lang uint32) (Codepage, error) {
		switch lang {
		case English, French, German, Italian, Spanish:
			return windows1252, nil
		case Polish:
			return windows1250, nil
		case Korean:
			return eucKR, nil
		case ChineseTrad:
			return big5, nil
		case ChineseSimpl:
			return gbk, nil
		case Japanese:
			return shiftJIS, nil
		default:
			return nil, errs.UnknownLanguage(lang)
		}
	},
}
