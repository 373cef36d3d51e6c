package gff

import (
	"encoding/binary"

	"github.com/youx/gff/codepage"
	"github.com/youx/gff/errs"
)

// maxLabelLen and maxResRefLen are the maximum on-wire sizes of labels
// and CResRef payloads. Labels are NUL-padded to 16 bytes; longer
// labels or CResRefs are rejected, not truncated.
const (
	maxLabelLen  = 16
	maxResRefLen = 16
)

// encodeLabel pads or rejects label for storage in the 16-byte labels
// block.
func encodeLabel(label string) ([maxLabelLen]byte, error) {
	var out [maxLabelLen]byte

	b := []byte(label)
	if len(b) > maxLabelLen {
		return out, errs.LabelTooLong(label)
	}

	copy(out[:], b)

	return out, nil
}

// decodeLabel trims the NUL padding from a raw 16-byte label record.
func decodeLabel(raw []byte) string {
	for i, c := range raw {
		if c == 0 {
			return string(raw[:i])
		}
	}

	return string(raw)
}

// encodeLocString serializes a CExoLocString's field_data payload:
// total_len, tlk_ref, str_count, followed by str_count
// (lang_gender, len, bytes) triples.
func encodeLocString(l LocString, profile codepage.Profile) ([]byte, error) {
	type encoded struct {
		key  uint32
		text []byte
	}

	entries := make([]encoded, 0, len(l.Entries))
	total := 0
	for _, e := range l.Entries {
		lang := uint32(e.Lang)
		cp, err := profile.EncodingFor(&lang)
		if err != nil {
			return nil, err
		}

		text, err := cp.Encode(e.Text)
		if err != nil {
			return nil, err
		}

		entries = append(entries, encoded{key: substringKey(e.Lang, e.Gender), text: text})
		total += 8 + len(text)
	}

	out := make([]byte, 0, 12+total)
	out = appendU32(out, uint32(8+total))
	out = appendU32(out, l.TlkRef)
	out = appendU32(out, uint32(len(entries)))
	for _, e := range entries {
		out = appendU32(out, e.key)
		out = appendU32(out, uint32(len(e.text)))
		out = append(out, e.text...)
	}

	return out, nil
}

// decodeLocString parses a CExoLocString payload starting at raw[0]
// (the total_len field).
func decodeLocString(raw []byte, profile codepage.Profile) (LocString, error) {
	if len(raw) < 12 {
		return LocString{}, errs.MalformedHeader("truncated CExoLocString header")
	}

	totalLen := binary.LittleEndian.Uint32(raw[0:4])
	tlkRef := binary.LittleEndian.Uint32(raw[4:8])
	strCount := binary.LittleEndian.Uint32(raw[8:12])

	if totalLen < 8 {
		return LocString{}, errs.StringLengthOverflow(int(totalLen), -8)
	}

	body := raw[12:]
	want := int(totalLen) - 8
	if want > len(body) {
		return LocString{}, errs.StringLengthOverflow(want, len(body))
	}
	body = body[:want]

	out := LocString{TlkRef: tlkRef}
	for i := uint32(0); i < strCount; i++ {
		if len(body) < 8 {
			return LocString{}, errs.StringLengthOverflow(8, len(body))
		}

		key := binary.LittleEndian.Uint32(body[0:4])
		strLen := binary.LittleEndian.Uint32(body[4:8])
		body = body[8:]

		if uint64(strLen) > uint64(len(body)) {
			return LocString{}, errs.StringLengthOverflow(int(strLen), len(body))
		}

		lang, gender := languageFromKey(key)
		langU32 := uint32(lang)

		cp, err := profile.EncodingFor(&langU32)
		if err != nil {
			return LocString{}, err
		}

		text, err := cp.Decode(body[:strLen])
		if err != nil {
			return LocString{}, err
		}

		out.Entries = append(out.Entries, LocEntry{Lang: lang, Gender: gender, Text: text})
		body = body[strLen:]
	}

	return out, nil
}

func appendU32(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)

	return append(b, tmp[:]...)
}
