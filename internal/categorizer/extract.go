package categorizer

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-faster/jx"
)

// firstObject returns the first balanced JSON object in s that decodes.
// Models wrap their answer in prose or markdown fences often enough that
// the reply cannot be decoded as is, and the prose may hold braces too.
func firstObject(s string) (string, bool) {
	for start := strings.IndexByte(s, '{'); start >= 0; {
		if end, ok := objectEnd(s, start); ok {
			if _, err := decodeFields(s[start:end]); err == nil {
				return s[start:end], true
			}
		}

		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	return "", false
}

// objectEnd returns the index after the brace closing the one at start.
func objectEnd(s string, start int) (int, bool) {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}

			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}

	return 0, false
}

// fields is a flat view of the scalar members of a JSON object. Keys are
// lower-cased with dashes folded to underscores.
type fields map[string]string

func normalizeField(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))

	return strings.ReplaceAll(key, "-", "_")
}

// decodeFields reads the top level scalar members of obj with jx. Nested
// values are skipped.
func decodeFields(obj string) (fields, error) {
	out := fields{}
	d := jx.DecodeStr(obj)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		k := normalizeField(string(key))
		switch d.Next() {
		case jx.String:
			v, err := d.Str()
			if err != nil {
				return err
			}
			out[k] = v
		case jx.Number:
			v, err := d.Num()
			if err != nil {
				return err
			}
			out[k] = v.String()
		case jx.Bool:
			v, err := d.Bool()
			if err != nil {
				return err
			}
			out[k] = strconv.FormatBool(v)
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// first returns the first non-empty value among keys.
func (f fields) first(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(f[k]); v != "" {
			return v
		}
	}

	return ""
}

func (f fields) bool(keys ...string) (bool, bool) {
	v := strings.ToLower(f.first(keys...))
	switch v {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	default:
		return false, false
	}
}

func (f fields) int(keys ...string) int {
	v := f.first(keys...)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return int(n)
	}

	return 0
}

func (f fields) float(keys ...string) float64 {
	v := f.first(keys...)
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	return n
}
