// Package pagination implements the opaque offset cursors used by list endpoints.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is used when a request does not specify a page size.
	DefaultLimit = 20
	// MaxLimit caps the page size a client can ask for.
	MaxLimit = 100

	cursorPrefix = "o:"
)

// Page is a decoded cursor plus the requested page size.
type Page struct {
	Offset uint
	Limit  uint
}

// Encode returns the opaque cursor pointing at offset.
func Encode(offset uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.FormatUint(uint64(offset), 10)))
}

// Decode parses a cursor produced by Encode. The empty cursor is offset zero.
func Decode(cursor string) (uint, error) {
	if cursor == "" {
		return 0, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("could not decode cursor: %w", err)
	}
	s, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return 0, fmt.Errorf("unknown cursor format")
	}
	offset, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("could not parse cursor offset: %w", err)
	}

	return uint(offset), nil
}

// New builds a Page from a raw cursor and limit, clamping the limit into
// [1, MaxLimit] and substituting DefaultLimit for zero.
func New(cursor string, limit int) (Page, error) {
	offset, err := Decode(cursor)
	if err != nil {
		return Page{}, err
	}

	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return Page{Offset: offset, Limit: uint(limit)}, nil //nolint: gosec
}

// Next returns the cursor of the page after p, or "" when fetched holds
// fewer rows than the page size. Callers fetch Limit+1 rows to detect more.
func (p Page) Next(fetched int) string {
	if fetched <= int(p.Limit) { //nolint: gosec
		return ""
	}

	return Encode(p.Offset + p.Limit)
}

// Trim cuts the look-ahead row off a result slice.
func Trim[T any](p Page, rows []T) []T {
	if len(rows) > int(p.Limit) { //nolint: gosec
		return rows[:p.Limit]
	}

	return rows
}
