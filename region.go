package spritefont

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// CharacterRegion is an inclusive range of character codes.
type CharacterRegion struct {
	Start rune
	End   rune
}

// DefaultRegion covers the printable ASCII characters. It is used when no region is provided.
var DefaultRegion = CharacterRegion{Start: ' ', End: '~'}

// Characters returns the characters of the region in ascending order.
// A region with End lower than Start is empty.
func (r CharacterRegion) Characters() []rune {
	if r.End < r.Start {
		return nil
	}
	chars := make([]rune, 0, r.End-r.Start+1)
	for c := r.Start; c <= r.End; c++ {
		chars = append(chars, c)
	}
	return chars
}

// String formats the region the same way ParseRegions accepts it.
func (r CharacterRegion) String() string {
	if r.Start == r.End {
		return formatRune(r.Start)
	}
	return formatRune(r.Start) + "-" + formatRune(r.End)
}

// Flatten concatenates the characters of all regions, keeping only the first
// occurrence of every character. With no regions it returns DefaultRegion's characters.
func Flatten(regions []CharacterRegion) []rune {
	if len(regions) == 0 {
		return DefaultRegion.Characters()
	}

	seen := make(map[rune]struct{})
	chars := make([]rune, 0)
	for _, r := range regions {
		for _, c := range r.Characters() {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			chars = append(chars, c)
		}
	}
	return chars
}

// ParseRegions parses a comma separated list of characters or character ranges.
// Every bound can be a literal character ("A"), a hexadecimal code ("0x41")
// or a decimal code with at least two digits ("65"). Ranges are written as "A-Z".
func ParseRegions(s string) ([]CharacterRegion, error) {
	var regions []CharacterRegion

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, errors.Errorf("empty character region in %q", s)
		}

		// The first rune may itself be a dash, so look for the separator after it.
		_, size := utf8.DecodeRuneInString(item)
		start, end := item, item
		if i := strings.Index(item[size:], "-"); i >= 0 {
			start, end = item[:size+i], item[size+i+1:]
		}

		from, err := parseRune(start)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid character region %q", item)
		}
		to, err := parseRune(end)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid character region %q", item)
		}
		if to < from {
			return nil, errors.Errorf("invalid character region %q: end precedes start", item)
		}
		regions = append(regions, CharacterRegion{Start: from, End: to})
	}
	return regions, nil
}

// parseRune converts a single region bound to a character code.
func parseRune(tok string) (rune, error) {
	if tok == "" {
		return 0, errors.New("missing character")
	}
	if utf8.RuneCountInString(tok) == 1 {
		r, _ := utf8.DecodeRuneInString(tok)
		if r == utf8.RuneError {
			return 0, errors.New("invalid utf-8 character")
		}
		return r, nil
	}

	var (
		n   uint64
		err error
	)
	if strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X") {
		n, err = strconv.ParseUint(tok[2:], 16, 32)
	} else {
		n, err = strconv.ParseUint(tok, 10, 32)
	}
	if err != nil {
		return 0, errors.Errorf("%q is not a character code", tok)
	}
	if !utf8.ValidRune(rune(n)) {
		return 0, errors.Errorf("%q is not a valid unicode code point", tok)
	}
	return rune(n), nil
}

func formatRune(r rune) string {
	if r > ' ' && r <= '~' && r != '-' && r != ',' {
		return string(r)
	}
	return "0x" + strconv.FormatInt(int64(r), 16)
}
