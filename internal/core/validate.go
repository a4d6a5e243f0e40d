package core

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mprisctl/mprisctl/pkg/mpris"
)

// Validator is a predicate over one raw argument. Describe produces the
// human-readable type description for error messages; it may read session
// state and must stay usable when the track-list length is unknown.
type Validator struct {
	Check    func(s *Session, arg string) bool
	Describe func(s *Session) string
}

// Arg binds a validator to an argument position. Optional validators apply
// only when the argument was supplied.
type Arg struct {
	Validator
	Optional bool
}

// Validate checks the argument count and each positional validator. It is
// side-effect free and runs to completion before any remote call.
func Validate(d Descriptor, s *Session, args []string) error {
	if !containsInt(d.Arities, len(args)) {
		return BadInput("%s expects %s argument(s), got %d", d.Name, arityList(d.Arities), len(args))
	}
	for i, spec := range d.Args {
		if i >= len(args) {
			break
		}
		if !spec.Check(s, args[i]) {
			return BadInput("argument %d of %s must be %s", i+1, d.Name, spec.Describe(s))
		}
	}
	return nil
}

// Plain non-negative decimal: hex, signs and embedded newlines all fail.
var intRE = regexp.MustCompile(`\A[0-9]+\z`)

var schemeRE = regexp.MustCompile(`\A[A-Za-z][A-Za-z0-9+.-]*://`)

func isInt() Validator {
	return Validator{
		Check:    func(_ *Session, arg string) bool { return intRE.MatchString(arg) },
		Describe: func(*Session) string { return "an integer" },
	}
}

func isBool() Validator {
	return Validator{
		Check:    func(_ *Session, arg string) bool { return arg == "true" || arg == "false" },
		Describe: func(*Session) string { return "either 'true' or 'false'" },
	}
}

func isVolume() Validator {
	return Validator{
		Check: func(_ *Session, arg string) bool {
			if !intRE.MatchString(arg) {
				return false
			}
			n, err := strconv.Atoi(arg)
			return err == nil && n <= 100
		},
		Describe: func(*Session) string { return "an integer within [0, 100]" },
	}
}

func trackNumOK(s *Session, arg string) bool {
	if !intRE.MatchString(arg) {
		return false
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return false
	}
	if s.TrackListLen == mpris.LengthUnknown {
		return true
	}
	return n < s.TrackListLen
}

func trackNumDesc(s *Session) string {
	if s.TrackListLen == mpris.LengthUnknown {
		return "a track number (the current number of tracks is unknown)"
	}
	return fmt.Sprintf("an integer within [0, %d]", s.TrackListLen-1)
}

func isTrackNum() Validator {
	return Validator{Check: trackNumOK, Describe: trackNumDesc}
}

func isTrackNumOrStar() Validator {
	return Validator{
		Check: func(s *Session, arg string) bool {
			return arg == "*" || trackNumOK(s, arg)
		},
		Describe: func(s *Session) string { return trackNumDesc(s) + ", or '*'" },
	}
}

func isURI() Validator {
	return Validator{
		Check: func(_ *Session, arg string) bool {
			if arg == "-" || schemeRE.MatchString(arg) {
				return true
			}
			_, err := os.Stat(arg)
			return err == nil
		},
		Describe: func(*Session) string {
			return "a URI (scheme://..., an existing path, or '-' for stdin)"
		},
	}
}

func containsInt(set []int, n int) bool {
	for _, v := range set {
		if v == n {
			return true
		}
	}
	return false
}

func arityList(set []int) string {
	parts := make([]string, 0, len(set))
	for _, v := range set {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, " or ")
}
