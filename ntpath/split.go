package ntpath

import "strings"

// splitIndex returns the index just past the last separator that follows the
// drive of p, or the drive length when there is none.
func splitIndex(p string) int {
	d := driveLen(p)
	i := len(p)
	for i > d && !isSep(p[i-1]) {
		i--
	}
	return i
}

// dirnameLen returns the length of Dirname(p), which is always a prefix of p.
func dirnameLen(p string) int {
	d := driveLen(p)
	i := splitIndex(p)
	trimmed := strings.TrimRight(p[d:i], `\/`)
	if trimmed == "" {
		return i
	}
	return d + len(trimmed)
}

func splitExtIndex(p string) int {
	sep := strings.LastIndexAny(p, `\/`)
	dot := strings.LastIndexByte(p, '.')
	if dot > sep {
		for i := sep + 1; i < dot; i++ {
			if p[i] != '.' {
				return dot
			}
		}
	}
	return len(p)
}

// Split splits p after the last separator following its drive. The head
// keeps that separator, so head+tail always equals p.
func Split[P Path](p P) (head, tail P) {
	i := splitIndex(string(p))
	return p[:i], p[i:]
}

// Basename returns the tail of Split.
func Basename[P Path](p P) P {
	return p[splitIndex(string(p)):]
}

// Dirname returns the head of Split without its trailing separators, unless
// the head consists of nothing else.
func Dirname[P Path](p P) P {
	return p[:dirnameLen(string(p))]
}

// SplitExt splits p before the last dot of its final component. Leading dots
// of the component never start an extension.
func SplitExt[P Path](p P) (root, ext P) {
	i := splitExtIndex(string(p))
	return p[:i], p[i:]
}
