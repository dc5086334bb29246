package ntpath

import "strings"

const (
	// Sep is the separator every rewriting operation emits.
	Sep = '\\'
	// AltSep is accepted wherever Sep is.
	AltSep = '/'

	curdir = "."
	pardir = ".."

	verbatimPrefix    = `\\?\`
	devicePrefix      = `\\.\`
	verbatimUNCPrefix = `\\?\UNC\`
)

// Path is the set of encodings accepted by every operation. Results always
// come back in the encoding of the input.
type Path interface {
	~string | ~[]byte
}

func isSep(c byte) bool {
	return c == Sep || c == AltSep
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func foldByte(c byte) byte {
	switch {
	case 'A' <= c && c <= 'Z':
		return c + ('a' - 'A')
	case c == AltSep:
		return Sep
	}
	return c
}

// fold lower-cases ASCII letters and maps AltSep to Sep. The result is only
// ever used as a comparison key.
func fold(p string) string {
	b := make([]byte, len(p))
	for i := 0; i < len(p); i++ {
		b[i] = foldByte(p[i])
	}
	return string(b)
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if foldByte(a[i]) != foldByte(b[i]) {
			return false
		}
	}
	return true
}

// driveLen returns the length of the drive at the start of p: 2 for a drive
// letter, the length of \\host\share for a UNC authority, 0 otherwise.
func driveLen(p string) int {
	if len(p) >= 2 && isSep(p[0]) && isSep(p[1]) {
		if len(p) == 2 || isSep(p[2]) {
			return 0
		}
		i := 2
		for i < len(p) && !isSep(p[i]) {
			i++
		}
		if host := p[2:i]; host == "?" || host == "." || i == len(p) {
			return 0
		}
		j := i + 1
		if j == len(p) || isSep(p[j]) {
			return 0
		}
		for j < len(p) && !isSep(p[j]) {
			j++
		}
		return j
	}
	if len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]) {
		return 2
	}
	return 0
}

func rootLen(p string) (drive, root int) {
	drive = driveLen(p)
	if drive < len(p) && isSep(p[drive]) {
		root = 1
	}
	return drive, root
}

func splitDrive(p string) (string, string) {
	n := driveLen(p)
	return p[:n], p[n:]
}

func isAbs(p string) bool {
	_, root := rootLen(p)
	return root > 0
}

func isUNCDrive(drive string) bool {
	return len(drive) > 2 && isSep(drive[0])
}

// prefixLen returns 4 when p starts with a verbatim or device prefix. Only
// backslashes are recognized, as Windows does.
func prefixLen(p string) int {
	if strings.HasPrefix(p, verbatimPrefix) || strings.HasPrefix(p, devicePrefix) {
		return len(verbatimPrefix)
	}
	return 0
}

// literalComponentEnd returns the index of the first backslash at or after i.
func literalComponentEnd(p string, i int) int {
	for i < len(p) && p[i] != Sep {
		i++
	}
	return i
}

func hasPrefixFold(p, prefix string) bool {
	return len(p) >= len(prefix) && equalFold(p[:len(prefix)], prefix)
}

// anchorLen returns the length of the part of p that can never be removed by
// walking up: drive plus root, or a special prefix plus the device, drive or
// UNC host and share that follows it.
func anchorLen(p string) int {
	if n := prefixLen(p); n > 0 {
		i := n
		if strings.HasPrefix(p, verbatimPrefix) && hasPrefixFold(p[n:], `UNC\`) {
			i = literalComponentEnd(p, n+len(`UNC\`))
			if i < len(p) {
				i = literalComponentEnd(p, i+1)
			}
		} else {
			i = literalComponentEnd(p, i)
		}
		if i < len(p) && p[i] == Sep {
			i++
		}
		return i
	}
	drive, root := rootLen(p)
	return drive + root
}

// isFullyQualified reports whether p names the same location regardless of
// the current drive and directory.
func isFullyQualified(p string) bool {
	if prefixLen(p) > 0 {
		return true
	}
	drive, root := rootLen(p)
	return root > 0 && drive > 0 || isUNCDrive(p[:drive])
}

// SplitDrive splits p into a drive (`C:` or `\\host\share`) and the rest.
// A malformed UNC authority yields an empty drive. drive+rest always equals p.
func SplitDrive[P Path](p P) (drive, rest P) {
	n := driveLen(string(p))
	return p[:n], p[n:]
}

// SplitRoot splits p into drive, the single separator following it, and the
// rest.
func SplitRoot[P Path](p P) (drive, root, rest P) {
	d, r := rootLen(string(p))
	return p[:d], p[d : d+r], p[d+r:]
}

// IsAbs reports whether p has a root. Drive-relative paths such as `C:foo`
// are not absolute.
func IsAbs[P Path](p P) bool {
	return isAbs(string(p))
}

// SplitPrefix splits off a `\\?\` or `\\.\` prefix.
func SplitPrefix[P Path](p P) (prefix, rest P) {
	n := prefixLen(string(p))
	return p[:n], p[n:]
}

// SplitAnchor splits p after its anchor, the part that `..` can never climb
// above: `C:\`, `\\host\share\`, `\\?\C:\`, `\\?\UNC\host\share\`, `\\.\NUL`.
func SplitAnchor[P Path](p P) (anchor, rest P) {
	n := anchorLen(string(p))
	return p[:n], p[n:]
}

// NormCase lower-cases ASCII letters and turns forward slashes into
// backslashes.
func NormCase[P Path](p P) P {
	return P(fold(string(p)))
}
