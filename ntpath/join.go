package ntpath

import "strings"

func join(base string, parts []string) string {
	resultDrive, resultPath := splitDrive(base)
	for _, part := range parts {
		partDrive, partPath := splitDrive(part)

		if partPath != "" && isSep(partPath[0]) {
			if partDrive != "" || resultDrive == "" {
				resultDrive = partDrive
			}
			resultPath = partPath
			continue
		}

		if partDrive != "" && partDrive != resultDrive {
			if !equalFold(partDrive, resultDrive) {
				resultDrive, resultPath = partDrive, partPath
				continue
			}
			resultDrive = partDrive
		}

		if resultPath != "" && !isSep(resultPath[len(resultPath)-1]) {
			resultPath += string(Sep)
		}
		resultPath += partPath
	}

	if resultPath != "" && !isSep(resultPath[0]) && isUNCDrive(resultDrive) {
		return resultDrive + string(Sep) + resultPath
	}
	return resultDrive + resultPath
}

func normPath(p string) string {
	if prefixLen(p) > 0 {
		return p
	}
	p = strings.ReplaceAll(p, string(AltSep), string(Sep))
	prefix, rest := splitDrive(p)
	if strings.HasPrefix(rest, string(Sep)) {
		prefix += string(Sep)
		rest = strings.TrimLeft(rest, string(Sep))
	}

	var comps []string
	for _, c := range strings.Split(rest, string(Sep)) {
		switch c {
		case "", curdir:
		case pardir:
			switch {
			case len(comps) > 0 && comps[len(comps)-1] != pardir:
				comps = comps[:len(comps)-1]
			case len(comps) == 0 && strings.HasSuffix(prefix, string(Sep)):
			default:
				comps = append(comps, c)
			}
		default:
			comps = append(comps, c)
		}
	}

	if prefix == "" && len(comps) == 0 {
		return curdir
	}
	return prefix + strings.Join(comps, string(Sep))
}

// Join concatenates base and parts. A part carrying a root restarts the path
// below the current drive, a part on a different drive restarts it entirely.
// A separator is added between parts that do not already end in one, so an
// empty last part leaves a trailing separator.
func Join[P Path](base P, parts ...P) P {
	s := make([]string, len(parts))
	for i, part := range parts {
		s[i] = string(part)
	}
	return P(join(string(base), s))
}

// NormPath collapses redundant separators and `.` components, resolves `..`
// lexically and turns forward slashes into backslashes. Paths starting with
// a verbatim or device prefix are returned unchanged; an empty path becomes
// `.`.
func NormPath[P Path](p P) P {
	return P(normPath(string(p)))
}
