package ntpath

import (
	"os"
	"strings"
)

// LookupEnv retrieves an environment variable. os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

func (l LookupEnv) orDefault() LookupEnv {
	if l == nil {
		return os.LookupEnv
	}
	return l
}

func isVarChar(c byte) bool {
	return isASCIILetter(c) || '0' <= c && c <= '9' || c == '_' || c == '-'
}

func expandVars(lookup LookupEnv, path string) string {
	if !strings.ContainsAny(path, "$%") {
		return path
	}

	var res strings.Builder
	for index := 0; index < len(path); index++ {
		c := path[index]
		switch {
		case c == '\'':
			path = path[index+1:]
			if j := strings.IndexByte(path, '\''); j >= 0 {
				res.WriteByte(c)
				res.WriteString(path[:j+1])
				index = j
			} else {
				res.WriteByte(c)
				res.WriteString(path)
				index = len(path) - 1
			}

		case c == '%' && index+1 < len(path) && path[index+1] == '%':
			res.WriteByte(c)
			index++

		case c == '%':
			path = path[index+1:]
			j := strings.IndexByte(path, '%')
			if j < 0 {
				res.WriteByte(c)
				res.WriteString(path)
				index = len(path) - 1
				continue
			}
			name := path[:j]
			if value, ok := lookup(name); ok {
				res.WriteString(value)
			} else {
				res.WriteString("%" + name + "%")
			}
			index = j

		case c == '$' && index+1 < len(path) && path[index+1] == '$':
			res.WriteByte(c)
			index++

		case c == '$' && index+1 < len(path) && path[index+1] == '{':
			path = path[index+2:]
			j := strings.IndexByte(path, '}')
			if j < 0 {
				res.WriteString("${")
				res.WriteString(path)
				index = len(path) - 1
				continue
			}
			name := path[:j]
			if value, ok := lookup(name); ok {
				res.WriteString(value)
			} else {
				res.WriteString("${" + name + "}")
			}
			index = j

		case c == '$':
			start := index + 1
			end := start
			for end < len(path) && isVarChar(path[end]) {
				end++
			}
			name := path[start:end]
			if value, ok := lookup(name); ok {
				res.WriteString(value)
			} else {
				res.WriteString("$" + name)
			}
			index = end - 1

		default:
			res.WriteByte(c)
		}
	}
	return res.String()
}

func expandUser(lookup LookupEnv, path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	i := 1
	for i < len(path) && !isSep(path[i]) {
		i++
	}

	home, ok := lookup("USERPROFILE")
	if !ok {
		homePath, ok := lookup("HOMEPATH")
		if !ok {
			return path
		}
		drive, _ := lookup("HOMEDRIVE")
		home = join(drive, []string{homePath})
	}

	if i != 1 {
		home = join(home[:dirnameLen(home)], []string{path[1:i]})
	}
	return home + path[i:]
}

// ExpandVars substitutes `$name`, `${name}` and `%name%` with values from
// lookup. `$$` and `%%` produce a single character, text between single
// quotes is copied untouched and unknown variables are left as they are.
// A nil lookup reads the process environment.
func ExpandVars[P Path](lookup LookupEnv, p P) P {
	s := string(p)
	expanded := expandVars(lookup.orDefault(), s)
	if expanded == s {
		return p
	}
	return P(expanded)
}

// ExpandUser replaces a leading `~` or `~user` with a home directory taken
// from USERPROFILE, or HOMEDRIVE and HOMEPATH. p is returned unchanged when
// none of them is set. A nil lookup reads the process environment.
func ExpandUser[P Path](lookup LookupEnv, p P) P {
	s := string(p)
	expanded := expandUser(lookup.orDefault(), s)
	if expanded == s {
		return p
	}
	return P(expanded)
}
