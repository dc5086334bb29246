package ntpath

import (
	"context"
	"fmt"
)

type encoding int

const (
	encodingUnknown encoding = iota
	encodingText
	encodingBytes
)

func (e encoding) String() string {
	switch e {
	case encodingText:
		return "string"
	case encodingBytes:
		return "[]byte"
	}
	return "unknown"
}

func (e encoding) encode(s string) any {
	if e == encodingBytes {
		return []byte(s)
	}
	return s
}

// decode converts values to strings and reports their shared encoding.
func decode(values []any) ([]string, encoding, error) {
	out := make([]string, len(values))
	enc := encodingUnknown
	for i, v := range values {
		var e encoding
		switch t := v.(type) {
		case string:
			out[i], e = t, encodingText
		case []byte:
			out[i], e = string(t), encodingBytes
		default:
			return nil, encodingUnknown, fmt.Errorf("%w: argument %d is %T", ErrUnsupportedType, i, v)
		}
		if enc != encodingUnknown && e != enc {
			return nil, encodingUnknown, fmt.Errorf("%w: argument %d is %s, previous arguments are %s", ErrMixedEncoding, i, e, enc)
		}
		enc = e
	}
	return out, enc, nil
}

// JoinAny is Join for paths whose encoding is only known at run time.
func JoinAny(base any, parts ...any) (any, error) {
	s, enc, err := decode(append([]any{base}, parts...))
	if err != nil {
		return nil, err
	}
	return enc.encode(join(s[0], s[1:])), nil
}

// RelPathAny is RelPath for paths whose encoding is only known at run time.
// A nil start means the working directory.
func RelPathAny(ctx context.Context, wd WorkingDir, path, start any) (any, error) {
	values := []any{path}
	if start != nil {
		values = append(values, start)
	}
	s, enc, err := decode(values)
	if err != nil {
		return nil, err
	}
	if len(s) == 1 {
		s = append(s, "")
	}
	rel, err := relPath(ctx, wd, s[0], s[1])
	if err != nil {
		return nil, err
	}
	return enc.encode(rel), nil
}

// CommonPathAny is CommonPath for paths whose encoding is only known at run
// time. Encoding errors are reported before any path is compared.
func CommonPathAny(paths []any) (any, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyInput
	}
	s, enc, err := decode(paths)
	if err != nil {
		return nil, err
	}
	common, err := commonPath(s)
	if err != nil {
		return nil, err
	}
	return enc.encode(common), nil
}

// CommonPrefixAny is CommonPrefix for paths whose encoding is only known at
// run time. An empty input yields an empty string.
func CommonPrefixAny(paths []any) (any, error) {
	if len(paths) == 0 {
		return "", nil
	}
	s, enc, err := decode(paths)
	if err != nil {
		return nil, err
	}
	return enc.encode(s[0][:commonPrefixLen(s)]), nil
}
