// Package fmtstr implements {} placeholder substitution for format
// strings: positional {} placeholders filled left to right, named {name}
// placeholders filled from a map, and {{ / }} escapes for literal braces.
package fmtstr

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format substitutes args into the {} placeholders of format, left to
// right. {{ and }} produce literal braces. The argument count must equal
// the placeholder count exactly; a mismatch either way is an error.
func Format(format string, args ...any) (string, error) {
	var sb strings.Builder
	next := 0

	for i := 0; i < len(format); {
		switch {
		case strings.HasPrefix(format[i:], "{{"):
			sb.WriteByte('{')
			i += 2
		case strings.HasPrefix(format[i:], "}}"):
			sb.WriteByte('}')
			i += 2
		case strings.HasPrefix(format[i:], "{}"):
			if next >= len(args) {
				return "", fmt.Errorf("not enough arguments for format string %q", format)
			}
			sb.WriteString(fmt.Sprint(args[next]))
			next++
			i += 2
		default:
			sb.WriteByte(format[i])
			i++
		}
	}

	if next < len(args) {
		return "", fmt.Errorf("too many arguments for format string %q", format)
	}
	return sb.String(), nil
}

// MustFormat is Format but panics on argument count mismatch. Intended for
// format strings fixed at compile time.
func MustFormat(format string, args ...any) string {
	s, err := Format(format, args...)
	if err != nil {
		panic(err)
	}
	return s
}

// Println formats and writes to stdout with a trailing newline.
func Println(format string, args ...any) error {
	return Fprintln(os.Stdout, format, args...)
}

// Fprintln formats and writes to w with a trailing newline.
func Fprintln(w io.Writer, format string, args ...any) error {
	s, err := Format(format, args...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// FormatNamed substitutes vals into {name} placeholders. Placeholders with
// no entry in vals are left as written, so partial substitution composes.
// {{ and }} escapes behave as in Format.
func FormatNamed(format string, vals map[string]string) string {
	var sb strings.Builder

	for i := 0; i < len(format); {
		switch {
		case strings.HasPrefix(format[i:], "{{"):
			sb.WriteByte('{')
			i += 2
		case strings.HasPrefix(format[i:], "}}"):
			sb.WriteByte('}')
			i += 2
		case format[i] == '{':
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				sb.WriteString(format[i:])
				return sb.String()
			}
			name := format[i+1 : i+end]
			if val, ok := vals[name]; ok {
				sb.WriteString(val)
			} else {
				sb.WriteString(format[i : i+end+1])
			}
			i += end + 1
		default:
			sb.WriteByte(format[i])
			i++
		}
	}
	return sb.String()
}

// CountPlaceholders returns the number of {} placeholders in format,
// ignoring escaped braces.
func CountPlaceholders(format string) int {
	count := 0
	for i := 0; i < len(format); {
		switch {
		case strings.HasPrefix(format[i:], "{{"), strings.HasPrefix(format[i:], "}}"):
			i += 2
		case strings.HasPrefix(format[i:], "{}"):
			count++
			i += 2
		default:
			i++
		}
	}
	return count
}

// Validate reports whether every brace in format is part of a {}
// placeholder or an escape pair.
func Validate(format string) bool {
	for i := 0; i < len(format); {
		switch {
		case strings.HasPrefix(format[i:], "{{"), strings.HasPrefix(format[i:], "}}"):
			i += 2
		case strings.HasPrefix(format[i:], "{}"):
			i += 2
		case format[i] == '{' || format[i] == '}':
			return false
		default:
			i++
		}
	}
	return true
}
