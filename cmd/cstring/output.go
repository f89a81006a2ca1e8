package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deepnoodle-ai/cstring/object"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
	"github.com/goccy/go-json"
)

const reset = "\033[0m"

// render writes result to stdout as JSON when "-o json" is given. Otherwise
// text writes the human readable form.
func render(ctx *cli.Context, result any, text func(w io.Writer)) error {
	switch format := strings.ToLower(ctx.String("output")); format {
	case "json":
		data, err := formatJSON(result, ctx.Bool("no-color"))
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	case "", "text":
		text(os.Stdout)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func formatJSON(result any, noColor bool) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	if !noColor && color.ShouldColorize(os.Stdout) {
		data = colorizeJSON(data)
	}
	return data, nil
}

// colorizeJSON highlights indented JSON: keys cyan, strings green, numbers
// yellow, booleans magenta and null dimmed.
func colorizeJSON(data []byte) []byte {
	s := string(data)
	var out strings.Builder
	out.Grow(len(s) * 2)
	paint := func(seq, text string) {
		out.WriteString(seq)
		out.WriteString(text)
		out.WriteString(reset)
	}
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '"':
			end := stringEnd(s, i)
			token := s[i:end]
			if strings.HasPrefix(strings.TrimLeft(s[end:], " "), ":") {
				paint(color.Cyan.ForegroundSeq(), token)
			} else {
				paint(color.Green.ForegroundSeq(), token)
			}
			i = end
		case c == '-' || (c >= '0' && c <= '9'):
			end := i + 1
			for end < len(s) && strings.IndexByte("0123456789.eE+-", s[end]) >= 0 {
				end++
			}
			paint(color.Yellow.ForegroundSeq(), s[i:end])
			i = end
		case strings.HasPrefix(s[i:], "true"):
			paint(color.Magenta.ForegroundSeq(), "true")
			i += 4
		case strings.HasPrefix(s[i:], "false"):
			paint(color.Magenta.ForegroundSeq(), "false")
			i += 5
		case strings.HasPrefix(s[i:], "null"):
			paint(color.BrightBlack.ForegroundSeq(), "null")
			i += 4
		default:
			out.WriteByte(c)
			i++
		}
	}
	return []byte(out.String())
}

// stringEnd returns the index just past the JSON string starting at s[start].
func stringEnd(s string, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(s)
}

// toGoValue converts an object into a value suitable for JSON encoding.
func toGoValue(obj object.Object) any {
	switch v := obj.(type) {
	case nil, *object.NilType:
		return nil
	case *object.String:
		return v.Value()
	case *object.Int:
		return v.Value()
	case *object.Bool:
		return v.Value()
	default:
		return v.Inspect()
	}
}
