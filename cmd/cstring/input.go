package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/cstring/object"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/hashicorp/go-multierror"
)

// readInputs converts command line arguments into strings. With --hex each
// argument is decoded from hexadecimal, and every malformed argument is
// reported, not just the first.
func readInputs(ctx *cli.Context, args []string) ([]*object.String, error) {
	inputs := make([]*object.String, 0, len(args))
	if !ctx.Bool("hex") {
		for _, arg := range args {
			inputs = append(inputs, object.NewString(arg))
		}
		return inputs, nil
	}
	var result *multierror.Error
	for i, arg := range args {
		b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("argument %d (%q): %w", i+1, arg, err))
			continue
		}
		inputs = append(inputs, object.FromBytes(b))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// parseArg converts a method argument. Integers become ints, "null" omits an
// optional bound and anything else is passed as a string.
func parseArg(arg string) object.Object {
	if arg == "null" {
		return object.Nil
	}
	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return object.NewInt(i)
	}
	return object.NewString(arg)
}

// parseSubscript parses an index ("3", "-1") or a slice in start:stop:step
// notation where every part is optional ("1:4", "::-1").
func parseSubscript(spec string) (object.Object, error) {
	if !strings.Contains(spec, ":") {
		i, err := strconv.ParseInt(spec, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %q", spec)
		}
		return object.NewInt(i), nil
	}
	parts := strings.Split(spec, ":")
	if len(parts) > 3 {
		return nil, fmt.Errorf("invalid slice: %q (too many colons)", spec)
	}
	bounds := make([]object.Object, 3)
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid slice bound: %q", part)
		}
		bounds[i] = object.NewInt(v)
	}
	return object.Slice{Start: bounds[0], Stop: bounds[1], Step: bounds[2]}, nil
}
