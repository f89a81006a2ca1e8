package main

import (
	"fmt"
	"io"

	"github.com/deepnoodle-ai/cstring/errors"
	"github.com/deepnoodle-ai/cstring/object"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/rs/zerolog/log"
)

// unknownMethod reports a missing method, suggesting close matches.
func unknownMethod(s *object.String, name string) error {
	hint := errors.Hint(errors.Suggest(name, object.AttrNames(s.Attrs())))
	if hint == "" {
		hint = "see 'cstring methods'"
	}
	return fmt.Errorf("unknown method: %s (%s)", name, hint)
}

type callResult struct {
	Input  string `json:"input"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
	Type   string `json:"type"`
	Result any    `json:"result"`
}

// callHandler runs "call <string> <method> [args...]". With --hex only the
// receiver is decoded; method arguments are parsed by parseArg.
func callHandler(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return fmt.Errorf("usage: cstring call <string> <method> [args...]")
	}
	inputs, err := readInputs(ctx, args[:1])
	if err != nil {
		return err
	}
	s, method := inputs[0], args[1]

	attr, ok := s.GetAttr(method)
	if !ok {
		return unknownMethod(s, method)
	}
	fn, ok := attr.(object.Callable)
	if !ok {
		return fmt.Errorf("attribute is not callable: %s", method)
	}

	callArgs := make([]object.Object, 0, len(args)-2)
	shown := make([]any, 0, len(args)-2)
	for _, arg := range args[2:] {
		obj := parseArg(arg)
		callArgs = append(callArgs, obj)
		shown = append(shown, toGoValue(obj))
	}
	log.Debug().Str("method", method).Int("argc", len(callArgs)).Msg("calling method")

	result, err := fn.Call(ctx.Context(), callArgs...)
	if err != nil {
		return err
	}
	out := callResult{
		Input:  s.Value(),
		Method: method,
		Args:   shown,
		Type:   string(result.Type()),
		Result: toGoValue(result),
	}
	return render(ctx, out, func(w io.Writer) {
		fmt.Fprintln(w, result.Inspect())
	})
}
