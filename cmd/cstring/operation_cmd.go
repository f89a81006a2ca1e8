package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/deepnoodle-ai/cstring/object"
	"github.com/deepnoodle-ai/cstring/op"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/rs/zerolog/log"
)

type operationResult struct {
	Op     string `json:"op"`
	Result string `json:"result"`
	Length int    `json:"length"`
}

func renderOperation(ctx *cli.Context, bop op.BinaryOpType, result object.Object) error {
	s := result.(*object.String)
	out := operationResult{Op: bop.String(), Result: s.Value(), Length: s.Len()}
	return render(ctx, out, func(w io.Writer) {
		fmt.Fprintln(w, s.Inspect())
	})
}

// concatHandler joins its arguments left to right with the + operator.
func concatHandler(ctx *cli.Context) error {
	inputs, err := readInputs(ctx, ctx.Args())
	if err != nil {
		return err
	}
	var result object.Object = object.NewString("")
	for _, s := range inputs {
		if result, err = result.(*object.String).RunOperation(op.Add, s); err != nil {
			return err
		}
	}
	return renderOperation(ctx, op.Add, result)
}

// repeatHandler runs "repeat <string> <count>" with the * operator.
func repeatHandler(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 2 {
		return fmt.Errorf("usage: cstring repeat <string> <count>")
	}
	inputs, err := readInputs(ctx, args[:1])
	if err != nil {
		return err
	}
	count, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid count: %q", args[1])
	}
	log.Debug().Int64("count", count).Int("len", inputs[0].Len()).Msg("repeating")
	result, err := inputs[0].RunOperation(op.Multiply, object.NewInt(count))
	if err != nil {
		return err
	}
	return renderOperation(ctx, op.Multiply, result)
}
