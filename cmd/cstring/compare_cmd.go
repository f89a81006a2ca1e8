package main

import (
	"fmt"
	"io"

	"github.com/deepnoodle-ai/cstring/op"
	"github.com/deepnoodle-ai/wonton/cli"
)

type opResult struct {
	Op     string `json:"op"`
	Result bool   `json:"result"`
}

type compareResult struct {
	Left    string     `json:"left"`
	Right   string     `json:"right"`
	Compare int        `json:"compare"`
	Equal   bool       `json:"equal"`
	Ops     []opResult `json:"ops"`
}

func compareHandler(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 2 {
		return fmt.Errorf("usage: cstring compare <a> <b>")
	}
	inputs, err := readInputs(ctx, args)
	if err != nil {
		return err
	}
	a, b := inputs[0], inputs[1]
	cmp, err := a.Compare(b)
	if err != nil {
		return err
	}
	out := compareResult{
		Left:    a.Value(),
		Right:   b.Value(),
		Compare: cmp,
		Equal:   a.Equals(b),
	}
	for _, cop := range op.CompareOps {
		ok, err := a.CompareOp(cop, b)
		if err != nil {
			return err
		}
		out.Ops = append(out.Ops, opResult{Op: cop.String(), Result: ok})
	}
	return render(ctx, out, func(w io.Writer) {
		fmt.Fprintf(w, "compare: %d\n", out.Compare)
		for _, r := range out.Ops {
			fmt.Fprintf(w, "%s %-2s %s: %t\n", a.Inspect(), r.Op, b.Inspect(), r.Result)
		}
	})
}
