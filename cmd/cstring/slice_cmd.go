package main

import (
	"fmt"
	"io"

	"github.com/deepnoodle-ai/wonton/cli"
)

type sliceResult struct {
	Input     string `json:"input"`
	Subscript string `json:"subscript"`
	Result    string `json:"result"`
	Length    int    `json:"length"`
}

func sliceHandler(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 2 {
		return fmt.Errorf("usage: cstring slice <string> <start:stop:step>")
	}
	inputs, err := readInputs(ctx, args[:1])
	if err != nil {
		return err
	}
	key, err := parseSubscript(args[1])
	if err != nil {
		return err
	}
	s := inputs[0]
	item, err := s.GetItem(key)
	if err != nil {
		return err
	}
	value := toGoValue(item).(string)
	out := sliceResult{
		Input:     s.Value(),
		Subscript: args[1],
		Result:    value,
		Length:    len(value),
	}
	return render(ctx, out, func(w io.Writer) {
		fmt.Fprintln(w, item.Inspect())
	})
}
