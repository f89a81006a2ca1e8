package main

import (
	"fmt"
	"io"

	"github.com/deepnoodle-ai/wonton/cli"
)

type hashResult struct {
	Input string `json:"input"`
	Hash  int64  `json:"hash"`
	Hex   string `json:"hex"`
}

func hashHandler(ctx *cli.Context) error {
	inputs, err := readInputs(ctx, ctx.Args())
	if err != nil {
		return err
	}
	results := make([]hashResult, 0, len(inputs))
	for _, s := range inputs {
		h := s.Hash()
		results = append(results, hashResult{
			Input: s.Value(),
			Hash:  h,
			Hex:   fmt.Sprintf("%016x", uint64(h)),
		})
	}
	return render(ctx, results, func(w io.Writer) {
		for i, r := range results {
			fmt.Fprintf(w, "%s  %s\n", r.Hex, inputs[i].Inspect())
		}
	})
}
