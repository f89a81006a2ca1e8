package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepnoodle-ai/cstring/object"
	"github.com/deepnoodle-ai/wonton/cli"
)

type classification struct {
	Input       string `json:"input"`
	IsAlnum     bool   `json:"isalnum"`
	IsAlpha     bool   `json:"isalpha"`
	IsDigit     bool   `json:"isdigit"`
	IsLower     bool   `json:"islower"`
	IsPrintable bool   `json:"isprintable"`
	IsSpace     bool   `json:"isspace"`
	IsUpper     bool   `json:"isupper"`
}

func classify(s *object.String) classification {
	return classification{
		Input:       s.Value(),
		IsAlnum:     s.IsAlnum(),
		IsAlpha:     s.IsAlpha(),
		IsDigit:     s.IsDigit(),
		IsLower:     s.IsLower(),
		IsPrintable: s.IsPrintable(),
		IsSpace:     s.IsSpace(),
		IsUpper:     s.IsUpper(),
	}
}

// names lists the predicates that hold, in alphabetical order.
func (c classification) names() []string {
	var names []string
	for _, p := range []struct {
		name string
		ok   bool
	}{
		{"isalnum", c.IsAlnum},
		{"isalpha", c.IsAlpha},
		{"isdigit", c.IsDigit},
		{"islower", c.IsLower},
		{"isprintable", c.IsPrintable},
		{"isspace", c.IsSpace},
		{"isupper", c.IsUpper},
	} {
		if p.ok {
			names = append(names, p.name)
		}
	}
	return names
}

func classifyHandler(ctx *cli.Context) error {
	inputs, err := readInputs(ctx, ctx.Args())
	if err != nil {
		return err
	}
	results := make([]classification, 0, len(inputs))
	for _, s := range inputs {
		results = append(results, classify(s))
	}
	return render(ctx, results, func(w io.Writer) {
		for i, c := range results {
			names := c.names()
			if len(names) == 0 {
				names = []string{"-"}
			}
			fmt.Fprintf(w, "%s: %s\n", inputs[i].Inspect(), strings.Join(names, " "))
		}
	})
}
