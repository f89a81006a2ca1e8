package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepnoodle-ai/cstring/object"
	"github.com/deepnoodle-ai/wonton/cli"
)

func methodsHandler(ctx *cli.Context) error {
	doc, ok := object.TypeDoc(object.STRING)
	if !ok {
		return fmt.Errorf("no documentation for type %s", object.STRING)
	}
	attrs := doc.Attrs
	if name := ctx.Arg(0); name != "" {
		attr, ok := object.FindAttr(attrs, name)
		if !ok {
			return unknownMethod(object.NewString(""), name)
		}
		attrs = []object.AttrSpec{attr}
	}
	return render(ctx, attrs, func(w io.Writer) {
		if len(attrs) > 1 {
			fmt.Fprintf(w, "%s: %s\n\n", doc.Name, doc.Doc)
		}
		for _, attr := range attrs {
			sig := fmt.Sprintf("%s(%s) -> %s", attr.Name, strings.Join(attr.Args, ", "), attr.Returns)
			fmt.Fprintf(w, "  %-40s %s\n", sig, attr.Doc)
		}
	})
}
