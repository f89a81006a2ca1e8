package main

import (
	"os"

	"github.com/deepnoodle-ai/cstring/errors"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := cli.New("cstring").
		Description("Inspect and query immutable byte strings").
		Version(version).
		AddCompletionCommand()

	// Global flags
	app.GlobalFlags(
		cli.Bool("no-color", "").Env("NO_COLOR").Help("Disable colored output"),
		cli.Bool("debug", "").Env("CSTRING_DEBUG").Help("Enable debug logging"),
		cli.Bool("hex", "x").Help("Treat string arguments as hex-encoded bytes"),
	)

	app.Command("call").
		Alias("c").
		Description("Call a string method, e.g. call 'hello' find l 0 4").
		Args("args...").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(withLogging(callHandler))

	app.Command("slice").
		Alias("s").
		Description("Index or slice a string using start:stop:step notation").
		Args("args...").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(withLogging(sliceHandler))

	app.Command("concat").
		Description("Join strings with the + operator").
		Args("strings...").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(withLogging(concatHandler))

	app.Command("repeat").
		Description("Repeat a string with the * operator").
		Args("args...").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(withLogging(repeatHandler))

	app.Command("hash").
		Description("Print the content hash of each string").
		Args("strings...").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(withLogging(hashHandler))

	app.Command("classify").
		Description("Report the byte class predicates of each string").
		Args("strings...").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(withLogging(classifyHandler))

	app.Command("compare").
		Description("Compare two strings byte by byte").
		Args("args...").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(withLogging(compareHandler))

	app.Command("methods").
		Alias("m").
		Description("List the methods available on strings").
		Args("name?").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(withLogging(methodsHandler))

	app.Command("version").
		Description("Print version information").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(versionHandler)

	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			return
		}
		printError(err.Error())
		os.Exit(exitCode(err))
	}
}

func printError(msg string) {
	if color.ShouldColorize(os.Stderr) {
		msg = color.Red.Apply(msg)
	}
	os.Stderr.WriteString(msg + "\n")
}

// exitCode maps string operation failures to their class exit code and
// defers to the cli package for everything else.
func exitCode(err error) int {
	if kind := errors.KindOf(err); kind != errors.ErrRuntime {
		return kind.Code().ExitCode()
	}
	return cli.GetExitCode(err)
}
