package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ComedicChimera/olive"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	cli := olive.NewCLI("xqresolve", "xqresolve resolves XQuery names, types and calls statically", true)
	cli.AddFlag("plain", "pl", "disable styled output")

	expandCmd := cli.AddSubcommand("expand", "expand a lexical name", true)
	expandCmd.AddPrimaryArg("name", "the name to expand, such as p:local or Q{uri}local", true)
	ctxArg := expandCmd.AddSelectorArg("context", "c", "the syntactic position of the name", false, contextNames)
	ctxArg.SetDefaultValue("element")
	expandCmd.AddStringArg("config", "f", "static context TOML file", false)

	typeCmd := cli.AddSubcommand("type", "render a sequence type canonically", true)
	typeCmd.AddPrimaryArg("type", "the sequence type text", true)

	bindCmd := cli.AddSubcommand("bind", "bind call arguments to a declared function", true)
	bindCmd.AddPrimaryArg("callee", "the function name as written at the call site", true)
	bindCmd.AddStringArg("args", "a", "comma separated arguments; name:=value for keywords", false)
	bindCmd.AddStringArg("arrow", "ar", "the expression left of an arrow operator", false)
	bindCmd.AddStringArg("config", "f", "static context TOML file", false)
	bindCmd.AddStringArg("db", "d", "signature database file", false)

	checkCmd := cli.AddSubcommand("check", "load a static context file and list its contents", true)
	checkCmd.AddPrimaryArg("config", "static context TOML file", true)

	watchCmd := cli.AddSubcommand("watch", "check a static context file whenever it changes", true)
	watchCmd.AddPrimaryArg("config", "static context TOML file", true)

	importCmd := cli.AddSubcommand("import", "store the functions of a static context file in a signature database", true)
	importCmd.AddPrimaryArg("config", "static context TOML file", true)
	importCmd.AddStringArg("db", "d", "signature database file", true)

	result, err := olive.ParseArgs(cli, append([]string{"xqresolve"}, args...))
	if err != nil {
		if writeErr := writef(stderr, "usage error: %v\n", err); writeErr != nil {
			return 1
		}
		return 2
	}

	out := newPrinter(stdout, result.HasFlag("plain"))
	errOut := newPrinter(stderr, result.HasFlag("plain"))

	subcmdName, subResult, ok := result.Subcommand()
	if !ok {
		if writeErr := writeln(stderr, "error: a subcommand is required (expand, type, bind, check, watch, import)"); writeErr != nil {
			return 1
		}
		return 2
	}

	switch subcmdName {
	case "expand":
		return execExpandCommand(subResult, out, errOut)
	case "type":
		return execTypeCommand(subResult, out)
	case "bind":
		return execBindCommand(subResult, out, errOut)
	case "check":
		return execCheckCommand(subResult, out, errOut)
	case "watch":
		return execWatchCommand(subResult, out, errOut)
	case "import":
		return execImportCommand(subResult, out, errOut)
	}
	if writeErr := writef(stderr, "error: unknown subcommand %s\n", subcmdName); writeErr != nil {
		return 1
	}
	return 2
}

func stringArg(result *olive.ArgParseResult, name string) string {
	value, ok := result.Arguments[name]
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
