/*
Command xc is the command-line driver for the X language front end: it
parses a source file, prints a textual dump of its AST to standard output,
lays the tree out, and saves a diagram next to the source as a PNG image.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"devt.de/xtc/xc/config"
	"devt.de/xtc/xc/layout"
	"devt.de/xtc/xc/lexer"
	"devt.de/xtc/xc/parser"
	"devt.de/xtc/xc/render"
	"devt.de/xtc/xc/util"
)

/*
wrapFatal classifies a raw pipeline error into the *util.CompileError form
spec §7 requires every user-visible diagnostic to take, so the CLI never
prints a bare Go error string.
*/
func wrapFatal(path string, err error) error {
	switch e := err.(type) {
	case *lexer.Error:
		errType := util.ErrIllegalChar
		if e.Detail != "illegal character" {
			errType = util.ErrMalformedLiteral
		}
		return util.NewCompileError(path, errType, e.Error(), nil, e.Line, e.Col)
	case *parser.SyntaxError:
		return util.NewCompileError(path, util.ErrSyntax, e.Error(), nil, e.Found.Line, e.Found.Left)
	default:
		return util.NewCompileError(path, util.ErrIO, err.Error(), nil, 0, 0)
	}
}

func main() {
	logLevel := flag.String("log", "error", "log level: debug, info, or error")
	memLog := flag.Bool("mem-log", false, "buffer the pipeline log in memory instead of printing it live, and dump it once the run finishes")

	flag.Usage = func() {
		fmt.Println(fmt.Sprintf("Usage of %s <source-file>", os.Args[0]))
		fmt.Println()
		fmt.Println(fmt.Sprintf("xc %v - a teaching compiler front end for the X language", config.ProductVersion))
		fmt.Println()
		fmt.Println("Parses <source-file>, prints a textual AST dump to stdout, and")
		fmt.Println("writes a tree diagram next to it with a .png extension.")
		fmt.Println()
		flag.PrintDefaults()
	}

	flag.Parse()

	var sink util.Logger
	var ml *util.MemoryLogger
	if *memLog {
		ml = util.NewMemoryLogger(64)
		sink = ml
	} else {
		sink = util.NewStdOutLogger()
	}

	logger, err := util.NewLogLevelLogger(sink, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if len(flag.Args()) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	runErr := run(flag.Args()[0], logger)
	if runErr != nil {
		logger.LogError(runErr)
	}

	if ml != nil {
		fmt.Print(ml.String())
		if ml.Size() > 0 {
			fmt.Println()
		}
	}

	if runErr != nil {
		os.Exit(1)
	}
}

func run(path string, logger util.Logger) error {
	logger.LogDebug("lex start: ", path)

	p, err := parser.NewParser(path)
	if err != nil {
		return wrapFatal(path, err)
	}

	logger.LogDebug("parse start")

	root, err := p.Parse()
	if err != nil {
		return wrapFatal(path, err)
	}

	fmt.Print(root.String())

	logger.LogDebug("layout start")
	l := layout.Build(root)

	logger.LogDebug("draw start")
	d := layout.Draw(l)

	imgPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"

	f, err := os.Create(imgPath)
	if err != nil {
		return util.NewCompileError(path, util.ErrIO, err.Error(), nil, 0, 0)
	}
	defer f.Close()

	logger.LogInfo("writing ", imgPath)

	if err := render.PNG(d, f); err != nil {
		return wrapFatal(path, err)
	}

	return nil
}
