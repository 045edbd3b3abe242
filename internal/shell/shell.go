// Package shell implements a line-oriented command interpreter over a
// Filesystem. The CLI feeds it lines from stdin; tests feed it strings.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

// LineScanner yields command lines one at a time. The second result is false
// when the input is exhausted.
type LineScanner interface {
	NextLine() (string, bool)
}

// Interpreter parses command lines and dispatches them to a Filesystem,
// writing command output to out. Failure messages from the filesystem are
// written verbatim.
type Interpreter struct {
	fs  *mapfs.Filesystem
	out io.Writer
}

// NewInterpreter creates an Interpreter. Panics if fs or out is nil.
func NewInterpreter(fs *mapfs.Filesystem, out io.Writer) *Interpreter {
	if fs == nil {
		panic("filesystem cannot be nil")
	}
	if out == nil {
		panic("output writer cannot be nil")
	}
	return &Interpreter{fs: fs, out: out}
}

// Run executes lines from the scanner until it is exhausted or an exit
// command is read.
func (i *Interpreter) Run(scanner LineScanner) {
	for {
		line, ok := scanner.NextLine()
		if !ok {
			return
		}
		if !i.Execute(line) {
			return
		}
	}
}

// Execute runs one command line. Returns false when the shell should exit.
func (i *Interpreter) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	command, args := fields[0], fields[1:]

	switch command {
	case "exit", "quit":
		return false
	case "help":
		i.printHelp()
	case "pwd":
		i.println(i.fs.Pwd())
	case "mkdir":
		i.report(i.fs.Mkdir(i.arg(args)))
	case "cd":
		i.report(i.fs.Cd(i.arg(args)))
	case "ls":
		path := i.arg(args)
		if path == "" {
			path = i.fs.Pwd()
		}
		for _, child := range i.fs.Ls(path) {
			i.println(child)
		}
	case "touch":
		i.report(i.fs.Touch(i.arg(args)))
	case "cat":
		if text, ok := i.fs.ReadText(i.arg(args)); ok {
			i.println(text)
		} else {
			i.println("Cannot read file: " + i.arg(args))
		}
	case "rm":
		if !i.fs.Rm(i.arg(args)) {
			i.println("Cannot remove file: " + i.arg(args))
		}
	case "cp":
		source, target, ok := i.twoArgs(args, "cp")
		if ok {
			i.report(i.fs.Cp(source, target))
		}
	case "mv":
		source, target, ok := i.twoArgs(args, "mv")
		if ok {
			i.report(i.fs.Mv(source, target))
		}
	case "depth":
		path := i.arg(args)
		if path == "" {
			path = i.fs.Pwd()
		}
		i.println(fmt.Sprintf("%d", i.fs.Depth(path)))
	case "exists":
		i.println(fmt.Sprintf("%t", i.fs.Exists(i.arg(args))))
	case "isfile":
		i.println(fmt.Sprintf("%t", i.fs.IsFile(i.arg(args))))
	case "isdir":
		i.println(fmt.Sprintf("%t", i.fs.IsDir(i.arg(args))))
	case "debug":
		fmt.Fprint(i.out, i.fs.Debug())
	case "flush":
		if err := i.fs.Flush(); err != nil {
			i.println("Flush failed: " + err.Error())
		}
	default:
		i.println("Unknown command: " + command)
	}
	return true
}

func (i *Interpreter) arg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func (i *Interpreter) twoArgs(args []string, command string) (string, string, bool) {
	if len(args) < 2 {
		i.println("Usage: " + command + " <source> <target>")
		return "", "", false
	}
	return args[0], args[1], true
}

// report prints a command result only when it carries a failure message.
func (i *Interpreter) report(result string) {
	if result != "" {
		i.println(result)
	}
}

func (i *Interpreter) println(s string) {
	fmt.Fprintln(i.out, s)
}

func (i *Interpreter) printHelp() {
	i.println(`Commands:
  mkdir <path>          create a directory
  cd <path>             change the working directory
  pwd                   print the working directory
  ls [path]             list direct children
  touch <path>          create an empty file
  cat <path>            print file contents
  rm <path>             remove a file or empty directory entry
  cp <source> <target>  copy a file
  mv <source> <target>  move a file
  depth [path]          print the path depth
  exists <path>         report whether the path exists
  isfile <path>         report whether the path is a file
  isdir <path>          report whether the path is a directory
  debug                 dump every key=value entry
  flush                 persist pending changes
  help                  show this help
  exit                  leave the shell`)
}
