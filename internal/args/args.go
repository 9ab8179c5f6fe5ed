// Package args splits argv into the executable, an optional command and
// whatever follows.
package args

import "os"

// Executable is a parsed argument vector.
type Executable struct {
	Path      string
	Command   string
	Remaining []string

	hasPath    bool
	hasCommand bool
}

// FromOS parses os.Args with a command.
func FromOS() Executable {
	return Parse(true, os.Args)
}

// Parse splits argv. When withCommand is false the first argument after
// the executable stays in Remaining.
func Parse(withCommand bool, argv []string) Executable {
	var e Executable
	if len(argv) == 0 {
		return e
	}

	e.Path, e.hasPath = argv[0], true
	rest := argv[1:]

	if withCommand && len(rest) > 0 {
		e.Command, e.hasCommand = rest[0], true
		rest = rest[1:]
	}

	e.Remaining = append([]string(nil), rest...)
	return e
}

// HasExecutable reports whether argv had an argv[0].
func (e Executable) HasExecutable() bool { return e.hasPath }

// HasCommand reports whether a command was present.
func (e Executable) HasCommand() bool { return e.hasCommand }

// Count is the number of arguments after the command.
func (e Executable) Count() int { return len(e.Remaining) }
