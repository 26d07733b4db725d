package templates

// Built-in templates used when no on-disk file shadows them.

const exprTemplate = `package main

import "fmt"

#{prelude}

func main() {
	result := func() any {
		return #{script}
	}()
	fmt.Printf("%v\n", result)
}
`

const fileTemplate = `#{script}`

const loopTemplate = `package main

import (
	"bufio"
	"os"
)

#{prelude}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		#{script}
	}
}
`

const loopCountTemplate = `package main

import (
	"bufio"
	"os"
)

#{prelude}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		count++
		#{script}
	}
}
`

// builtinTemplate returns the text of a built-in template by name.
func builtinTemplate(name string) (string, bool) {
	switch name {
	case "expr":
		return exprTemplate, true
	case "file":
		return fileTemplate, true
	case "loop":
		return loopTemplate, true
	case "loop-count":
		return loopCountTemplate, true
	default:
		return "", false
	}
}

// BuiltinNames lists the built-in template names.
func BuiltinNames() []string {
	return []string{"expr", "file", "loop", "loop-count"}
}
