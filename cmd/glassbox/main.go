// glassbox is the CLI: run a search and inspect its decisions, compare
// algorithms on the same world, replay a trace step by step, or serve
// traces over HTTP.
//
// Usage:
//
//	glassbox run --scenario=<name> [--algorithm=<name>] [--narrate]
//	glassbox compare --scenario=<name> [--algorithms=<a,b,...>]
//	glassbox play [--scenario=<name>] [--interval=<duration>]
//	glassbox scenarios [name]
//	glassbox serve [--addr=<host:port>]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
