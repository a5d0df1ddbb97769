// Command lvtree drives the lvtree algorithms from the shell.
//
//	lvtree demo                         walk through the reference tree
//	lvtree stats --size 100000 --seed 7 profile a random search tree
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
