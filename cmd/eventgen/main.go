// Command eventgen generates event identity methods and event set tables from
// //evolve: directives.
//
//	//evolve:event name=chat.created version=1
//	type ChatCreated struct{ ... }
//
//	//evolve:set ChatCreated MessagePosted
//	type ChatEvent interface{ ... }
//
// Use it with go:generate:
//
//	//go:generate go run github.com/DeluxeOwl/evolve/cmd/eventgen
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
