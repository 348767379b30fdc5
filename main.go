// Package main is the entry point for the binres CLI.
package main

import "binres.dev/pkg/binres/cmd"

func main() {
	cmd.Execute()
}
