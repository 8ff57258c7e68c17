// Package main is the entry point for the reconmut CLI.
package main

import "gooze.dev/pkg/reconmut/cmd"

func main() {
	cmd.Execute()
}
