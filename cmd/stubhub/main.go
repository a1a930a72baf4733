// Package main is the entry point for the stubhub CLI.
package main

import (
	"github.com/donaldgifford/stubhub/cmd/stubhub/cmd"
)

func main() {
	cmd.Execute()
}
