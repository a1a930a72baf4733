// Package main generates CLI reference documentation from the stubhub
// command tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/stubhub/cmd/stubhub/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	man := flag.Bool("man", false, "generate man pages instead of markdown")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	if *man {
		header := &doc.GenManHeader{Title: "STUBHUB", Section: "1"}
		if err := doc.GenManTree(root, header, *output); err != nil {
			log.Fatalf("generating man pages: %v", err)
		}
		fmt.Printf("man pages generated in %s/\n", *output)
		return
	}

	if err := doc.GenMarkdownTree(root, *output); err != nil {
		log.Fatalf("generating docs: %v", err)
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}
