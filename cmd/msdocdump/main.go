// Command msdocdump extracts plain text from a .doc file and prints it to
// stdout. With -streams it instead lists the compound file's stream names.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/clxtext/msdoc/cfb"
	"github.com/clxtext/msdoc/pkg/msdoc"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Println("Usage: msdocdump [-streams] <file.doc>")
		os.Exit(1)
	}

	if args[0] == "-streams" {
		if len(args) < 2 {
			fmt.Println("Usage: msdocdump -streams <file.doc>")
			os.Exit(1)
		}
		listStreams(args[1])
		return
	}

	dumpText(args[0])
}

func dumpText(filename string) {
	doc, err := msdoc.Open(filename)
	if err != nil {
		log.Fatalf("failed to open DOC: %v", err)
	}
	defer doc.Close()

	text, warnings, err := doc.Text()
	if err != nil {
		log.Fatalf("failed to extract text: %v", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	fmt.Println(text)
}

func listStreams(filename string) {
	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("failed to open file: %v", err)
	}
	defer f.Close()

	container, err := cfb.Open(f)
	if err != nil {
		log.Fatalf("failed to open compound file: %v", err)
	}

	fmt.Println("Streams found:")
	for _, s := range container.Streams() {
		fmt.Printf("- %q\n", s)
	}
}
