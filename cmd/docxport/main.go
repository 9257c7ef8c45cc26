package main

import (
	"fmt"
	"os"

	"github.com/benjaminschreck/go-docxport/pkg/docxport"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("docxport version %s\n", version)
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: docxport inspect <template.docx>")
			os.Exit(1)
		}
		if err := inspect(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "docxport: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("docxport - DOCX template importer")
	fmt.Println("\nUsage: docxport <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  inspect <template>    Show the headers, footers and media of a template")
	fmt.Println("  version               Show version information")
}

func inspect(path string) error {
	tmpl, err := docxport.ImportFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  styles:     %d\n", len(tmpl.Styles.StyleIDs()))
	fmt.Printf("  title page: %v\n", tmpl.TitlePage)

	for _, h := range tmpl.Headers {
		printPart("header", h)
	}
	for _, f := range tmpl.Footers {
		printPart("footer", f)
	}

	fmt.Printf("  next relationship id: %d\n", tmpl.NextRelID)
	return nil
}

func printPart(kind string, hf *docxport.HeaderFooter) {
	fmt.Printf("  %s (%s) rId%d: %d images, %d links\n",
		kind, hf.Placement, hf.RelID, len(hf.Images), len(hf.Links))
}
