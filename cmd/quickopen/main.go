package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/quickopen/internal/picker"
	"github.com/kk-code-lab/quickopen/internal/walk"
)

// Cap the walk so huge trees stay responsive.
const maxCandidates = 50000

func printHelp() {
	fmt.Print(`quickopen - Fuzzy file picker for the terminal

USAGE:
    quickopen [OPTIONS] [DIR]

    Type to filter the files under DIR (default: current directory).
    Enter prints the selected path to stdout; Esc exits without output.

OPTIONS:
    -h, --help    Show this help message and exit
`)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	root := "."
	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-h" || arg == "--help" {
			printHelp()
			os.Exit(0)
		}
		root = arg
	}

	candidates, err := walk.Collect(root, maxCandidates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing files: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}

	selected, accepted := picker.Run(screen, candidates)
	screen.Fini()

	if accepted {
		fmt.Println(selected.RelPath)
	}
}
