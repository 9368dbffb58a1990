// Package main implements the flashnotes command line tool, which manages a
// collection of question and answer flashcards stored in a JSON file.
package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}
