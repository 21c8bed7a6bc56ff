package main

import "github.com/eroom8/Java-document-sorter/internal/cli"

func main() {
	cli.Execute()
}
