package main

import "github.com/tursodatabase/blocks/internal/cmd"

func main() {
	cmd.Execute()
}
