package main

import "github.com/nicoletanyt/obsidian-plugin-graphs/internal/cli"

func main() {
	cli.Execute()
}
