package main

import "github.com/Dr-Obek/textfilter/internal/cli"

func main() {
	cli.Execute()
}
