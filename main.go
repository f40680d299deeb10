package main

import "github.com/robalobadob/guessnum/internal/cli"

func main() {
	cli.Execute()
}
