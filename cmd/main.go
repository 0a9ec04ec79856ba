package main

import (
	cmd "github.com/rpaes/tankobon/cmd/tankobon"
)

func main() {
	cmd.Execute()
}
