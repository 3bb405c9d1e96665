package main

import (
	"os"

	"github.com/grovetools/slackconv/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
