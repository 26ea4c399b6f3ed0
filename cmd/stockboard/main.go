package main

import (
	"github.com/c9s/stockboard/pkg/cmd"
)

func main() {
	cmd.Execute()
}
