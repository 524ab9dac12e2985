package main

import (
	"github.com/ergung/position-calculator/cmd/possize/cmd"
)

func main() {
	cmd.Execute()
}
