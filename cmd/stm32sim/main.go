package main

import "github.com/db47h/stm32sim/cmd/stm32sim/cmd"

func main() {
	cmd.Execute()
}
