package main

import "github.com/comphy-lab/reactdiff/cmd"

func main() {
	cmd.Execute()
}
