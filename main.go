package main

import "github.com/Mochibw/PrimerPioneer/cmd"

func main() {
	cmd.Execute()
}
