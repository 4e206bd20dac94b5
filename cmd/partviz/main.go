package main

import "github.com/madeinoz67/partshub-sub000/cmd/partviz/cmd"

func main() {
	cmd.Execute()
}
