package main

import "decochanges/cmd"

func main() {
	cmd.Execute()
}
