package main

import "kartasist/cmd"

func main() {
	cmd.Execute()
}
