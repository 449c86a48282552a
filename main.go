package main

import "match-canon/cmd"

func main() {
	cmd.Execute()
}
