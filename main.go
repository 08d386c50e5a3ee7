package main

import "github.com/azmarkets/wolt-scrap/cmd"

func main() {
	cmd.Execute()
}
