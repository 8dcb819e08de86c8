package main

import "github.com/pfrederiksen/hoops-pbp/internal/cli"

func main() {
	cli.Execute()
}
