package main

import "github.com/alexiusacademia/goearth/cmd"

func main() {
	cmd.Execute()
}
