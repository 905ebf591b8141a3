package main

import "github.com/microaeris/ledmix/internal/cmd"

func main() {
	cmd.Execute()
}
