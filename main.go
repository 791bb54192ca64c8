package main

import "github.com/mouse-blink/impactplan/cmd"

func main() {
	cmd.Execute()
}
