package main

import "github.com/ChrisChrisLoLo/keyberon/cmd/keyscan-monitor/cmd"

func main() {
	cmd.Execute()
}
