package main

import "github.com/bryanchriswhite/swaybar-helper/cmd/swaybar-helper/commands"

func main() {
	commands.Execute()
}
