package main

import (
	"github.com/0wafi0/ng-snake/cmd/snake/commands"
)

func main() {
	commands.Execute()
}
