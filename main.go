package main

import "github.com/eZtaR1/ticktick-to-todoist/cmd"

func main() {
	cmd.Execute()
}
