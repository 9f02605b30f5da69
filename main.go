package main

import "github.com/maiquockhanh06/Timeflow-app/cmd"

func main() {
	cmd.Execute()
}
