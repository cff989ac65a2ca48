package main

import "github.com/harisfebriyan12/kehadiran1/cmd"

func main() {
	cmd.Execute()
}
