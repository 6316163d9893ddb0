/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Entry point for the shiftcipher command-line tool.
*/

package main

import (
	"os"

	"github.com/kleascm/shiftcipher/cmd/shiftcipher/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
