/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/neocontrole/authserver/cmd"

func main() {
	cmd.Execute()
}
