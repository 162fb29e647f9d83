/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/feltwork/hearts/cmd"

func main() {
	cmd.Execute()
}
