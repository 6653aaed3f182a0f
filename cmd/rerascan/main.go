// Package main provides the entry point for the rerascan CLI.
package main

func main() {
	Execute()
}
