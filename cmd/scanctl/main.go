// Package main is the entry point for the scanctl command-line tool.
package main

func main() {
	Execute()
}
