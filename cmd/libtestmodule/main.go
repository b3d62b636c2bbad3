package main

// main is required for -buildmode=c-shared and never runs.
func main() {}
