//go:build !unix && !windows

package main

func handleBrokenPipe() {}

func isBrokenPipe(error) bool { return false }
