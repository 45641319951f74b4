package main

import "confetti/internal/confetti"

func main() {
	confetti.RunDesktop()
}
