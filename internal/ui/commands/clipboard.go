package commands

import "github.com/atotto/clipboard"

// Clipboard writes text to a clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the operating system clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
