package gclipboard

import "github.com/atotto/clipboard"

// Supported is false on systems without a clipboard tool (xclip, xsel, wl-copy).
func Supported() bool {
	return !clipboard.Unsupported
}

func WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
