package gdialog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenFile asks for a wheel definition and reads it.
func OpenFile(title string) (Result, error) {
	path, err := dialog.File().
		Title(title).
		Filter("Wheel files", "json", "toml", "yaml", "yml").
		Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}

// Cancelled reports whether err only means the user closed the dialog.
func Cancelled(err error) bool {
	return errors.Is(err, dialog.ErrCancelled)
}

// Announce shows the winner in a blocking info box.
func Announce(title, format string, args ...interface{}) {
	dialog.Message(format, args...).Title(title).Info()
}

// Fail shows an error box.
func Fail(title string, err error) {
	dialog.Message("%s", fmt.Sprint(err)).Title(title).Error()
}
