package services

import (
	"fmt"
	"strings"
)

// Copy puts value on the clipboard and tells the user which field was
// copied.
func Copy(cb Clipboard, n Notifier, label, value string) error {
	if value == "" {
		err := fmt.Errorf("%s is empty", strings.ToLower(label))
		n.Error(errorTitle, Message(err, "Nothing to copy"))
		return err
	}
	if err := cb.Copy(value); err != nil {
		n.Error(errorTitle, Message(err, "Failed to copy to clipboard"))
		return err
	}
	n.Success("Copied to clipboard", label+" has been copied to your clipboard.")
	return nil
}

// Mask hides a secret value unless revealed.
func Mask(value string, reveal bool) string {
	if reveal {
		return value
	}
	return strings.Repeat("•", 12)
}
