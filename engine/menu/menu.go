// Package menu wraps native file and message dialogs for the viewer.
// Dialogs block, so callers invoke them from the main thread between
// frames and stage the result for the render loop.
package menu

import (
	"errors"

	"github.com/sqweek/dialog"
)

// ErrCancelled is returned when the user dismisses a dialog without
// choosing anything.
var ErrCancelled = errors.New("dialog cancelled")

// OpenMeshDialog shows a native file-open dialog filtered to mesh files.
//
// Returns:
//   - string: the selected path
//   - error: ErrCancelled if dismissed, or a platform error
func OpenMeshDialog() (string, error) {
	path, err := dialog.File().
		Filter("OBJ meshes", "obj").
		Filter("All files", "*").
		Title("Open Mesh").
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", ErrCancelled
		}
		return "", err
	}
	return path, nil
}

// SaveConfigDialog shows a native file-save dialog for the config file.
//
// Returns:
//   - string: the selected path
//   - error: ErrCancelled if dismissed, or a platform error
func SaveConfigDialog() (string, error) {
	path, err := dialog.File().
		Filter("YAML config", "yaml").
		Title("Save Settings").
		Save()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", ErrCancelled
		}
		return "", err
	}
	return path, nil
}

// ShowError presents a modal error message.
//
// Parameters:
//   - title: the dialog title
//   - message: the message body
func ShowError(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}
