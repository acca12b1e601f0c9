// Package delete holds the main logic for delete commands.
package delete //nolint:predeclared

type accountRemover interface {
	Remove(name string) error
}

// Confirmer asks the user to confirm an action.
type Confirmer interface {
	Confirm(message string) (bool, error)
}
