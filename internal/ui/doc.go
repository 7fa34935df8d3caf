// Package ui implements the interactive peer manager on Bubble Tea.
//
// Core pieces:
//   - SelectableList: an ordered collection with an optional cursor
//   - FieldForm: the editable Name/Address/Public Key form
//   - Modal: the create, edit and delete dialogs (nil when none is open)
//   - FocusManager: rotates focus between the peer table and the log list
//   - AppModel: the root model that routes every key and applies provider writes
//
// Rendering is a pure projection of AppModel: ComputeLayout splits the screen
// and View paints fresh widgets into it on every frame.
package ui
