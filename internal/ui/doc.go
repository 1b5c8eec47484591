// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for prompt-driven playlist creation:
//  1. [PromptView] : Enter a natural-language prompt
//  2. [GeneratingView] : Spinner while the backend generates a preview
//  3. [PreviewView] : Browse the generated tracks before saving
//  4. [ConfirmView] : Name the playlist and confirm creation
//  5. [CreatingView] : Spinner while the playlist is persisted
//  6. [ResultView] : Display the created playlist or the failure notice
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Workflow notifications are rendered from a shared [notify.Recorder], so the
// TUI shows exactly what the generation and creation workflows emit.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
