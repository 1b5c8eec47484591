// Package workflows implements the client-side controllers driving AI playlist
// generation and playlist creation.
//
// # Generation Workflow
//
// [GenerationWorkflow] drives the idle → generating → preview cycle:
//
//   - an entitlement guard short-circuits before any network call when the
//     account is not on a Pro plan
//   - the state moves to generating synchronously before the request is sent
//   - every failure path resolves to exactly one error notification and a
//     transition back to idle; a stored preview survives failed attempts
//   - success stores the preview wholesale, emitting a warning first when the
//     generated count is below the recommended minimum
//
// [GenerationWorkflow.IsGenerating] and [GenerationWorkflow.IsPreviewing] are
// pure projections of the state enum; they carry no independent state.
//
// # Creation Workflow
//
// [CreationWorkflow] wraps an injected persistence operation, holding
// [CreationWorkflow.IsCreating] true for exactly the duration of the attempt.
// Faults from the injected operation (including panics) never propagate:
// they resolve to an error notification and a nil result, and the creating
// flag is reset as the last observable step.
//
// # Overlapping calls
//
// A second call issued while a prior one is still pending on the same
// workflow instance is rejected with [shared.ErrOperationPending], without
// emitting notifications or state transitions.
//
// Both workflows report outcomes through an injected [notify.Notifier],
// keeping them headless for CLI, TUI, and test consumers.
package workflows
