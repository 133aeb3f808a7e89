// Package cli implements the interactive GophDrive terminal client: a
// read–eval–print loop over the api.Gateway surface. The CLI holds only
// per-view state (the last dashboard snapshot, the current user) and
// re-fetches the dashboard after every mutation instead of patching local
// state.
package cli
