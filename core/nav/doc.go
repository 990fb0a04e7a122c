// Package nav is the directional focus navigation engine for a ten-foot UI:
// five inputs (up/down/left/right/select) plus back, no pointer.
//
// Allowed here:
// - the focusable registry, group table, trap, history, and engine state machine
// - the spatial nearest-candidate resolver
// - the key-signal dispatcher that serializes input into engine calls
//
// Not allowed here:
// - rendering, styling, or layout computation (widgets and ui own those)
// - content, playback, or recommendation logic
package nav
