// Package widgets holds the lipgloss rendering primitives for the ten-foot
// shell: poster tiles, shelf rows, the menu rail, and the modal overlay.
// Nothing in here knows about focus resolution; callers pass highlight state
// in explicitly.
package widgets
