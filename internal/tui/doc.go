// Package tui renders the animated screens of the client with bubbletea:
// the gacha reveal and the live boss raid view. Timers from the view-state
// packages are routed onto the program's event loop through Scheduler.
package tui
