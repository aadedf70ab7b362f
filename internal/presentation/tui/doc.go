/*
Package tui contains the interactive terminal presentation: the bubbletea
widget hosting a session, the typewriter intro, the glamour renderer used by
the read command, and the startup banner.
*/
package tui
