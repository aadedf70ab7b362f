/*
Package registry holds the closed vocabulary of the portfolio shell.

A Registry is built once from an ordered list of commands and never changes
afterwards. Order matters: it drives the help listing and decides which
suggestion wins on Tab completion.
*/
package registry
