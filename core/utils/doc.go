// Package utils provides small helpers shared by the HTTP handlers and commands,
// such as query parameter parsing.
package utils
