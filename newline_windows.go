//go:build windows

package tabkit

// Newline terminates every line of delimited text.
const Newline = "\r\n"
