// Package logger is the structured logging facade of the tabkit command line
// tool. It wraps a zap SugaredLogger behind package-level, context-first
// functions, keeps the level in an atomic so it can change after flags are
// parsed, and lets callers attach fields or a name to a context.
package logger
