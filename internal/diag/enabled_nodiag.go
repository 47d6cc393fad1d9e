//go:build nodiag

package diag

const CompiledIn = false
