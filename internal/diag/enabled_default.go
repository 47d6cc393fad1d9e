//go:build !nodiag

package diag

// CompiledIn 为 false 时（-tags nodiag）所有守卫只执行被包裹的操作。
const CompiledIn = true
