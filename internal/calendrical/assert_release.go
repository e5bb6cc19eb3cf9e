//go:build !calendardebug

package calendrical

const debugChecks = false
