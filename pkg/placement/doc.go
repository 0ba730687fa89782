// Package placement turns a drag source and a drop target into a list
// mutation. Resolution is pure: it reads the current element list and returns
// a Mutation that callers apply to their store.
package placement
