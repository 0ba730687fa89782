// Package designer owns the element list of a form under construction. Store
// keeps the ordered instances and the selection; Session layers drops,
// property edits and persistence on top of a Store.
//
// Neither type is safe for concurrent use. Each designer surface owns one
// Session and drives it from a single goroutine.
package designer
