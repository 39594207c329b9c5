// Package work provides concrete tasks and the life-cycle state they share.
//
// Base tracks running/success/progress for one run at a time and is embedded
// by every task in this module, including collection.Collection. Func wraps a
// plain Go function; Lua runs a script with gopher-lua.
package work
