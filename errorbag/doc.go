// Package errorbag provides Bag, an accumulating error value that holds
// zero or more error codes, each with an ordered list of messages and at
// most one data payload.
//
// A function that can fail richly returns either its success value or a
// *Bag, and callers test the result with IsError before using it:
//
//	b := errorbag.NewWith(errorbag.CodeOf(400), "name is required")
//	b.Add("400", "email is malformed")
//	b.AddDataFor("400", fields)
//
// Codes keep their insertion order, and so do the messages under each code.
// A Bag is not safe for concurrent mutation; it is meant to be built by one
// owner and then handed off.
package errorbag
