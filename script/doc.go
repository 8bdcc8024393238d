// Package script implements a small line-oriented command language which
// drives an etree.Tree[string, string]. It is used by etree-ctl to replay
// scenarios against the tree.
//
// Each line holds one command, fields are separated by white space:
//
//	insert <key> <value>   (alias: set)
//	find <key>             (alias: get)
//	delete <key>           (alias: del)
//	empty
//	len
//	expect <key> <value>   "-" as value expects the key to be absent
//	verify
//	print
//
// Blank lines and lines starting with '#' are ignored.
package script
