// Package fstree builds an in-memory tree of a file-system subtree.
//
// A tree is made of two node kinds: File, a leaf carrying the size read at
// construction, and Directory, which owns an ordered list of children and
// accumulates their sizes as they are attached. Behaviour is added to a tree
// through the Visitor interface; nodes never need to change for a new
// kind of processing.
//
// Two builders produce trees:
//   - IgnoringBuilder never follows symbolic links and leaves them out of
//     the tree altogether.
//   - FollowingBuilder traverses symbolic links as if they were their
//     targets and guards against cycles with a per-call set of canonical
//     paths, so every location is materialised at most once.
//
// Trees are built once, processed once and discarded. They are not safe for
// concurrent mutation.
package fstree
