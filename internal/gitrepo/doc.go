// Package gitrepo queries git repository state through the shell executor.
//
// TrackedFileLister enumerates the paths recorded in the HEAD tree and turns
// any git diagnostic into a ListingError.
package gitrepo
