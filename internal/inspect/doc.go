// Package inspect provides identity search and tree materialization over
// the registry's committed render trees.
//
// Queries re-resolve their root from the store on every range, so each
// search sees the latest commit. Matching uses raw identity on the
// element type, never display labels; FindByLabel exists solely for the
// interactive UI's substring search.
package inspect
