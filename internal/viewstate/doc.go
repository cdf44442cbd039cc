// Package viewstate groups the renderer-independent state behind the
// terminal views: HP deltas, the gacha reveal, radar geometry, paging,
// progress bars and notices. Subpackages never draw anything.
package viewstate
