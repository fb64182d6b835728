// Package store caches generated graphs in an embedded BadgerDB so a
// benchmark sweep can be replayed on identical inputs without regenerating
// them.
//
// Keys have the form "graph/<n>/<p‰>/<seed>". Values are a big-endian
// CRC-32 of the payload followed by the payload itself: a JSON graph record
// compressed with snappy.
//
// A Store is safe for concurrent use.
package store
