// Package snapshot renders and persists a core.View.
//
// Two fixed-width text tables describe the full state:
//
//	cities.txt   Index(8) City_Name(20)
//	roads.txt    Nbr(5)   Road(25)      Budget(10)
//
// Columns are left-justified and padded, never truncated. Road rows follow
// core.View.Roads: upper triangle, row-major, numbered from 1 on every write.
//
// A Sink persists a View. FileSink rewrites both text files, SQLiteSink mirrors
// the same rows into a SQLite database, and Multi fans a View out to several
// sinks at once. Every save is a full-state overwrite.
package snapshot
