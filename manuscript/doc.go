// Package manuscript implements the pure document model for genko.
//
// A Document is a sequence of pages sharing one geometry of Cols x Rows
// cells. Cells are addressed linearly (offset = row*Cols + col). Each row
// also owns one overflow slot, rendered past the right edge, that holds a
// punctuation mark which may not start the following line (kinsoku).
//
// State wraps a Document with the editing cursor, the current page and the
// in-progress composition. State.Apply is the only transition function;
// every value it returns is an independent snapshot.
package manuscript
