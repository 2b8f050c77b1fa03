// Package source provides restartable, lazily evaluated position sources for scans.
//
// A Source is a factory of position sequences: every call to Cursor (or every range over Seq)
// starts an independent replay from the first position, leaving other cursors untouched. This is
// what lets a scan be dry-run, inspected for statistics and then executed with identical positions.
//
// Sources may be finite (Range, Values, Linspace, Points) or infinite (Count, Func). Sequences
// that can only be consumed once, such as readings from a channel, are made replayable with
// Replay, which records each value the first time it is pulled.
//
// Sources are assumed to be free of side effects with respect to replay: pulling the same index
// twice from two cursors must give the same position.
package source
