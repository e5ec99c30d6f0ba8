// Package testutil provides helpers shared by syncinstall tests.
//
// Key components:
//   - Error assertions that inspect SyncError codes along the wrap chain
//   - Command assertions comparing a plan's output with display strings
//   - RecordingRunner: a command runner that records instead of spawning
//   - MemFS: an afero-backed read-only filesystem seeded inline
//   - DefaultHandlers: the stock cargo, pixi and git handler set
package testutil
