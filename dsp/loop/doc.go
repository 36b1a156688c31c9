// Package loop provides a fixed-capacity circular sample buffer for looper
// applications.
//
// A [Buffer] records a live input stream with [Buffer.Write], growing its
// logical loop length until it saturates at capacity, and plays the recorded
// region back through several read policies:
//
//   - [Buffer.Read]:           plain loop playback
//   - [Buffer.ReadOnce]:       one-shot playback, silence after the loop end
//   - [Buffer.ReadClipped]:    sub-loop confined to the start of the loop
//   - [Buffer.ReadWindowed]:   sub-loop with a movable start offset
//   - [Buffer.ReadRandomized]: windowed playback with per-traversal
//     randomization of start and length
//   - [Buffer.ReadVariSpeed]:  randomized window with variable playback
//     speed and linear interpolation
//   - [Buffer.ReadSpeed]:      variable-speed loop playback
//
// [Buffer.Splice] and [Buffer.SpliceRange] apply in-place linear crossfade
// ramps near the loop boundaries to mask the click of an imperfect loop
// point.
//
// All per-sample operations are O(1) and allocation-free. A Buffer is not
// safe for concurrent use; confine all calls to a single audio callback.
package loop
