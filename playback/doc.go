// SPDX-License-Identifier: MIT

// Package playback paces engine step sequences, snapshots the model after
// every step and lets a caller stop a run between steps.
//
// A Source bundles a step sequence with a Snapshot function that deep-copies
// the model the sequence mutates. Play ranges the sequence on the calling
// goroutine and hands every step to a sink as a Frame carrying that copy;
// Start does the same on a new goroutine and exposes the frames through a
// channel.
//
// A Controller owns the run state. It admits one run at a time: a second
// Play or Start while a run is active fails with ErrBusy and leaves the
// active run untouched. Cancellation (Controller.Cancel, Stream.Cancel or
// the caller's context) is observed after every delivered frame and during
// the inter-step delay, so the model is left exactly as described by the
// last delivered frame.
//
// Controllers log through log/slog and count runs, steps and rejections with
// Prometheus collectors registered on a caller-supplied Registerer.
package playback
