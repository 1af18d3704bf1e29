// SPDX-License-Identifier: MIT

package playback

import (
	"slices"
	"sync"

	"github.com/katalvlaran/algoviz/step"
)

// Recorder is a Sink that keeps every frame. It is safe for concurrent use.
type Recorder[S any] struct {
	mu     sync.Mutex
	frames []Frame[S]
}

// Record appends f. Use rec.Record as a Sink.
func (r *Recorder[S]) Record(f Frame[S]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)

	return nil
}

// Frames returns a copy of the recorded frames. States are shared with the
// recording, which never mutates them.
func (r *Recorder[S]) Frames() []Frame[S] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.frames)
}

// Len returns the number of recorded frames.
func (r *Recorder[S]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.frames)
}

// Tee returns a Sink that records f and then forwards it to next.
func (r *Recorder[S]) Tee(next Sink[S]) Sink[S] {
	return func(f Frame[S]) error {
		if err := r.Record(f); err != nil {
			return err
		}

		return next(f)
	}
}

// Replay turns recorded frames back into a Source. Unlike engine sequences
// it can be ranged any number of times; Snapshot returns the state of the
// frame most recently yielded.
func Replay[S any](name string, frames []Frame[S]) Source[S] {
	frames = slices.Clone(frames)
	var cur S

	return Source[S]{
		Name: name,
		Steps: func(yield func(step.Step) bool) {
			for _, f := range frames {
				cur = f.State
				if !yield(f.Step) {
					return
				}
			}
		},
		Snapshot: func() S { return cur },
	}
}
