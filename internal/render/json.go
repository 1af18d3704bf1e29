// SPDX-License-Identifier: MIT

package render

import (
	"io"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/step"
)

// Event is the JSON form of one frame's step.
type Event struct {
	Seq    int      `json:"seq"`
	Kind   string   `json:"kind"`
	Row    *int     `json:"row,omitempty"`
	Col    *int     `json:"col,omitempty"`
	I      int      `json:"i"`
	J      int      `json:"j"`
	Value  int      `json:"value"`
	Buffer string   `json:"buffer,omitempty"`
	Path   [][2]int `json:"path,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// NewEvent converts a step at position seq.
func NewEvent(seq int, s step.Step) Event {
	ev := Event{Seq: seq, Kind: s.Kind.String(), I: s.I, J: s.J, Value: s.Value}
	if cellStep(s.Kind) {
		row, col := s.Cell.Row, s.Cell.Col
		ev.Row, ev.Col = &row, &col
	}
	if s.Kind == step.KindOverwrite {
		ev.Buffer = s.Buffer.String()
	}
	for _, c := range s.Path() {
		ev.Path = append(ev.Path, [2]int{c.Row, c.Col})
	}
	if s.Err != nil {
		ev.Error = s.Err.Error()
	}

	return ev
}

// JSONSink writes one JSON object per frame to w, newline separated.
// Frame states are not encoded.
func JSONSink[S any](w io.Writer) playback.Sink[S] {
	return func(f playback.Frame[S]) error {
		b, err := sonic.Marshal(NewEvent(f.Seq, f.Step))
		if err != nil {
			return err
		}
		b = append(b, '\n')
		_, err = w.Write(b)

		return err
	}
}
