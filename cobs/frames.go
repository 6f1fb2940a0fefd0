package cobs

import (
	"bytes"
)

// FrameBuilder makes it easier to build up the content of individual
// payloads, which are then written into a buffer as a sequence of terminated
// COBS frames.  To build up the content of an individual payload, just use
// the FrameBuilder as a bytes.Buffer.  Once a payload is done, call
// FinishFrame.  Once you are done with all payloads, call Encode to get the
// encoded representation of everything.
type FrameBuilder struct {
	bytes.Buffer
	start        int
	frameIndices []index
}

type index struct {
	start, end int
}

// FinishFrame indicates that you have finished constructing an individual
// payload.  We don't actually encode the payload until you call Encode, when
// we encode _all_ of the payloads that you add to the builder.
func (fb *FrameBuilder) FinishFrame() {
	end := fb.Len()
	fb.frameIndices = append(fb.frameIndices, index{fb.start, end})
	fb.start = end
}

// Encode encodes all of the payloads in this builder into an output buffer,
// each as a complete terminated frame.  It fails with InvalidArgument if any
// finished payload is empty, since the empty payload has no COBS encoding.
func (fb *FrameBuilder) Encode(dst *bytes.Buffer) error {
	payloads := fb.Bytes()
	for _, index := range fb.frameIndices {
		payload := payloads[index.start:index.end]
		if err := EncodeFrame(payload, dst); err != nil {
			return err
		}
	}
	return nil
}
