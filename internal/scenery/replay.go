package scenery

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrBadEnvelope is returned by Replay for lines without a known payload.
var ErrBadEnvelope = errors.New("malformed scenery envelope")

// Replay re-emits the envelopes of a JSONL placement log through writer.
func Replay(r io.Reader, writer Writer) error {
	dec := json.NewDecoder(r)
	for n := 1; ; n++ {
		var e Envelope
		if err := dec.Decode(&e); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("record %d: %w", n, err)
		}
		var err error
		switch {
		case e.Kind == KindComment && e.Comment != nil:
			err = writer.WriteComment(*e.Comment)
		case e.Kind == KindStructure && e.Structure != nil:
			err = writer.WriteStructure(*e.Structure)
		case e.Kind == KindPerson && e.Person != nil:
			err = writer.WritePerson(*e.Person)
		default:
			err = fmt.Errorf("record %d (%q): %w", n, e.Kind, ErrBadEnvelope)
		}
		if err != nil {
			return err
		}
	}
}

// ReplayFile opens path and replays it.
func ReplayFile(path string, writer Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Replay(f, writer)
}
