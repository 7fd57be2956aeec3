package scenery

import (
	"encoding/json"
	"io"
	"os"
)

// Record kinds used in JSON envelopes.
const (
	KindComment   = "comment"
	KindStructure = "structure"
	KindPerson    = "person"
)

// Envelope is one line of a JSONL placement log.
type Envelope struct {
	Kind      string     `json:"kind"`
	Comment   *Comment   `json:"comment,omitempty"`
	Structure *Structure `json:"structure,omitempty"`
	Person    *Person    `json:"person,omitempty"`
}

// JSONWriter prints one envelope per line.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter writes to out, or STDOUT when out is nil.
func NewJSONWriter(out io.Writer) *JSONWriter {
	if out == nil {
		out = os.Stdout
	}
	return &JSONWriter{enc: json.NewEncoder(out)}
}

func (w *JSONWriter) WriteComment(c Comment) error {
	return w.enc.Encode(Envelope{Kind: KindComment, Comment: &c})
}

func (w *JSONWriter) WriteStructure(s Structure) error {
	return w.enc.Encode(Envelope{Kind: KindStructure, Structure: &s})
}

func (w *JSONWriter) WritePerson(p Person) error {
	return w.enc.Encode(Envelope{Kind: KindPerson, Person: &p})
}

// FileWriter logs envelopes to a JSONL file.
type FileWriter struct {
	*JSONWriter
	f *os.File
}

// NewFileWriter creates (or truncates) path.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{JSONWriter: NewJSONWriter(f), f: f}, nil
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}

// MultiWriter fans records out to several writers, stopping at the first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a MultiWriter. Nil writers are skipped.
func NewMultiWriter(ws ...Writer) *MultiWriter {
	mw := &MultiWriter{}
	for _, w := range ws {
		if w != nil {
			mw.writers = append(mw.writers, w)
		}
	}
	return mw
}

func (mw *MultiWriter) WriteComment(c Comment) error {
	for _, w := range mw.writers {
		if err := w.WriteComment(c); err != nil {
			return err
		}
	}
	return nil
}

func (mw *MultiWriter) WriteStructure(s Structure) error {
	for _, w := range mw.writers {
		if err := w.WriteStructure(s); err != nil {
			return err
		}
	}
	return nil
}

func (mw *MultiWriter) WritePerson(p Person) error {
	for _, w := range mw.writers {
		if err := w.WritePerson(p); err != nil {
			return err
		}
	}
	return nil
}
