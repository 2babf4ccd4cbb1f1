package flatbin

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// Width returns the element width in bytes used for F.
func Width[F core.Float]() int {
	if core.PrecisionBits[F]() == 24 {
		return 4
	}
	return 8
}

// WriteRecord writes the selected header fields followed by each payload in
// order, all at F's width.
func WriteRecord[F core.Float](w io.Writer, fields []Field, h Header, payloads ...[]F) error {
	head := make([]F, len(fields))
	for i, f := range fields {
		head[i] = F(h.Value(f))
	}
	if len(head) > 0 {
		if err := binary.Write(w, binary.LittleEndian, head); err != nil {
			return fmt.Errorf("flatbin: write header: %w", err)
		}
	}
	for _, p := range payloads {
		if len(p) == 0 {
			continue
		}
		if err := binary.Write(w, binary.LittleEndian, p); err != nil {
			return fmt.Errorf("flatbin: write payload: %w", err)
		}
	}
	return nil
}

// WriteSamples writes a bare payload without header.
func WriteSamples[F core.Float](w io.Writer, samples []F) error {
	return WriteRecord(w, nil, Header{}, samples)
}

// WriteFile creates path and writes one record to it.
func WriteFile[F core.Float](path string, fields []Field, h Header, payloads ...[]F) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("flatbin: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("flatbin: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteRecord(bw, fields, h, payloads...); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flatbin: %w", err)
	}
	return nil
}

// ReadSamples reads r to the end as elements of width bytes and converts
// them to F. Widths other than 4 and 8 fail with ErrUnsupportedPrecision.
func ReadSamples[F core.Float](r io.Reader, width int) ([]F, error) {
	if width != 4 && width != 8 {
		return nil, fmt.Errorf("flatbin: %w: element width %d", core.ErrUnsupportedPrecision, width)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("flatbin: %w", err)
	}
	if len(raw)%width != 0 {
		return nil, fmt.Errorf("flatbin: %w: %d bytes is not a multiple of %d",
			core.ErrInsufficientData, len(raw), width)
	}

	out := make([]F, len(raw)/width)
	for i := range out {
		b := raw[i*width:]
		if width == 4 {
			out[i] = F(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		} else {
			out[i] = F(math.Float64frombits(binary.LittleEndian.Uint64(b)))
		}
	}
	return out, nil
}

// ReadFile reads every element of path at the given width.
func ReadFile[F core.Float](path string, width int) ([]F, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flatbin: %w", err)
	}
	defer f.Close()
	return ReadSamples[F](bufio.NewReader(f), width)
}

// ReadRecord reads a record written with fields, returning the header and
// the remaining elements as payload.
func ReadRecord[F core.Float](r io.Reader, fields []Field) (Header, []F, error) {
	values, err := ReadSamples[F](r, Width[F]())
	if err != nil {
		return Header{}, nil, err
	}
	if len(values) < len(fields) {
		return Header{}, nil, fmt.Errorf("flatbin: %w: %d values for %d header fields",
			core.ErrInsufficientData, len(values), len(fields))
	}

	var h Header
	for i, f := range fields {
		v := float64(values[i])
		switch f {
		case FieldSampleRate:
			h.SampleRate = v
		case FieldResolution:
			h.Resolution = v
		case FieldS1:
			h.S1 = v
		case FieldS2:
			h.S2 = v
		case FieldNENBW:
			h.NENBW = v
		case FieldENBW:
			h.ENBW = v
		}
	}
	return h, values[len(fields):], nil
}
