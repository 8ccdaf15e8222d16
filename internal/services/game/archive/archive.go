// Package archive writes and reads recap archives: one JSON line per finished
// game, zstd compressed.
package archive

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

// maxLine bounds one decoded recap line.
const maxLine = 8 << 20

// RecapLister lists finished games.
type RecapLister interface {
	ListTerminatedGames(ctx context.Context) ([]game.Recap, error)
}

// Writer appends recaps to a compressed JSON lines stream.
type Writer struct {
	enc   *zstd.Encoder
	buf   *bufio.Writer
	count int
}

// NewWriter compresses into w. Close must be called to flush the frame.
func NewWriter(w io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	return &Writer{enc: enc, buf: bufio.NewWriterSize(enc, 64*1024)}, nil
}

// Write appends one recap.
func (w *Writer) Write(recap game.Recap) error {
	b, err := json.Marshal(recap)
	if err != nil {
		return fmt.Errorf("marshal recap %s: %w", recap.GameID, err)
	}
	if _, err := w.buf.Write(b); err != nil {
		return err
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count reports how many recaps were written.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes and finishes the compressed stream. The underlying writer is
// left open.
func (w *Writer) Close() error {
	flushErr := w.buf.Flush()
	closeErr := w.enc.Close()
	return errors.Join(flushErr, closeErr)
}

// Export writes every finished game from lister to w and returns the count.
func Export(ctx context.Context, lister RecapLister, w io.Writer) (int, error) {
	recaps, err := lister.ListTerminatedGames(ctx)
	if err != nil {
		return 0, fmt.Errorf("list recaps: %w", err)
	}
	aw, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	for _, recap := range recaps {
		if err := ctx.Err(); err != nil {
			_ = aw.Close()
			return aw.Count(), err
		}
		if err := aw.Write(recap); err != nil {
			_ = aw.Close()
			return aw.Count(), err
		}
	}
	if err := aw.Close(); err != nil {
		return aw.Count(), fmt.Errorf("finish archive: %w", err)
	}
	return aw.Count(), nil
}

// Read decodes every recap from a compressed archive, calling fn in order.
func Read(r io.Reader, fn func(game.Recap) error) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("create zstd decoder: %w", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var recap game.Recap
		if err := json.Unmarshal(sc.Bytes(), &recap); err != nil {
			return fmt.Errorf("line %d: unmarshal: %w", line, err)
		}
		if err := fn(recap); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read archive: %w", err)
	}
	return nil
}

// ReadAll decodes an entire archive.
func ReadAll(r io.Reader) ([]game.Recap, error) {
	var out []game.Recap
	err := Read(r, func(recap game.Recap) error {
		out = append(out, recap)
		return nil
	})
	return out, err
}
