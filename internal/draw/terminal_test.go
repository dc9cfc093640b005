package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestChunkWriterOffsets(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "Score: 0")
	if out.Len() != 0 {
		t.Fatal("ChunkWriter wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := out.String(); got != "\033[3;4HScore: 0" {
		t.Fatalf("output = %q", got)
	}
}

func TestChunkWriterCentered(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	if col := cw.WriteCentered(10, 2, "Game Over"); col != 6 {
		t.Fatalf("start col = %d, want 6", col)
	}
	cw.ClearScreen()
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := out.String(); got != "\033[2;6HGame Over"+seqClearScreen {
		t.Fatalf("output = %q", got)
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	big := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteString(big)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.String() != big {
		t.Fatalf("flushed %d bytes, want %d", out.Len(), len(big))
	}
}
