//go:build unix

// Command ringcat copies standard input to standard output through a
// fixed-capacity byte deque, reading with read(2) straight into the ring.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/lucasgdosr/ringdeque"
	"github.com/lucasgdosr/ringdeque/fdio"
)

func main() {
	capacity := flag.Int("cap", 4096, "ring capacity in bytes")
	chunk := flag.Int("chunk", 1024, "maximum bytes per write")
	verbose := flag.Bool("v", false, "log the number of bytes copied")
	flag.Parse()

	if *chunk <= 0 {
		log.Fatalf("invalid -chunk %d", *chunk)
	}
	if *capacity == 0 {
		log.Fatalf("invalid -cap 0")
	}
	ring, err := ringdeque.MakeDequeWithCapacity[byte](*capacity)
	if err != nil {
		log.Fatalf("failed to create ring: %v", err)
	}

	total, err := copyThrough(os.Stdout, fdio.NewReader(int(os.Stdin.Fd())), ring, make([]byte, *chunk))
	if err != nil {
		log.Fatalf("copy failed after %d bytes: %v", total, err)
	}
	if *verbose {
		log.Printf("copied %d bytes", total)
	}
}

// copyThrough fills ring from src and drains it to dst in chunks of at most
// len(buf) bytes until src reports io.EOF.
func copyThrough(dst io.Writer, src ringdeque.Reader[byte], ring *ringdeque.ByteDeque, buf []byte) (int64, error) {
	var total int64
	for {
		_, rerr := ring.FillFrom(src)
		for !ring.Empty() {
			n := ring.CopyInto(buf, 0)
			w, err := dst.Write(buf[:n])
			total += int64(w)
			if err != nil {
				return total, err
			}
			if err := ring.RemoveHead(w); err != nil {
				return total, err
			}
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, rerr
		}
	}
}
