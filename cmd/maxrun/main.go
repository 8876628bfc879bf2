package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pi/bitrun"
	"go.uber.org/zap"
)

var examples = []uint32{
	0b0011_1111_0001_1111_1110_1111_1111_1100,
	0b0011_1011_0001_1110_1110_1110_1110_1111,
	0b0000_0110_0000_0000_0000_0000_0000_0000,
	0b0000_0000_0000_0000_0000_0000_0000_0000,
}

func run(w io.Writer, words []uint32) {
	for _, x := range words {
		n, s := bitrun.MaxRun(x)
		zap.L().Debug("Longest run found",
			zap.String("input", fmt.Sprintf("%032b", x)),
			zap.Int("length", n),
			zap.Int("start", s),
			zap.Stringer("run", bitrun.Run{Start: s, Len: n}))
		fmt.Fprintf(w, "Max continuous bit 1 count: %d\n", n)
		fmt.Fprintf(w, "Starting bit position: %d\n", s)
	}
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	run(os.Stdout, examples)
}
