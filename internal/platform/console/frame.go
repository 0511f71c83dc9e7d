package console

import (
	"bufio"
	"io"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// spacerLines is the number of blank lines printed before each frame to
// push the previous one out of view.
const spacerLines = 31

// GameOverMessage is printed once when the snake runs into itself.
const GameOverMessage = "GAME OVER"

var spacer = strings.Repeat("\n", spacerLines)

// WriteFrame writes the spacer and then every screen row on its own line.
func WriteFrame(w io.Writer, s *core.Screen) error {
	bw := bufio.NewWriterSize(w, spacerLines+s.Rows()*(s.Cols()+1))
	if _, err := bw.WriteString(spacer); err != nil {
		return err
	}
	for row := 0; row < s.Rows(); row++ {
		if _, err := bw.WriteString(s.Row(row)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
