package readfile

import (
	"log/slog"

	"github.com/folkevil/textfairy/decode"
)

// Default returns a Reader wired to the real decode/load collaborators
// and the process-wide slog logger.
func Default() *Reader {
	codec := decode.NewCodec()
	return New(codec, codec, slog.Default())
}
