// Package readfile converts heterogeneous image inputs into the canonical
// pixbuf.PixelBuffer representation used by the rest of the pipeline.
//
// Four kinds of input are supported: encoded byte streams (JPEG, PNG, BMP,
// and the other registered formats), raw 8-bit grayscale pixel buffers,
// filesystem paths / URLs, and already-decoded NRGBA bitmaps. All of them
// converge on a freshly allocated PixelBuffer that the caller owns outright;
// no converter retains a reference to its input or its output.
//
// # Failure Policy
//
// The package distinguishes three failure classes:
//
//   - Caller mistakes (nil buffers, non-positive dimensions, size
//     mismatches) are returned as errors wrapping ErrInvalidArgument. These
//     indicate a bug in the calling code and are never masked.
//   - Environmental failures (missing files, undecodable bytes, unsupported
//     bitmap layouts, absent input) are expected when inputs come from
//     disk, network, or user uploads. They are logged at warning level and
//     reported as a nil buffer with no error — the "nothing produced"
//     outcome. The untrusted read paths never return an error.
//   - Internal failures (an allocation or copy that cannot have been caused
//     by the arguments) wrap ErrInternal so callers can tell "bad input"
//     apart from "the conversion layer broke".
//
// # Ownership and Concurrency
//
// Every successful conversion produces a buffer with independent storage;
// converting the same input twice yields equal content in distinct memory.
// Conversions are stateless and may run concurrently. The one exception is
// ReplaceGray8, which mutates a caller-supplied buffer in place and must
// not race with any other reader or writer of that buffer.
//
// Decoded bitmaps obtained from the Decoder and Loader collaborators are
// transient: their pixels are copied into the result and the bitmap is
// dropped before the conversion returns, on success and failure alike.
package readfile
