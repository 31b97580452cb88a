// Package gxserialprobe checks a serial link end to end. It sends a known
// payload over a port while concurrently receiving what the remote end echoes
// back, verifies the echo byte for byte and measures the achieved bitrate.
//
// Features
//
//   - Offset tracking framer: whatever arrived in one readiness event becomes
//     one Frame tagged with its cumulative stream offset.
//   - Verifier: compares frames with the expected payload, localizes the first
//     differing byte of each frame and searches the payload for the frame to
//     report the skew. Bytes past the expected end are reported as overrun.
//   - Probe: runs the writer and the reader concurrently over one connection
//     split into a receive half and a send half.
//   - GXSerial: raw mode serial port (Linux, macOS) implementing Conn.
//   - Localized diagnostics through golang.org/x/text/message.
//
// # Construction
//
//	media := gxserialprobe.NewGXSerial("/dev/ttyUSB0", gxcommon.BaudRate(115200), 8, gxcommon.ParityNone, gxcommon.StopBitsOne)
//	if err := media.Open(); err != nil {
//	    // handle connect error
//	}
//	defer media.Close()
//
//	probe := gxserialprobe.NewProbe(gxserialprobe.Options{Size: 2000, Logger: log})
//	res, err := probe.Run(ctx, media)
//
// # Matching policy
//
// The resynchronization search looks for the first verbatim occurrence of the
// whole mismatched frame, scanning the expected payload from position zero.
// Shorter partial matches are not considered.
//
// # Errors
//
// Transport failures are fatal and returned wrapped in ErrTransport.
// Verification mismatches are not errors; they are reported through the
// Observer and collected in Result.Report.
package gxserialprobe
