package configs

import (
	"io"
	"os"

	kitlog "github.com/go-kit/log"
)

// NewLogger membuat logger logfmt dengan timestamp + caller.
// Dipakai oleh gateway, service, dan scheduler.
func NewLogger(w io.Writer) kitlog.Logger {
	if w == nil {
		w = os.Stdout
	}
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	return kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.DefaultCaller)
}
