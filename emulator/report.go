package emulator

import (
	"log"
)

// Reporter receives the non-fatal diagnostics raised while stepping.
type Reporter interface {
	// Report is called with the address of the instruction and the
	// diagnostic it raised.
	Report(ip uint16, err error)
}

// LogReporter reports diagnostics to the standard logger.
type LogReporter struct{}

var _ Reporter = LogReporter{}

func (LogReporter) Report(ip uint16, err error) {
	log.Printf("dcpu: 0x%04x: %v", ip, err)
}
