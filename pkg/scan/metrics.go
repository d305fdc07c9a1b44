package scan

import (
	"sync/atomic"

	"github.com/johnhelf/folder-insight/pkg/plog"
)

// Metrics collects counters for a scan. Implementations must be safe for
// concurrent use.
type Metrics interface {
	AddDirsScanned(n int64)
	AddFilesScanned(n int64)
	AddBytesScanned(n int64)
	AddEntriesSkipped(n int64)
	AddBranchFaults(n int64)
	Log()
}

// ScanMetrics is the default Metrics implementation backed by atomic
// counters.
type ScanMetrics struct {
	dirsScanned    atomic.Int64
	filesScanned   atomic.Int64
	bytesScanned   atomic.Int64
	entriesSkipped atomic.Int64
	branchFaults   atomic.Int64
}

func NewScanMetrics() *ScanMetrics {
	return &ScanMetrics{}
}

func (m *ScanMetrics) AddDirsScanned(n int64)    { m.dirsScanned.Add(n) }
func (m *ScanMetrics) AddFilesScanned(n int64)   { m.filesScanned.Add(n) }
func (m *ScanMetrics) AddBytesScanned(n int64)   { m.bytesScanned.Add(n) }
func (m *ScanMetrics) AddEntriesSkipped(n int64) { m.entriesSkipped.Add(n) }
func (m *ScanMetrics) AddBranchFaults(n int64)   { m.branchFaults.Add(n) }

func (m *ScanMetrics) DirsScanned() int64    { return m.dirsScanned.Load() }
func (m *ScanMetrics) FilesScanned() int64   { return m.filesScanned.Load() }
func (m *ScanMetrics) BytesScanned() int64   { return m.bytesScanned.Load() }
func (m *ScanMetrics) EntriesSkipped() int64 { return m.entriesSkipped.Load() }
func (m *ScanMetrics) BranchFaults() int64   { return m.branchFaults.Load() }

// Log writes the current counters at notice level.
func (m *ScanMetrics) Log() {
	plog.Notice("Scan metrics",
		"dirs_scanned", m.dirsScanned.Load(),
		"files_scanned", m.filesScanned.Load(),
		"bytes_scanned", m.bytesScanned.Load(),
		"entries_skipped", m.entriesSkipped.Load(),
		"branch_faults", m.branchFaults.Load(),
	)
}

// NopMetrics discards all counters.
type NopMetrics struct{}

func (NopMetrics) AddDirsScanned(int64)    {}
func (NopMetrics) AddFilesScanned(int64)   {}
func (NopMetrics) AddBytesScanned(int64)   {}
func (NopMetrics) AddEntriesSkipped(int64) {}
func (NopMetrics) AddBranchFaults(int64)   {}
func (NopMetrics) Log()                    {}
