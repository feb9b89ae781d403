package audit

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/gzip"
)

// MaxLogSize is the size at which the audit log is rolled aside and
// compressed. The hook runs once per file write, so growth is slow but
// unbounded without a cap.
const MaxLogSize = 5 * 1024 * 1024

// rotateIfNeeded rolls the log aside and gzips it when it exceeds
// MaxLogSize. A failure here never blocks the invocation; the caller logs
// and continues appending to the existing file.
func rotateIfNeeded(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() < MaxLogSize {
		return nil
	}

	stamp := time.Now().UTC().Format("20060102T150405")
	rotated := fmt.Sprintf("%s.%s", path, stamp)
	if err := os.Rename(path, rotated); err != nil {
		return err
	}

	if err := compressFile(rotated); err != nil {
		// Keep the uncompressed rotated file rather than losing history.
		return err
	}
	return os.Remove(rotated)
}

// compressFile writes src to src.gz using gzip.
func compressFile(src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(src + ".gz")
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}
