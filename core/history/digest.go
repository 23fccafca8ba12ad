package history

import (
	"fmt"
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

// FileDigest returns the xxh3 hash of the file contents as a 16-character
// hex string. Cheap enough to run on multi-gigabyte reports before a run is
// recorded.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("digest %s: %w", path, err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
