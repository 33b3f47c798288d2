package monthobj

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/starbook-app/starbook/internal/domain/auspice"
)

// FilesystemPublisher writes month documents under a local directory,
// mirroring the bucket layout. The batch driver and dev setups use it.
type FilesystemPublisher struct {
	dir string
}

// NewFilesystemPublisher constructs the publisher rooted at dir.
func NewFilesystemPublisher(dir string) *FilesystemPublisher {
	return &FilesystemPublisher{dir: dir}
}

// Publish writes the month document to dir/{year}/{MM}.json.
func (p *FilesystemPublisher) Publish(_ context.Context, month auspice.Month) error {
	data, err := encodeMonth(month)
	if err != nil {
		return err
	}
	path := filepath.Join(p.dir, MonthKey(month.Year, month.Month))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var _ auspice.Publisher = (*FilesystemPublisher)(nil)

// MonthKey is the published object path for a month: {year}/{MM}.json.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%d/%02d.json", year, month)
}

// encodeMonth renders the document pretty-printed, matching the files
// the site has always served.
func encodeMonth(month auspice.Month) ([]byte, error) {
	return json.MarshalIndent(month, "", "  ")
}
