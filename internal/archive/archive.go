// Package archive writes point-in-time JSON snapshots of a list to object
// storage and hands back a presigned download link.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/todolists/todolists/internal/todo"
	"github.com/todolists/todolists/pkg/metrics"
)

// ObjectStore is the subset of storage.MinIOStorage the archiver needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	GetPresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Snapshot is the archived document.
type Snapshot struct {
	List       todo.List `json:"list"`
	ArchivedAt time.Time `json:"archivedAt"`
}

// Receipt tells the caller where the snapshot went.
type Receipt struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
	Items     int       `json:"items"`
}

type Archiver struct {
	store  ObjectStore
	expiry time.Duration
	now    func() time.Time
}

func NewArchiver(store ObjectStore, expiry time.Duration) *Archiver {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &Archiver{store: store, expiry: expiry, now: func() time.Time { return time.Now().UTC() }}
}

// Key is lists/<escaped name>/<UTC timestamp>.json.
func Key(name string, at time.Time) string {
	return fmt.Sprintf("lists/%s/%s.json", url.PathEscape(name), at.UTC().Format("20060102T150405.000000000Z"))
}

func (a *Archiver) Archive(ctx context.Context, l todo.List) (*Receipt, error) {
	at := a.now()
	snap := Snapshot{List: l.Clone(), ArchivedAt: at}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	key := Key(l.Name, at)
	if err := a.store.UploadFile(ctx, key, bytes.NewReader(b), int64(len(b)), "application/json"); err != nil {
		metrics.ArchivesWritten.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}
	link, err := a.store.GetPresignedURL(ctx, key, a.expiry)
	if err != nil {
		metrics.ArchivesWritten.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("presign snapshot: %w", err)
	}
	metrics.ArchivesWritten.WithLabelValues("ok").Inc()
	return &Receipt{Key: key, URL: link, ExpiresAt: at.Add(a.expiry), Items: len(l.Items)}, nil
}
