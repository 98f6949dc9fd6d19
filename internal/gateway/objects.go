package gateway

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/rogerio-castellano/boutique/internal/repo"
)

// Upload is a file received from the client.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// object names the upload "<owner>/<subject>-<unix millis><ext>" inside bucket.
func (u Upload) object(bucket, owner, subject string) repo.Object {
	ext := strings.ToLower(path.Ext(u.Filename))
	return repo.Object{
		Bucket:      bucket,
		Name:        fmt.Sprintf("%s/%s-%d%s", owner, subject, time.Now().UnixMilli(), ext),
		ContentType: u.ContentType,
		Data:        u.Data,
	}
}

// GetObject serves stored images. Objects are public, so no session is needed to
// read them from the backend.
func (g *Gateway) GetObject(ctx context.Context, bucket, name string) (repo.Object, error) {
	return call(ctx, g, "GetObject", false, func(ctx context.Context, s repo.Store, _ string) (repo.Object, error) {
		return s.GetObject(ctx, bucket, name)
	})
}
