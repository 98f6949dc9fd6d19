package repo

import "context"

// Object is a stored image or avatar.
type Object struct {
	Bucket      string
	Name        string
	ContentType string
	Data        []byte
}

// ObjectStore keeps binary objects keyed by bucket and generated file name.
type ObjectStore interface {
	// PutObject stores (or replaces) an object and returns its public URL.
	PutObject(ctx context.Context, owner string, obj Object) (string, error)
	GetObject(ctx context.Context, bucket, name string) (Object, error)
}
