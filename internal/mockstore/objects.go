package mockstore

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/repo"
)

func (s *Store) PutObject(ctx context.Context, _ string, obj repo.Object) (string, error) {
	if err := delay(ctx, s.latency.Upload); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	obj.Data = append([]byte(nil), obj.Data...)
	s.objects[obj.Bucket+"/"+obj.Name] = obj
	return repo.PublicURL(s.storageURL, obj.Bucket, obj.Name), nil
}

func (s *Store) GetObject(_ context.Context, bucket, name string) (repo.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[bucket+"/"+name]
	if !ok {
		return repo.Object{}, repo.ErrObjectNotFound
	}
	return obj, nil
}
