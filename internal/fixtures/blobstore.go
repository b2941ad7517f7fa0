package fixtures

import (
	"context"
	"sync"
)

// BlobStore is an in-memory storage.BlobStore. UploadErr and RemoveErr
// inject blob-store failures.
type BlobStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	UploadErr error
	RemoveErr error
	Removed   []string
}

// NewBlobStore returns an empty in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{objects: make(map[string][]byte)}
}

func (s *BlobStore) Upload(ctx context.Context, bucket, object string, data []byte, contentType string) error {
	if s.UploadErr != nil {
		return s.UploadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+object] = data
	return nil
}

func (s *BlobStore) Remove(ctx context.Context, bucket, object string) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, bucket+"/"+object)
	s.Removed = append(s.Removed, bucket+"/"+object)
	return nil
}

func (s *BlobStore) PublicURL(bucket, object string) string {
	return "https://blobs.test/" + bucket + "/" + object
}

// Len reports the number of stored objects.
func (s *BlobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// Has reports whether bucket/object is stored.
func (s *BlobStore) Has(bucket, object string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[bucket+"/"+object]
	return ok
}
