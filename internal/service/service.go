package service

import (
	"net/url"

	"github.com/beanbocchi/ossclient/pkg/objectstore"
)

// MaxListKeys caps every listing, like a single OSS ListObjects page.
const MaxListKeys = 1000

// Verifier checks presigned URL queries issued by the store.
type Verifier interface {
	VerifyPresigned(key string, q url.Values) (string, error)
}

// Service implements the OSS API on top of an object store.
type Service struct {
	objectStore objectstore.Client
	verifier    Verifier
}

func NewService(store objectstore.Client, verifier Verifier) *Service {
	return &Service{
		objectStore: store,
		verifier:    verifier,
	}
}
