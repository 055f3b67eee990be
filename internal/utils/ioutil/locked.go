package ioutil

import (
	"io"
	"sync"
)

// LockedReadCloser holds a read lock on an object until Close.
// Close is idempotent; the lock is released once.
type LockedReadCloser struct {
	io.ReadCloser
	Lock *sync.RWMutex
	once sync.Once
}

func (l *LockedReadCloser) Close() error {
	err := l.ReadCloser.Close()
	l.once.Do(l.Lock.RUnlock)
	return err
}

func NewLockedReadCloser(r io.ReadCloser, lock *sync.RWMutex) *LockedReadCloser {
	return &LockedReadCloser{ReadCloser: r, Lock: lock}
}
