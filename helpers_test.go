package rivet_test

import (
	"errors"
	"sync"
)

var errBoom = errors.New("boom")

// closeLog records Close invocations across bindings, in order.
type closeLog struct {
	mu     sync.Mutex
	closed []string
}

func (l *closeLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = append(l.closed, name)
}

func (l *closeLog) names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.closed))
	copy(out, l.closed)
	return out
}

// resource is a closable test value.
type resource struct {
	name string
	log  *closeLog
	err  error
}

func (r *resource) Close() error {
	r.log.add(r.name)
	return r.err
}
