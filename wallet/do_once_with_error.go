package wallet

import (
	"sync"
	"sync/atomic"
)

// onceWithErr is sync.Once for functions that can fail: f runs again on the
// next Do until it returns nil.
type onceWithErr struct {
	done atomic.Bool
	m    sync.Mutex
}

func (o *onceWithErr) Do(f func() error) error {
	if o.done.Load() {
		return nil
	}
	return o.doSlow(f)
}

func (o *onceWithErr) doSlow(f func() error) error {
	o.m.Lock()
	defer o.m.Unlock()
	if o.done.Load() {
		return nil
	}
	if err := f(); err != nil {
		return err
	}
	o.done.Store(true)
	return nil
}
