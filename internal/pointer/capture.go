// Package pointer routes pointer move and release events to the one window
// that is currently dragging or resizing.
package pointer

// Capture holds at most one subscriber for move/up events
type Capture struct {
	current *Subscription
}

// Subscription is an active claim on the pointer. It stays valid until
// Release is called or another owner acquires the capture.
type Subscription struct {
	owner   string
	capture *Capture
}

// Acquire makes owner the receiver of move/up events. A previous
// subscription, if any, is displaced and its Release becomes a no-op.
func (c *Capture) Acquire(owner string) *Subscription {
	s := &Subscription{owner: owner, capture: c}
	c.current = s
	return s
}

// Owner returns the current subscriber
func (c *Capture) Owner() (string, bool) {
	if c.current == nil {
		return "", false
	}
	return c.current.owner, true
}

// Active reports whether anyone holds the capture
func (c *Capture) Active() bool {
	return c.current != nil
}

// ReleaseOwner drops the capture if owner holds it
func (c *Capture) ReleaseOwner(owner string) bool {
	if c.current == nil || c.current.owner != owner {
		return false
	}
	c.current.Release()
	return true
}

// Owner returns who the subscription was acquired for
func (s *Subscription) Owner() string {
	return s.owner
}

// Held reports whether the subscription still owns the capture
func (s *Subscription) Held() bool {
	return s != nil && s.capture != nil && s.capture.current == s
}

// Release ends the subscription. Safe to call more than once.
func (s *Subscription) Release() {
	if !s.Held() {
		return
	}
	s.capture.current = nil
}
