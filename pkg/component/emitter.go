package component

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when sending on a channel whose receiver is closed.
var ErrClosed = errors.New("component: message channel closed")

// ViewMessage is a message waiting to be delivered to a component.
type ViewMessage struct {
	Payload   any
	Recipient WidgetComponentID
}

type pending struct {
	msg   ViewMessage
	taken chan struct{}
}

type channel struct {
	mu     sync.Mutex
	queue  []*pending
	closed bool
	done   chan struct{}
	wake   chan struct{}
}

// NewChannel creates a connected emitter and receiver.
func NewChannel() (*Emitter, *Receiver) {
	ch := &channel{
		done: make(chan struct{}),
		wake: make(chan struct{}, 1),
	}
	return &Emitter{ch: ch}, &Receiver{ch: ch}
}

func (c *channel) push(p *pending) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.queue = append(c.queue, p)
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
	return nil
}

// withdraw removes p if it has not been received yet.
func (c *channel) withdraw(p *pending) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, q := range c.queue {
		if q == p {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Emitter sends messages to components. It is safe for concurrent use and
// may be copied freely.
type Emitter struct {
	ch *channel
}

// Emit queues payload for the component with the given id. It never blocks.
func (e *Emitter) Emit(to WidgetComponentID, payload any) error {
	return e.ch.push(&pending{msg: ViewMessage{Payload: payload, Recipient: to}})
}

// Emit sends a typed message to a component.
func Emit[M any](e *Emitter, to ID[M], value M) error {
	return e.Emit(to.id, value)
}

// EmitAsync sends a typed message and waits until the receiver has taken it.
// It returns ctx.Err() if ctx ends first, in which case the message is
// withdrawn unless it was already taken.
func EmitAsync[M any](ctx context.Context, e *Emitter, to ID[M], value M) error {
	p := &pending{
		msg:   ViewMessage{Payload: value, Recipient: to.id},
		taken: make(chan struct{}),
	}
	if err := e.ch.push(p); err != nil {
		return err
	}
	select {
	case <-p.taken:
		return nil
	case <-e.ch.done:
		select {
		case <-p.taken:
			return nil
		default:
		}
		return ErrClosed
	case <-ctx.Done():
		if e.ch.withdraw(p) {
			return ctx.Err()
		}
		select {
		case <-p.taken:
			return nil
		default:
			return ErrClosed
		}
	}
}

// Receiver is the consuming end of a message channel. It is owned by the
// driver goroutine.
type Receiver struct {
	ch *channel
}

// TryRecv takes the oldest queued message without waiting.
func (r *Receiver) TryRecv() (ViewMessage, bool) {
	c := r.ch
	c.mu.Lock()
	if len(c.queue) == 0 {
		c.mu.Unlock()
		return ViewMessage{}, false
	}
	p := c.queue[0]
	c.queue[0] = nil
	c.queue = c.queue[1:]
	if p.taken != nil {
		close(p.taken)
	}
	c.mu.Unlock()
	return p.msg, true
}

// Recv waits for the next message.
func (r *Receiver) Recv(ctx context.Context) (ViewMessage, error) {
	for {
		if msg, ok := r.TryRecv(); ok {
			return msg, nil
		}
		select {
		case <-r.ch.wake:
		case <-r.ch.done:
			return ViewMessage{}, ErrClosed
		case <-ctx.Done():
			return ViewMessage{}, ctx.Err()
		}
	}
}

// Notify returns a channel that receives a value whenever a message is
// queued. Several sends may collapse into one wake-up.
func (r *Receiver) Notify() <-chan struct{} {
	return r.ch.wake
}

// Done returns a channel that is closed by Close.
func (r *Receiver) Done() <-chan struct{} {
	return r.ch.done
}

// Len returns the number of queued messages.
func (r *Receiver) Len() int {
	r.ch.mu.Lock()
	defer r.ch.mu.Unlock()
	return len(r.ch.queue)
}

// Close shuts the channel. Queued messages are discarded and every later
// send fails with ErrClosed.
func (r *Receiver) Close() {
	c := r.ch
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.queue = nil
	close(c.done)
}

// Closed reports whether Close has been called.
func (r *Receiver) Closed() bool {
	r.ch.mu.Lock()
	defer r.ch.mu.Unlock()
	return r.ch.closed
}
