package component

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"
)

func TestEmitter_FIFO(t *testing.T) {
	emitter, receiver := NewChannel()
	id := NewID[int](3)

	for i := 0; i < 3; i++ {
		if err := Emit(emitter, id, i); err != nil {
			t.Fatal(err)
		}
	}
	if receiver.Len() != 3 {
		t.Fatalf("expected 3 queued messages, got %d", receiver.Len())
	}
	for i := 0; i < 3; i++ {
		msg, ok := receiver.TryRecv()
		if !ok || msg.Payload != i || msg.Recipient != 3 {
			t.Fatalf("message %d = %+v %v", i, msg, ok)
		}
	}
	if _, ok := receiver.TryRecv(); ok {
		t.Error("expected empty channel")
	}
}

func TestEmitter_ClosedReturnsErr(t *testing.T) {
	emitter, receiver := NewChannel()
	Emit(emitter, NewID[int](1), 1)
	receiver.Close()
	receiver.Close()

	if err := emitter.Emit(1, 2); !stderrors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if receiver.Len() != 0 || !receiver.Closed() {
		t.Error("expected queue discarded on close")
	}
	select {
	case <-receiver.Done():
	default:
		t.Error("expected Done to be closed")
	}
	if _, err := receiver.Recv(context.Background()); !stderrors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed from Recv, got %v", err)
	}
}

func TestEmitter_ConcurrentSenders(t *testing.T) {
	emitter, receiver := NewChannel()
	id := NewID[int](0)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				Emit(emitter, id, i)
			}
		}()
	}
	wg.Wait()

	if receiver.Len() != 800 {
		t.Errorf("expected 800 messages, got %d", receiver.Len())
	}
	select {
	case <-receiver.Notify():
	default:
		t.Error("expected a pending wake-up")
	}
}

func TestEmitAsync_WaitsForReceiver(t *testing.T) {
	emitter, receiver := NewChannel()
	done := make(chan error, 1)

	go func() {
		done <- EmitAsync(context.Background(), emitter, NewID[string](2), "hi")
	}()

	select {
	case err := <-done:
		t.Fatalf("EmitAsync returned before the message was taken: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, err := receiver.Recv(ctx)
	if err != nil || msg.Payload != "hi" {
		t.Fatalf("Recv = %+v, %v", msg, err)
	}
	if err := <-done; err != nil {
		t.Errorf("EmitAsync = %v", err)
	}
}

func TestEmitAsync_CancelWithdraws(t *testing.T) {
	emitter, receiver := NewChannel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := EmitAsync(ctx, emitter, NewID[int](1), 5)
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if receiver.Len() != 0 {
		t.Errorf("expected the message to be withdrawn, %d queued", receiver.Len())
	}
}

func TestEmitAsync_ClosedWhileWaiting(t *testing.T) {
	emitter, receiver := NewChannel()
	done := make(chan error, 1)
	go func() {
		done <- EmitAsync(context.Background(), emitter, NewID[int](1), 5)
	}()

	for receiver.Len() == 0 {
		time.Sleep(time.Millisecond)
	}
	receiver.Close()

	if err := <-done; !stderrors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
