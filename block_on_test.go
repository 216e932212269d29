/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package future_test

import (
	"errors"
	"sync"

	"github.com/botobag/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("BlockOn: drive a single future to completion", func() {
	It("returns the value of an immediately ready future", func() {
		Expect(future.BlockOn(future.Ready(42))).Should(Equal(42))
	})

	It("re-polls on wake until the future resolves", func() {
		Expect(future.BlockOn(future.Delayed(42, 1))).Should(Equal(42))
		Expect(future.BlockOn(future.Delayed("slow", 5))).Should(Equal("slow"))
	})

	It("returns the error of a failed future", func() {
		testErr := errors.New("exploded")
		_, err := future.BlockOn(future.Err(testErr))
		Expect(err).Should(MatchError(testErr))
	})

	It("resolves a future completed from another goroutine", func() {
		// A future whose wake comes from outside its own Poll, the shape real
		// computations have: pending until a result is delivered, then ready.
		f := &deliveredFuture{}

		go f.Deliver("payload")

		Expect(future.BlockOn(f)).Should(Equal("payload"))
	})
})

// deliveredFuture stays pending until Deliver supplies a value, waking the
// most recent waker on delivery. The mutex is only there because Deliver
// runs on another goroutine; futures themselves stay single-owner.
type deliveredFuture struct {
	mu    sync.Mutex
	value interface{}
	done  bool
	waker future.Waker
}

func (f *deliveredFuture) Poll(waker future.Waker) (future.PollResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return f.value, nil
	}
	f.waker = waker
	return future.PollResultPending, nil
}

func (f *deliveredFuture) Deliver(value interface{}) {
	f.mu.Lock()
	f.value = value
	f.done = true
	waker := f.waker
	f.mu.Unlock()

	if waker != nil {
		_ = waker.Wake()
	}
}
