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

package future

// A Waker is the handle a pending Future uses to ask its host for another
// poll. Waking is a request for redelivery of control, not a statement of
// completion: a woken future may well report pending again.
//
// A future that has resolved must not wake its host; hosts may rely on the
// absence of wakes after the final value has been reported.
type Waker interface {
	// Wake indicates the associated future may be able to make progress and
	// should be polled again.
	Wake() error
}

// The WakerFunc type is an adapter to allow the use of ordinary functions as
// Waker.
type WakerFunc func() error

// Wake implements Waker which calls f().
func (f WakerFunc) Wake() error {
	return f()
}

// Type for NopWaker
type nopWaker int

func (nopWaker) Wake() error {
	return nil
}

// NopWaker is a Waker that does nothing. It is useful when polling manually
// in a loop, where the caller re-polls regardless of wakes.
const NopWaker nopWaker = 0

// A CountingWaker counts how many times it has been woken. Hosts and tests
// use it to observe wake cadence, e.g. to check that a future never wakes
// after it has resolved.
//
// Like the futures it is handed to, a CountingWaker assumes a single logical
// owner and is not goroutine-safe.
type CountingWaker struct {
	count int
}

// Wake implements Waker.
func (w *CountingWaker) Wake() error {
	w.count++
	return nil
}

// Count returns the number of times Wake has been called.
func (w *CountingWaker) Count() int {
	return w.count
}
