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

// A Future represents an asynchronous computation.
//
// Futures are inert: they make progress only while being polled. A host that
// holds a Future calls Poll to drive it; the future answers with either its
// final value or PollResultPending. Pending is a promise to call back: before
// reporting it, the future must arrange for the given Waker to be woken once
// another poll could make progress. A host is therefore free to park the
// future after a pending report and to re-poll it only when the wake arrives.
type Future interface {
	// Poll attempts to resolve the future to its final value.
	//
	// The return values are interpreted as follows:
	//
	//	* (_, err) with a non-nil err: the future finished with an error.
	//	* (PollResultPending, nil): the future cannot finish yet; waker will be
	//	  woken when it is worth polling again.
	//	* (value, nil) for any other value: the future finished with value.
	//
	// Poll must return quickly and must never block; work that takes a while
	// belongs somewhere it can signal completion through waker instead.
	//
	// The caller must own the future exclusively for the duration of the call.
	// A future must not be polled reentrantly or from two goroutines at once,
	// and on multiple polls only the most recent waker may be scheduled for a
	// wakeup.
	Poll(waker Waker) (PollResult, error)
}
