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

// delayed implements Future returned by Delayed.
type delayed struct {
	// Number of polls that will still report pending. Only ever decremented,
	// which makes the pending-to-ready transition monotonic: once the future
	// has resolved it can never go back to pending.
	pending int
	// The final value, fixed at construction time.
	value PollResult
}

// Poll implements future.Future.
//
// While pending polls remain, each poll consumes one, wakes waker exactly
// once and reports PollResultPending. Once they are exhausted the future
// resolves to its value on this and every later poll, and waker is never
// woken again.
func (f *delayed) Poll(waker Waker) (PollResult, error) {
	if f.pending == 0 {
		return f.value, nil
	}

	f.pending--

	// The future has no external event to hook the wake to; it asks to be
	// re-polled right away. A real computation would hand waker to whatever
	// signals its progress and wake from there.
	if waker != nil {
		if err := waker.Wake(); err != nil {
			return nil, err
		}
	}

	return PollResultPending, nil
}

// Delayed creates a Future that reports pending for the first pendingPolls
// polls and then resolves to value, idempotently, on every poll thereafter.
// A pendingPolls below 1 produces a future that is ready on the first poll,
// same as Ready.
//
// On each pending poll the future wakes the given Waker once, asking the
// host to poll it again; over its whole lifecycle it wakes exactly
// pendingPolls times and never after it has resolved. Delayed(v, 1) is the
// classic two-poll demonstration: pending once, then ready with v.
func Delayed(value interface{}, pendingPolls int) Future {
	if pendingPolls < 1 {
		pendingPolls = 0
	}
	return &delayed{
		pending: pendingPolls,
		value:   value,
	}
}
