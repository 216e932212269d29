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

// then implements Future returned by Then.
type then struct {
	inner Future
	fn    func(value interface{}) (interface{}, error)

	// Result of fn, memoized so that polls after completion neither re-poll
	// inner nor re-run fn.
	done   bool
	result PollResult
	err    error
}

// Poll implements future.Future.
func (f *then) Poll(waker Waker) (PollResult, error) {
	if f.done {
		return f.result, f.err
	}

	result, err := f.inner.Poll(waker)
	if err != nil {
		// Forwarded untouched; continuation is never run.
		f.done = true
		f.err = err
		return nil, err
	}

	if !IsReady(result) {
		return PollResultPending, nil
	}

	f.done = true
	f.result, f.err = f.fn(result)
	if f.err != nil {
		f.result = nil
	}
	return f.result, f.err
}

// Then creates a Future that resolves inner and then continues with fn on
// its value.
//
// While inner is pending, so is the returned future; nothing past the poll
// of inner is evaluated. If inner finishes with an error, the error is
// forwarded to the caller unchanged, without wrapping or inspection, and fn
// is never invoked. Once inner resolves, fn runs exactly once on the value
// and its result becomes the future's final outcome.
func Then(inner Future, fn func(value interface{}) (interface{}, error)) Future {
	return &then{
		inner: inner,
		fn:    fn,
	}
}

// Map is Then for a transformation that cannot fail: the returned Future
// resolves to fn applied to inner's value.
func Map(inner Future, fn func(value interface{}) interface{}) Future {
	return Then(inner, func(value interface{}) (interface{}, error) {
		return fn(value), nil
	})
}
