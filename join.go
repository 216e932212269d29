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

// join implements Future returned by Join.
type join struct {
	inputs []Future
	// values[i] holds the resolved value of inputs[i], or PollResultPending
	// while inputs[i] has not resolved. A filled slot is never polled again,
	// so a completed input never sees the waker after its own resolution.
	values []interface{}
}

// Poll implements future.Future.
func (f *join) Poll(waker Waker) (PollResult, error) {
	done := true

	for i, input := range f.inputs {
		if IsReady(f.values[i]) {
			continue
		}

		result, err := input.Poll(waker)
		if err != nil {
			return nil, err
		}

		if IsReady(result) {
			f.values[i] = result
		} else {
			done = false
		}
	}

	if !done {
		return PollResultPending, nil
	}

	return f.values, nil
}

// Join creates a Future which aggregates the values from a collection of
// Futures, built in one shot from its variadic argument list.
//
// The returned Future drives every input on each poll and resolves, once all
// inputs have resolved, to an []interface{} holding their values in the
// order they were given. The first input error finishes the join with that
// error. Join of nothing is immediately ready with an empty slice.
func Join(f ...Future) Future {
	values := make([]interface{}, len(f))
	for i := range values {
		values[i] = PollResultPending
	}

	return &join{
		inputs: f,
		values: values,
	}
}
