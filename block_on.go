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

// BlockOn drives f to completion on the calling goroutine and returns its
// final value or error.
//
// It is the smallest possible host: poll once, and on a pending report park
// until the waker fires, then poll again. It never spins; between a pending
// report and the next wake the goroutine is blocked on the wake channel.
// This is also why the no-wake-after-resolution rule matters to hosts: a
// future that reported pending without having arranged a wake would park
// BlockOn forever.
//
// BlockOn is not a scheduler. It handles exactly one future and keeps no
// task set; anything that juggles several computations needs a real event
// loop around this same poll/park/resume cadence.
func BlockOn(f Future) (PollResult, error) {
	// Buffered so a wake delivered during Poll, before the host has parked,
	// is not lost. Extra wakes while one is already buffered coalesce.
	wake := make(chan struct{}, 1)
	waker := WakerFunc(func() error {
		select {
		case wake <- struct{}{}:
		default:
		}
		return nil
	})

	for {
		result, err := f.Poll(waker)
		if err != nil {
			return nil, err
		}

		if IsReady(result) {
			return result, nil
		}

		<-wake
	}
}
