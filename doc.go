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

// Package future provides poll-based futures for cooperative task systems.
//
// The design follows Rust's Future [0]: a Future is an asynchronous value
// that makes progress only when polled. A poll either resolves the future to
// its final value or reports PollResultPending, in which case the future has
// already arranged, through the Waker it was given, to have its host poll it
// again once progress is possible. Between a pending report and the
// corresponding wake the host can stay idle; nothing in this model requires
// a spin loop.
//
// The package centers on Delayed, a future that stays pending for a fixed
// number of polls before resolving, which makes the suspend/wake/resume
// cadence directly observable. Then, Map and Join compose futures the way
// Rust's ready!/? operators and collection literals compose poll results and
// fallible expressions. BlockOn is the minimal host: it drives one future to
// completion, parking between wakes.
//
// Futures here are not goroutine-safe: each instance has a single logical
// owner, and only that owner may call Poll.
//
// [0]: https://doc.rust-lang.org/std/future/index.html
package future
