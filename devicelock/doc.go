// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package devicelock implements the "one voter per device" policy.

When a voter's first vote is accepted, the device is bound to that voter
with a signed cookie. Picking a different voter from the same device is
then refused:

	lock := devicelock.New(cfg.SessionSecret)

	if err := lock.Check(r, voter); err != nil {
		// 409: device already used to vote as someone else
	}

	lock.Claim(w, r, voter) // after the vote is stored

This is advisory only. Vote validation never consults it, and anyone who
clears their cookies can pick again. That weakness is accepted.
*/
package devicelock
