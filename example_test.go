package fsm_test

import (
	"context"
	"fmt"
)

// A coin of at least the fare unlocks the turnstile via the transient
// ReceivingCoin state; a push locks it again. Each Trigger returns a new
// snapshot and leaves its receiver untouched.
func Example() {
	ctx := context.Background()
	turnstile := newTurnstile()

	unlocked, _ := turnstile.Trigger(ctx, evCoinInserted, Coin{Value: 50})
	fmt.Println(unlocked.Current())

	relocked, _ := unlocked.Trigger(ctx, evPush)
	fmt.Println(relocked.Current())

	// The original snapshot never moved.
	fmt.Println(turnstile.Current())

	// Output:
	// Unlocked
	// Locked
	// Locked
}
