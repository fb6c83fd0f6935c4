package main

import (
	"context"
	"fmt"

	"github.com/snapfsm/fsm"
)

// States of the turnstile demo.
type (
	Locked        struct{}
	ReceivingCoin struct{ Price int }
	Unlocked      struct{}
	CoinError     struct{}
)

func (Locked) String() string        { return "Locked" }
func (ReceivingCoin) String() string { return "ReceivingCoin" }
func (Unlocked) String() string      { return "Unlocked" }
func (CoinError) String() string     { return "CoinError" }

// Coin is the payment payload carried into a coin transition.
type Coin struct{ Value int }

// Rejection is carried after an insufficient payment.
type Rejection struct {
	Value  int
	Reason string
}

// Ready is the default payload of an unlocked turnstile.
type Ready struct{}

const (
	eventCoinInserted fsm.Event = "coinInserted"
	eventCoinAccepted fsm.Event = "coinAccepted"
	eventCoinRejected fsm.Event = "coinRejected"
	eventPush         fsm.Event = "push"
)

// OnEnter validates the payment and immediately chains onward;
// ReceivingCoin is never observable as a settled state.
func (s ReceivingCoin) OnEnter(_ context.Context, data any) (fsm.Response, error) {
	coin, ok := data.(Coin)
	if !ok {
		return fsm.Emit(Rejection{Reason: "no coin supplied"}, eventCoinRejected), nil
	}

	if coin.Value < s.Price {
		reason := fmt.Sprintf("need %d, got %d", s.Price, coin.Value)
		return fsm.Emit(Rejection{Value: coin.Value, Reason: reason}, eventCoinRejected), nil
	}

	return fsm.EmitEvent(eventCoinAccepted), nil
}

func (Unlocked) OnEnter(context.Context, any) (fsm.Response, error) {
	return fsm.EmitData(Ready{}), nil
}

// newTurnstile builds the demo machine: Locked accepts a coin, a coin of
// at least price unlocks, anything less lands in CoinError, a push locks
// again, and CoinError accepts another coin.
func newTurnstile(price int) fsm.FSM {
	receiving := ReceivingCoin{Price: price}

	return fsm.New(Locked{}).
		Transition(Locked{}, eventCoinInserted, receiving).
		Transition(receiving, eventCoinAccepted, Unlocked{}).
		Transition(receiving, eventCoinRejected, CoinError{}).
		Transition(CoinError{}, eventCoinInserted, receiving).
		Transition(Unlocked{}, eventPush, Locked{})
}
