package models

import (
	"time"
)

// DailyResult describes a successful daily claim
type DailyResult struct {
	Reward     int64
	Multiplier float64
	NewBalance int64
}

// WorkResult describes a successful work shift
type WorkResult struct {
	Earned     int64
	Multiplier float64
	NewBalance int64
}

// SlotsResult describes one pull of the slot machine
type SlotsResult struct {
	Symbols    [3]string
	Multiplier int64 // payout multiplier; 0 when the pull lost
	Winnings   int64 // net change after boost scaling, negative on loss
	NewBalance int64
}

// BlackjackOutcome classifies a blackjack round
type BlackjackOutcome string

const (
	BlackjackWin  BlackjackOutcome = "win"
	BlackjackLoss BlackjackOutcome = "loss"
	BlackjackPush BlackjackOutcome = "push"
)

// BlackjackResult describes one round of blackjack
type BlackjackResult struct {
	PlayerHand int
	DealerHand int
	Outcome    BlackjackOutcome
	Winnings   int64 // net change after boost scaling, negative on loss
	NewBalance int64
}

// TransferResult describes a completed transfer from the sender's view
type TransferResult struct {
	Amount     int64
	NewBalance int64
}

// RobResult describes a resolved robbery from the robber's view
type RobResult struct {
	Success        bool
	SuccessRate    int
	Amount         int64 // stolen on success, 0 on failure
	Fine           int64 // paid by the robber on failure
	CounterAttack  bool  // guard dog triggered on success
	CounterPenalty int64 // paid by the robber on counter-attack
	Compensation   int64 // paid to the victim on an alarmed failure
	NewBalance     int64
}

// PurchaseResult describes a completed shop purchase
type PurchaseResult struct {
	Item       ItemID
	Price      int64
	NewBalance int64
}

// UseItemResult describes the effect of consuming one item. Boost items
// report the granted Effect and its Expiry; the stock market tip reports
// its immediate Payout instead.
type UseItemResult struct {
	Item       ItemID
	Effect     EffectKind
	Expiry     *time.Time
	Payout     int64 // stock market tip only; negative on a losing draw
	NewBalance int64
}

// SellResult describes a completed item sale
type SellResult struct {
	Item       ItemID
	Quantity   int64
	Proceeds   int64
	NewBalance int64
}
