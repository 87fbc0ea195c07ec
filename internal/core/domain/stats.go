package domain

// SessionStats holds aggregated statistics for a single poker session.
//
// All numeric fields are optional; a nil pointer means the value was not
// tracked and is omitted from prompts and payloads. Rates are percentages
// in [0, 100] and values are expected to be pre-aggregated per session.
type SessionStats struct {
	// HandsPlayed is the number of hands dealt to the player.
	HandsPlayed *int `json:"hands_played,omitempty"`

	// VPIP is the Voluntarily Put Money In Pot percentage.
	VPIP *float64 `json:"vpip,omitempty"`

	// PFR is the Pre-Flop Raise percentage.
	PFR *float64 `json:"pfr,omitempty"`

	// ThreeBet is the 3-bet percentage.
	ThreeBet *float64 `json:"three_bet,omitempty"`

	// AggressionFactor is the post-flop aggression factor.
	AggressionFactor *float64 `json:"aggression_factor,omitempty"`

	// ShowdownWinRate is the percentage of showdowns won.
	ShowdownWinRate *float64 `json:"showdown_win_rate,omitempty"`

	// NetProfitBB is the net profit in big blinds.
	NetProfitBB *int `json:"net_profit_bb,omitempty"`

	// SessionMinutes is the session duration in minutes.
	SessionMinutes *int `json:"session_minutes,omitempty"`

	// Strengths lists observed strong points of the player's game.
	Strengths []string `json:"strengths,omitempty"`

	// Leaks lists observed weaknesses to work on.
	Leaks []string `json:"leaks,omitempty"`
}

// IsEmpty returns true when no statistic is present at all.
// An empty record is still valid input for prompt building.
func (s SessionStats) IsEmpty() bool {
	return s.HandsPlayed == nil &&
		s.VPIP == nil &&
		s.PFR == nil &&
		s.ThreeBet == nil &&
		s.AggressionFactor == nil &&
		s.ShowdownWinRate == nil &&
		s.NetProfitBB == nil &&
		s.SessionMinutes == nil &&
		len(s.Strengths) == 0 &&
		len(s.Leaks) == 0
}
