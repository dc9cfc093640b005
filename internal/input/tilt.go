package input

// KeyTilt emulates a tilt sensor with up/down keys for hosts without one.
// Neutral reads 0; holding up reads -Amount, holding down reads +Amount,
// which the player controller turns into upward and downward force.
type KeyTilt struct {
	Amount float64
	slot   *MotionSlot
}

// NewKeyTilt creates a key tilt emulator writing into slot.
func NewKeyTilt(slot *MotionSlot, amount float64) *KeyTilt {
	return &KeyTilt{Amount: amount, slot: slot}
}

// Update publishes the sample for the current key state.
func (k *KeyTilt) Update(up, down bool) {
	z := 0.0
	switch {
	case up && !down:
		z = -k.Amount
	case down && !up:
		z = k.Amount
	}
	k.slot.Store(Sample{GravityZ: z})
}
