package pet

import "time"

// Reference tuning, taken from the original device firmware.
const (
	DefaultPetName = "Lobster"

	MaxStat = 100
	MinStat = 0

	// Stat deltas applied once per decay cycle
	DefaultHungerRate     = 2
	DefaultHappinessDecay = 1
	DefaultEnergyRegen    = 3
	DefaultEnergyDrain    = 1
	DefaultPresenceBoost  = 5

	DefaultFeedAmount        = 30
	DefaultPetHappinessBoost = 20

	DefaultSleepThreshold = 15 // energy at or below this triggers auto-sleep
	DefaultWakeThreshold  = 80 // energy at or above this wakes a sleeping pet

	// Cadences in ticks, all derived from the same counter
	DefaultDecayCycleTicks = 30
	DefaultSaveCycleTicks  = 300
	DefaultAgeCycleTicks   = 86400 // one in-simulation day at 1 Hz

	// Presence boost is skipped above this so it can't pin happiness at max
	PresenceBoostCeiling = 95

	// Mood thresholds
	HungryThreshold   = 70 // hunger above this reads as Hungry
	SadThreshold      = 30 // happiness below this reads as Sad
	HappyThreshold    = 70 // happiness above this (with low hunger) reads as Happy
	HappyHungerCutoff = 40

	// A new pet starts here
	InitialHunger    = 30
	InitialHappiness = 70
	InitialEnergy    = 80

	DefaultTickInterval = time.Second
)

// Config carries the simulation rates and cadences. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	Name string

	// TickInterval is owned by the host loop. The simulator itself is
	// purely counter-based.
	TickInterval time.Duration

	HungerRate      int
	SleepHungerRate int // hunger gain per decay cycle while asleep
	HappinessDecay  int
	EnergyRegen     int
	EnergyDrain     int
	PresenceBoost   int

	FeedAmount        int
	PetHappinessBoost int

	SleepThreshold int
	WakeThreshold  int

	DecayCycleTicks int
	SaveCycleTicks  int
	AgeCycleTicks   int
}

// DefaultConfig returns the reference rates. SleepHungerRate is the
// awake rate halved, rounded down, matching the original constants; it
// is its own field so a different rate set can't silently floor to
// zero without the caller choosing that.
func DefaultConfig() Config {
	return Config{
		Name:              DefaultPetName,
		TickInterval:      DefaultTickInterval,
		HungerRate:        DefaultHungerRate,
		SleepHungerRate:   DefaultHungerRate / 2,
		HappinessDecay:    DefaultHappinessDecay,
		EnergyRegen:       DefaultEnergyRegen,
		EnergyDrain:       DefaultEnergyDrain,
		PresenceBoost:     DefaultPresenceBoost,
		FeedAmount:        DefaultFeedAmount,
		PetHappinessBoost: DefaultPetHappinessBoost,
		SleepThreshold:    DefaultSleepThreshold,
		WakeThreshold:     DefaultWakeThreshold,
		DecayCycleTicks:   DefaultDecayCycleTicks,
		SaveCycleTicks:    DefaultSaveCycleTicks,
		AgeCycleTicks:     DefaultAgeCycleTicks,
	}
}
