package pet

import (
	"sync"

	"github.com/charmbracelet/log"
)

// State is the pet's live state. Renderers get copies via
// Simulator.State; all mutation goes through the Simulator.
type State struct {
	Name         string
	Hunger       int // 0 = full, 100 = starving
	Happiness    int // 0 = miserable, 100 = ecstatic
	Energy       int // 0 = exhausted, 100 = wired
	AgeDays      int
	Sleeping     bool
	Mood         Mood // cached; recomputed after every mutation
	OwnerPresent bool

	// Interaction timestamps in clock seconds, display only
	Born       uint32
	LastFed    uint32
	LastPetted uint32
	LastSeen   uint32
}

// Record is the durable subset of State. Fields are pointers so a
// partial record (some keys missing from storage) defaults only what is
// absent, matching the device's key-per-field flash layout. The
// sleeping flag, mood, and timestamps are deliberately not part of it.
type Record struct {
	Hunger    *int `json:"hunger,omitempty"`
	Happiness *int `json:"happiness,omitempty"`
	Energy    *int `json:"energy,omitempty"`
	AgeDays   *int `json:"age_days,omitempty"`
}

// TickResult tells the host what fell due on this tick.
type TickResult struct {
	SaveDue bool
}

// LongPressOutcome reports what a long press did.
type LongPressOutcome int

const (
	// LongPressSlept means the pet was awake and is now manually asleep.
	LongPressSlept LongPressOutcome = iota
	// LongPressShutdown means the pet was already asleep; the host
	// should save and power down.
	LongPressShutdown
)

// Simulator owns one pet and advances it one tick at a time. All
// mutating operations are serialized behind one mutex so input
// callbacks and the tick loop can't tear the stat bytes.
type Simulator struct {
	mu     sync.Mutex
	cfg    Config
	clock  Clock
	logger *log.Logger

	state State
	ticks uint64
}

// NewSimulator creates a simulator with no pet loaded yet; call
// LoadOrInitialize before ticking.
func NewSimulator(cfg Config, clock Clock, logger *log.Logger) *Simulator {
	return &Simulator{cfg: cfg, clock: clock, logger: logger}
}

// LoadOrInitialize restores a saved record or starts a fresh pet. A
// nil record is the normal first-run case, not a failure. The sleeping
// flag, timestamps, and the tick counter always reset; mood is
// recomputed from whatever was restored.
func (s *Simulator) LoadOrInitialize(rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Name:      s.cfg.Name,
		Hunger:    InitialHunger,
		Happiness: InitialHappiness,
		Energy:    InitialEnergy,
	}
	if rec != nil {
		if rec.Hunger != nil {
			st.Hunger = clamp(*rec.Hunger)
		}
		if rec.Happiness != nil {
			st.Happiness = clamp(*rec.Happiness)
		}
		if rec.Energy != nil {
			st.Energy = clamp(*rec.Energy)
		}
		if rec.AgeDays != nil && *rec.AgeDays > 0 {
			st.AgeDays = *rec.AgeDays
		}
		s.logger.Info("loaded pet",
			"hunger", st.Hunger, "happiness", st.Happiness,
			"energy", st.Energy, "age_days", st.AgeDays)
	} else {
		s.logger.Info("new pet born", "name", st.Name)
	}

	st.Born = s.clock()
	st.Mood = DeriveMood(st.Sleeping, st.Hunger, st.Happiness)
	s.state = st
	s.ticks = 0
}

// Tick advances the counter once and applies whatever cadences come
// due. The decay, save, and age cadences are independent modulo checks
// against the same counter, so they stay phase-locked for the life of
// the process. Persistence itself is the host's job; Tick only reports
// that a save is due.
func (s *Simulator) Tick() TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticks++
	var res TickResult

	if s.ticks%uint64(s.cfg.DecayCycleTicks) == 0 {
		s.decayCycle()
	}
	if s.ticks%uint64(s.cfg.SaveCycleTicks) == 0 {
		res.SaveDue = true
	}
	if s.ticks%uint64(s.cfg.AgeCycleTicks) == 0 && s.ticks > 0 {
		s.state.AgeDays++
		s.logger.Info("pet aged up", "age_days", s.state.AgeDays)
	}
	return res
}

// decayCycle applies one round of stat drift. Caller holds the lock.
func (s *Simulator) decayCycle() {
	st := &s.state

	if st.Sleeping {
		st.Energy += s.cfg.EnergyRegen
		// Hunger still grows while asleep, just slower
		st.Hunger += s.cfg.SleepHungerRate
		if st.Energy >= s.cfg.WakeThreshold {
			st.Sleeping = false
			s.logger.Info("pet woke up", "energy", st.Energy)
		}
	} else {
		st.Hunger += s.cfg.HungerRate
		if st.Happiness > MinStat {
			st.Happiness -= s.cfg.HappinessDecay
		}
		if st.Energy > MinStat {
			st.Energy -= s.cfg.EnergyDrain
		}

		if st.OwnerPresent && st.Happiness <= PresenceBoostCeiling {
			st.Happiness += s.cfg.PresenceBoost
		}

		if st.Energy <= s.cfg.SleepThreshold {
			st.Sleeping = true
			s.logger.Info("pet fell asleep exhausted", "energy", st.Energy)
		}
	}

	st.Hunger = clamp(st.Hunger)
	st.Happiness = clamp(st.Happiness)
	st.Energy = clamp(st.Energy)
	st.Mood = DeriveMood(st.Sleeping, st.Hunger, st.Happiness)
}

// Feed reduces hunger. A sleeping pet refuses food: the caller gets
// false so it can show a hint instead of treating it as an error.
func (s *Simulator) Feed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Sleeping {
		return false
	}
	s.state.Hunger = clamp(s.state.Hunger - s.cfg.FeedAmount)
	s.state.LastFed = s.clock()
	s.state.Mood = DeriveMood(s.state.Sleeping, s.state.Hunger, s.state.Happiness)
	s.logger.Debug("fed", "hunger", s.state.Hunger)
	return true
}

// Pet boosts happiness. Petting a sleeping pet wakes it first, then
// the boost still lands in the same call.
func (s *Simulator) Pet() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Sleeping {
		s.state.Sleeping = false
		s.logger.Info("pet woken by petting")
	}
	s.state.Happiness = clamp(s.state.Happiness + s.cfg.PetHappinessBoost)
	s.state.LastPetted = s.clock()
	s.state.Mood = DeriveMood(s.state.Sleeping, s.state.Hunger, s.state.Happiness)
	s.logger.Debug("petted", "happiness", s.state.Happiness)
}

// ToggleSleepOrShutdown implements long-press semantics: an awake pet
// is put to sleep manually; a sleeping pet turns the press into a
// shutdown request. The simulator does nothing further on shutdown —
// the host saves and powers down.
func (s *Simulator) ToggleSleepOrShutdown() LongPressOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Sleeping {
		s.state.Sleeping = true
		s.state.Mood = DeriveMood(true, s.state.Hunger, s.state.Happiness)
		s.logger.Info("manual sleep")
		return LongPressSlept
	}
	s.logger.Info("shutdown requested")
	return LongPressShutdown
}

// SetPresence records whether the owner is currently observed. Only
// the rising edge stamps LastSeen; repeated true calls are idempotent.
func (s *Simulator) SetPresence(present bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if present && !s.state.OwnerPresent {
		s.state.LastSeen = s.clock()
		s.logger.Info("owner detected")
	}
	s.state.OwnerPresent = present
}

// State returns a copy of the live state for read-only use.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns the durable subset of the current state.
func (s *Simulator) Snapshot() Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	hunger := s.state.Hunger
	happiness := s.state.Happiness
	energy := s.state.Energy
	ageDays := s.state.AgeDays
	return Record{
		Hunger:    &hunger,
		Happiness: &happiness,
		Energy:    &energy,
		AgeDays:   &ageDays,
	}
}

func clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
