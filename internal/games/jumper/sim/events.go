package sim

// Events summarizes what happened during one or more steps. Presentation
// layers use it for sound or UI cues; the simulation never reads it back.
type Events struct {
	Steps           int
	Landings        int
	SpringJumps     int
	Orbs            int
	Jetpacks        int
	Shields         int
	EnemiesDefeated int
	ShieldBlocks    int

	RunEnded bool
	Cause    EndCause
}

// Merge folds later events into e.
func (e *Events) Merge(o Events) {
	e.Steps += o.Steps
	e.Landings += o.Landings
	e.SpringJumps += o.SpringJumps
	e.Orbs += o.Orbs
	e.Jetpacks += o.Jetpacks
	e.Shields += o.Shields
	e.EnemiesDefeated += o.EnemiesDefeated
	e.ShieldBlocks += o.ShieldBlocks
	if o.RunEnded {
		e.RunEnded = true
		e.Cause = o.Cause
	}
}
