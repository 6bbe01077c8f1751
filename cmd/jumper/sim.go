package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-jumper/internal/config"
	"github.com/vovakirdan/sky-jumper/internal/core"
	"github.com/vovakirdan/sky-jumper/internal/games/jumper/sim"
)

// defaultSimSeed is the seed of the recorded golden runs.
const defaultSimSeed = 428202

var (
	flagSimRuleset string
	flagDuration   time.Duration
	flagPointer    float64
	flagTilt       float64
	flagKeys       string
	flagMenu       bool
	flagHash       bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless and print a snapshot",
	Long: `Run a deterministic simulation without a terminal UI and print the
diagnostic snapshot as JSON. The same seed, ruleset, input and duration
always produce the same snapshot.

Only one input may be given; without one the player does not steer.

Examples:
  jumper sim
  jumper sim --seed 42 --duration 3s
  jumper sim --pointer 100 --duration 500ms
  jumper sim --tilt -0.6 --ruleset pro
  jumper sim --keys right --ruleset classic --hash`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimRuleset, "ruleset", string(config.RulesetPro), "Ruleset: pro or classic")
	simCmd.Flags().DurationVar(&flagDuration, "duration", time.Second, "Simulated time to advance")
	simCmd.Flags().Float64Var(&flagPointer, "pointer", 0, "Hold the pointer at this world x")
	simCmd.Flags().Float64Var(&flagTilt, "tilt", 0, "Hold the device tilted by this raw amount in [-1, 1]")
	simCmd.Flags().StringVar(&flagKeys, "keys", "", "Hold a steering key: left or right")
	simCmd.Flags().BoolVar(&flagMenu, "menu", false, "Stay on the title screen instead of starting a run")
	simCmd.Flags().BoolVar(&flagHash, "hash", false, "Also log the exact state hash")
}

func runSim(cmd *cobra.Command, _ []string) error {
	game, err := newGame(flagSimRuleset)
	if err != nil {
		return err
	}
	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}
	if flagDuration < 0 {
		return errors.New("--duration must not be negative")
	}

	seed := uint32(defaultSimSeed)
	if cmd.Flags().Changed("seed") {
		seed = uint32(flagSeed) //#nosec G115 -- seeds wrap
	}

	state, err := sim.New(cfg)
	if err != nil {
		return err
	}
	state.InitRun(seed)
	if !flagMenu {
		if err := state.Start(seed); err != nil {
			return err
		}
	}

	in, tilt, err := simInput(cmd)
	if err != nil {
		return err
	}

	driver := sim.NewDriver(state, flagFPS)
	var ev sim.Events
	if tilt {
		// The filter smooths the reading every step, like a sensor would
		filter := sim.NewTiltFilter(cfg.Steering.TiltSmoothing)
		steps := core.NewClock(flagFPS, 0).Advance(flagDuration)
		for range steps {
			ev.Merge(driver.Steps(1, sim.Input{Source: sim.SourceTilt, Tilt: filter.Update(flagTilt)}))
		}
	} else {
		ev = driver.Advance(flagDuration, in)
	}

	logger.Debug("simulated", "seed", seed, "steps", ev.Steps, "landings", ev.Landings,
		"orbs", ev.Orbs, "ended", ev.RunEnded, "cause", ev.Cause)
	if flagHash {
		logger.Info("state", "hash", fmt.Sprintf("%016x", state.Hash()))
	}

	out, err := state.Snapshot().JSON()
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// simInput builds the held input from flags. The bool reports a tilt
// input, which needs per-step filtering.
func simInput(cmd *cobra.Command) (sim.Input, bool, error) {
	var inputs []string
	for _, name := range []string{"pointer", "tilt", "keys"} {
		if cmd.Flags().Changed(name) {
			inputs = append(inputs, "--"+name)
		}
	}
	if len(inputs) > 1 {
		return sim.Input{}, false, fmt.Errorf("only one input may be given, got %v", inputs)
	}

	switch {
	case cmd.Flags().Changed("pointer"):
		return sim.Input{Source: sim.SourcePointer, PointerX: flagPointer}, false, nil
	case cmd.Flags().Changed("tilt"):
		return sim.Input{}, true, nil
	case flagKeys == "left":
		return sim.Input{Source: sim.SourceKeys, Left: true}, false, nil
	case flagKeys == "right":
		return sim.Input{Source: sim.SourceKeys, Right: true}, false, nil
	case flagKeys != "":
		return sim.Input{}, false, fmt.Errorf("--keys must be left or right, got %q", flagKeys)
	}
	return sim.Input{Source: sim.SourceNone}, false, nil
}
