package behavior

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"evader/internal/app/ports"
	"evader/internal/domain/arena"
)

const (
	FireInterval = 2 * time.Second
	MoveDelay    = 100 * time.Millisecond
	ShieldDelay  = 6 * time.Second
	TickInterval = 100 * time.Millisecond

	StreakLimit = 5

	registerAttempts   = 3
	registerRetryDelay = time.Second
)

// ErrRegistrationFailed is fatal: the agent never enters the tick loop.
var ErrRegistrationFailed = errors.New("registration failed after retries")

// Controller owns the per-agent behavior state and decides one
// coherent action sequence per tick. Log is optional; Sender,
// Identity, Rand, Now and Sleep must be set.
type Controller struct {
	Sender   ports.ActionSender
	Identity arena.Identity
	Rand     ports.Rand
	Log      *log.Logger
	Now      func() time.Time
	Sleep    func(time.Duration)

	startedAt       time.Time
	lastMoveAt      time.Time
	lastFireAt      time.Time
	facing          arena.Heading
	moveStreak      int
	rotatedThisTick bool
	shieldUp        bool
}

// Run registers, ticks until ctx is canceled, then unregisters
// best-effort. Cancellation is only observed at tick boundaries.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Register(ctx); err != nil {
		return err
	}
	defer c.Unregister(context.WithoutCancel(ctx))

	c.logf("agent running as %s", c.Identity.PlayerID)
	for {
		select {
		case <-ctx.Done():
			c.logf("interrupted, leaving match")
			return ctx.Err()
		default:
		}
		c.Step(ctx)
		c.Sleep(TickInterval)
	}
}

// Register joins the match, retrying with fixed spacing. On success it
// starts the shield timer and picks a random initial facing.
func (c *Controller) Register(ctx context.Context) error {
	for attempt := 1; attempt <= registerAttempts; attempt++ {
		c.logf("registering attempt %d/%d", attempt, registerAttempts)
		_, ok := c.Sender.Send(ctx, http.MethodPost, "register", map[string]any{
			"player_id": c.Identity.PlayerID,
			"name":      c.Identity.Name,
		})
		if ok {
			c.startedAt = c.Now()
			c.facing = arena.HeadingRight
			if c.Rand.Intn(2) == 0 {
				c.facing = arena.HeadingLeft
			}
			c.logf("registered as %s", c.Identity.PlayerID)
			return nil
		}
		if attempt < registerAttempts {
			c.Sleep(registerRetryDelay)
		}
	}
	return ErrRegistrationFailed
}

// Unregister leaves the match, best-effort.
func (c *Controller) Unregister(ctx context.Context) {
	if _, ok := c.Sender.Send(ctx, http.MethodPost, "unregister", c.playerPayload()); ok {
		c.logf("unregistered")
	}
}

// Step runs one tick: shield, fire, move, then the rotation rules.
func (c *Controller) Step(ctx context.Context) {
	if !c.shieldUp && c.Now().Sub(c.startedAt) > ShieldDelay {
		if c.shield(ctx) {
			c.shieldUp = true
			c.logf("shield activated")
		}
	}

	c.fire(ctx)

	attempted, moved := c.move(ctx)
	if !attempted {
		return
	}
	if !moved {
		// Wall hit: corrective reflex in the same tick.
		turn := c.randomTurn()
		c.logf("move rejected, rotating %s", turn)
		c.rotate(ctx, turn)
		return
	}
	if c.moveStreak >= StreakLimit && !c.rotatedThisTick {
		if c.Rand.Float64() < 0.5 {
			turn := c.randomTurn()
			c.logf("%d straight moves, rotating %s", StreakLimit, turn)
			c.rotate(ctx, turn)
		}
		c.moveStreak = 0
	}
	c.rotatedThisTick = false
}

// Facing reports the agent's current heading.
func (c *Controller) Facing() arena.Heading { return c.facing }

// MoveStreak reports consecutive successful moves since the last
// rotation or rejection.
func (c *Controller) MoveStreak() int { return c.moveStreak }

func (c *Controller) shield(ctx context.Context) bool {
	_, ok := c.Sender.Send(ctx, http.MethodPost, "shield", c.playerPayload())
	return ok
}

func (c *Controller) fire(ctx context.Context) bool {
	if c.Now().Sub(c.lastFireAt) < FireInterval {
		return false
	}
	if _, ok := c.Sender.Send(ctx, http.MethodPost, "fire", c.playerPayload()); !ok {
		return false
	}
	c.lastFireAt = c.Now()
	return true
}

// move reports whether a move was attempted this tick and, if so,
// whether the server accepted it. A rejected move zeroes the streak.
func (c *Controller) move(ctx context.Context) (attempted, moved bool) {
	if c.Now().Sub(c.lastMoveAt) < MoveDelay {
		return false, false
	}
	if _, ok := c.Sender.Send(ctx, http.MethodPost, "move", c.playerPayload()); !ok {
		c.moveStreak = 0
		return true, false
	}
	c.lastMoveAt = c.Now()
	c.moveStreak++
	return true, true
}

func (c *Controller) rotate(ctx context.Context, turn arena.Turn) bool {
	_, ok := c.Sender.Send(ctx, http.MethodPost, "rotate", map[string]any{
		"player_id": c.Identity.PlayerID,
		"direction": string(turn),
	})
	if !ok {
		return false
	}
	c.facing = turn.Apply(c.facing)
	c.rotatedThisTick = true
	c.moveStreak = 0
	return true
}

func (c *Controller) randomTurn() arena.Turn {
	if c.Rand.Intn(2) == 0 {
		return arena.TurnLeft
	}
	return arena.TurnRight
}

func (c *Controller) playerPayload() map[string]any {
	return map[string]any{"player_id": c.Identity.PlayerID}
}

func (c *Controller) logf(format string, args ...any) {
	if c.Log != nil {
		c.Log.Printf(format, args...)
	}
}
