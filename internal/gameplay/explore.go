package gameplay

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dystoria/internal/frontend/console"
	"github.com/cory-johannsen/dystoria/internal/game/actor"
	"github.com/cory-johannsen/dystoria/internal/game/npc"
	"github.com/cory-johannsen/dystoria/internal/game/tactic"
)

// explore travels, draws an enemy and runs engagement turns until the enemy
// falls, the champion falls, or the player walks away.
func (g *Game) explore(ctx context.Context) (Outcome, error) {
	c := g.champion
	if c.Travel(g.cfg.HungerPerExplore, g.cfg.StarvationDamage) {
		g.logger.Info("starvation", zap.Int("damage", g.cfg.StarvationDamage), zap.Int("health", c.Health().Value()))
		if err := g.console.WriteLine(g.console.Style(console.Yellow, fmt.Sprintf(
			"You are starving! You lose %d health. Health: %d", g.cfg.StarvationDamage, c.Health().Value()))); err != nil {
			return Ongoing, err
		}
		if c.IsDefeated() {
			return Defeat, g.console.WriteLine(g.console.Style(console.Red, "You have been defeated."))
		}
	}

	enemy, ok := g.sanctuary.RandomEnemy(g.src)
	if !ok {
		return Ongoing, g.console.WriteLine(fmt.Sprintf("No enemies remain near %s.", g.sanctuary.Name()))
	}
	g.logger.Info("encounter",
		zap.String("enemy", enemy.Name()),
		zap.String("enemy_id", enemy.ID()),
		zap.Int("enemy_health", enemy.Health().Value()),
	)
	if err := g.console.WriteLine(g.console.Style(console.BrightMagenta, fmt.Sprintf("You encounter a %s!", enemy.Name()))); err != nil {
		return Ongoing, err
	}

	for !enemy.IsDefeated() {
		if err := ctx.Err(); err != nil {
			return Quit, err
		}
		attack, err := g.console.AskYesNo(fmt.Sprintf("Do you want to attack the %s? (yes/no): ", enemy.Name()))
		if err != nil {
			return Ongoing, err
		}
		if !attack {
			return Ongoing, g.console.WriteLine("You choose to avoid the fight.")
		}

		outcome, err := g.engage(enemy)
		if err != nil || outcome != Ongoing {
			return outcome, err
		}
		if enemy.IsDefeated() {
			break
		}

		if c.Exposed() {
			dmg := enemy.Attack(c)
			g.logger.Info("counterattack",
				zap.String("enemy", enemy.Name()),
				zap.Int("damage", dmg),
				zap.Int("health", c.Health().Value()),
			)
			if err := g.console.WriteLine(g.console.Style(console.Red, fmt.Sprintf(
				"%s attacks %s for %d damage. %s's health: %d", enemy.Name(), c.Name(), dmg, c.Name(), c.Health().Value()))); err != nil {
				return Ongoing, err
			}
		}
		if c.IsDefeated() {
			g.logger.Info("champion defeated", zap.String("enemy", enemy.Name()))
			return Defeat, g.console.WriteLine(g.console.Style(console.Red, "You have been defeated."))
		}
	}
	return Ongoing, nil
}

// engage runs one attack turn with the first bow carried.
func (g *Game) engage(enemy *npc.Enemy) (Outcome, error) {
	c := g.champion
	bow, ok := c.Inventory().FirstBow()
	if !ok {
		return Ongoing, g.console.WriteLine("No weapon to attack with!")
	}

	t := &promptTactician{console: g.console}
	res, err := c.Attack(enemy, bow, t, g.src)
	if t.err != nil {
		return Ongoing, t.err
	}
	if err != nil {
		return Ongoing, g.console.WriteLine(err.Error())
	}
	g.logger.Info("attack",
		zap.String("enemy", enemy.Name()),
		zap.String("outcome", res.Outcome.String()),
		zap.Int("roll", res.Roll),
		zap.Int("damage", res.Damage),
		zap.Stringer("noise_roll", res.NoiseRoll),
		zap.Int("noise", res.Noise),
		zap.Int("visibility", res.Visibility),
	)
	if err := g.report(enemy, res); err != nil {
		return Ongoing, err
	}

	if res.Outcome != actor.Defeated {
		return Ongoing, nil
	}
	g.sanctuary.RemoveEnemy(enemy)
	g.logger.Info("enemy defeated", zap.String("enemy", enemy.Name()), zap.Int("remaining", len(g.sanctuary.Enemies())))
	if err := g.console.WriteLine(g.console.Style(console.Green, fmt.Sprintf("You defeated the %s!", enemy.Name()))); err != nil {
		return Ongoing, err
	}
	if g.sanctuary.Cleared() {
		return Victory, g.console.WriteLine(g.console.Style(console.BrightGreen, "Congratulations! You have defeated all the enemies!"))
	}
	return Ongoing, nil
}

// report narrates an attack turn.
func (g *Game) report(enemy *npc.Enemy, res actor.AttackResult) error {
	c := g.champion
	var lines []string
	switch res.Outcome {
	case actor.Hit:
		lines = append(lines,
			fmt.Sprintf("%s was hit for %d damage, %d health remaining.", enemy.Name(), res.Damage, enemy.Health().Value()),
			fmt.Sprintf("%s is %s.", enemy.Name(), enemy.HealthDescription()))
	case actor.Defeated:
		lines = append(lines,
			fmt.Sprintf("%s was hit for %d damage, %d health remaining.", enemy.Name(), res.Damage, enemy.Health().Value()),
			fmt.Sprintf("%s has been defeated.", enemy.Name()))
	case actor.Reloaded:
		lines = append(lines, "No arrows left, reloading...",
			fmt.Sprintf("Arrows reloaded: %d from %s.", res.Reloaded, res.Quiver.Name()))
	case actor.NoQuiver:
		lines = append(lines, "No arrows left, reloading...", "No quiver available to reload arrows.")
	case actor.TooVisible:
		if res.Tactic != nil {
			lines = append(lines, fmt.Sprintf("%s Current visibility: %d, Health: %d.",
				res.Tactic.Description, res.Visibility-res.Noise, c.Health().Value()))
		}
	}
	lines = append(lines, fmt.Sprintf("%s's visibility increased to %d.", c.Name(), res.Visibility))
	for _, line := range lines {
		if err := g.console.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// promptTactician asks the player for a stealth tactic. A read failure is
// kept in err because the Tactician interface cannot return one.
type promptTactician struct {
	console *console.Console
	err     error
}

func (p *promptTactician) ChooseTactic(options []tactic.Tactic) (tactic.Tactic, bool) {
	if p.err != nil || len(options) == 0 {
		return tactic.Tactic{}, false
	}
	if p.err = p.console.WriteLine(p.console.Style(console.Yellow, "You are too visible to attack stealthily. Choose a stealth tactic:")); p.err != nil {
		return tactic.Tactic{}, false
	}
	for i, t := range options {
		if p.err = p.console.Printf("%d. %s", i+1, t.Name); p.err != nil {
			return tactic.Tactic{}, false
		}
	}
	var reply string
	reply, p.err = p.console.Ask(fmt.Sprintf("Choose a tactic (1-%d): ", len(options)))
	if p.err != nil {
		return tactic.Tactic{}, false
	}
	n, err := strconv.Atoi(reply)
	if err != nil || n < 1 || n > len(options) {
		p.err = p.console.WriteLine("Invalid tactic. No changes made.")
		return tactic.Tactic{}, false
	}
	return options[n-1], true
}
