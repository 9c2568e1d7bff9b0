package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chamber/internal/config"
	"chamber/internal/format"
	"chamber/internal/games"
	"chamber/internal/player"
	"chamber/internal/save"
	"chamber/internal/session"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogger()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sess, err := newSession(cfg, true)
			if err != nil {
				return err
			}
			defer sess.Close()

			res := sess.LoadNow()
			switch res.Status {
			case save.LoadApplied:
				fmt.Println("Save loaded.")
			case save.LoadNotFound:
				fmt.Println("No save found, starting fresh.")
			case save.LoadCorrupt:
				fmt.Println("Save file is corrupt or tampered with; starting fresh in memory.")
			case save.LoadInvalid:
				fmt.Println("Save file contains implausible values; starting fresh in memory.")
			case save.LoadIOError:
				fmt.Println("Could not read the save file; starting fresh in memory.")
			}

			runMenu(sess, cfg.SettingsFile)
			return nil
		},
	}
}

func runMenu(sess *session.Session, settingsPath string) {
	in := bufio.NewReader(os.Stdin)
	for {
		snap := sess.Snapshot()
		fmt.Printf("\n=== CHAMBER === balance $%s | level %s | xp %s/%s\n",
			format.Amount(snap.Balance), format.Amount(snap.Level),
			format.Amount(snap.XP), format.Amount(snap.XPToLevel))
		fmt.Println(" 1. Roulette        2. Double or Nothing  3. Progressive Jackpot")
		fmt.Println(" 4. Bonus Round     5. Coin Flip          6. Shop")
		fmt.Println(" 7. Stats           8. Achievements       9. Daily Challenges")
		fmt.Println("10. Save           11. Load              12. Settings")
		fmt.Println("13. Quit")

		choice, ok := promptInt(in, "Choose an option: ", 1, 13)
		if !ok {
			fmt.Println("\nLeaving the table.")
			return
		}

		switch choice {
		case 1:
			playWager(sess, in, games.ModeRoulette)
		case 2:
			playWager(sess, in, games.ModeDoubleOrNothing)
		case 3:
			playWager(sess, in, games.ModeJackpot)
		case 4:
			playBonus(sess, in)
		case 5:
			playWager(sess, in, games.ModeCoinFlip)
		case 6:
			browseShop(sess, in)
		case 7:
			printStats(sess.Snapshot())
		case 8:
			printAchievements(sess)
		case 9:
			showChallenges(sess, in)
		case 10:
			if err := sess.SaveNow(); err != nil {
				fmt.Println("Save failed; your progress stays in memory.")
			} else {
				fmt.Println("Game saved.")
			}
		case 11:
			res := sess.LoadNow()
			if res.Status == save.LoadApplied {
				fmt.Println("Game loaded.")
			} else {
				fmt.Println("Load did not apply; current progress kept.")
			}
		case 12:
			editSettings(sess, in, settingsPath)
		case 13:
			fmt.Println("Thanks for playing. Goodbye!")
			return
		}
	}
}

// playWager walks one round of a betting game: stipend, bet prompt, choice
// prompt, resolution. Invalid input re-prompts and never counts as a round.
func playWager(sess *session.Session, in *bufio.Reader, mode games.Mode) {
	if granted, notify := sess.EnsureStake(); granted && notify {
		fmt.Printf("\nYou're broke! Here's $%s on the house so you can keep playing.\n",
			format.Amount(player.Stipend))
	}

	snap := sess.Snapshot()
	fmt.Printf("\nBalance: $%s", format.Amount(snap.Balance))
	if mode == games.ModeJackpot {
		fmt.Printf(" | jackpot pool: $%s", format.Amount(snap.JackpotPool))
	}
	fmt.Println()

	for {
		bet, ok := promptInt64(in, fmt.Sprintf("Enter bet ($1 - $%s): $", format.Amount(snap.Balance)))
		if !ok {
			return
		}

		choice := 0
		switch mode {
		case games.ModeRoulette:
			choice, ok = promptInt(in, "Pick a chamber (1-10): ", 1, 10)
		case games.ModeCoinFlip:
			choice, ok = promptInt(in, "Heads (1) or tails (2)? ", 1, 2)
		case games.ModeDoubleOrNothing:
			choice, ok = promptInt(in, "Pick a number (1 or 2): ", 1, 2)
		}
		if !ok {
			return
		}

		report, err := sess.Play(mode, bet, choice)
		switch err {
		case nil:
			printRound(report)
			return
		case games.ErrInvalidBet:
			fmt.Println("Bet must be greater than zero.")
		case games.ErrInsufficientBet:
			fmt.Println("You don't have that much.")
		case games.ErrBetCapExceeded:
			fmt.Println("Roulette bets are capped at half your balance.")
		case games.ErrInvalidChoice:
			fmt.Println("That pick is out of range.")
		default:
			fmt.Println("Could not resolve the round:", err)
			return
		}
	}
}

func playBonus(sess *session.Session, in *bufio.Reader) {
	fmt.Println("\n=== BONUS ROUND === guess the number from 1 to 5, three tries")
	round := sess.StartBonus()
	for !round.Done() {
		guess, ok := promptInt(in, fmt.Sprintf("%d tries left. Your guess: ", round.Remaining()), 1, 5)
		if !ok {
			return
		}
		hint, err := round.Guess(guess)
		if err != nil {
			fmt.Println("Guess a number from 1 to 5.")
			continue
		}
		switch hint {
		case games.HintHit:
			fmt.Printf("You got it! The number was %d.\n", round.Secret())
		case games.HintHigher:
			fmt.Println("Higher...")
		case games.HintLower:
			fmt.Println("Lower...")
		}
	}
	report := sess.FinishBonus(round)
	if report.Outcome.BalanceDelta > 0 {
		fmt.Printf("Bonus: $%s\n", format.Amount(report.Outcome.BalanceDelta))
	} else {
		fmt.Printf("No luck. The number was %d.\n", round.Secret())
	}
	printRoundExtras(report)
}

func printRound(report session.RoundReport) {
	o := report.Outcome
	fmt.Printf("The draw lands on %d.\n", o.Drawn)
	switch o.Result {
	case player.ResultWin:
		fmt.Printf("You won $%s!\n", format.Amount(o.Winnings))
	case player.ResultJackpotWin:
		fmt.Printf("JACKPOT! The whole pool is yours: $%s!\n", format.Amount(o.Winnings))
	case player.ResultLoss:
		fmt.Printf("BANG. You lost $%s.\n", format.Amount(o.Loss))
	case player.ResultJackpotLoss:
		fmt.Printf("No jackpot this time. Your $%s feeds the pool.\n", format.Amount(o.Loss))
	}
	printRoundExtras(report)
}

func printRoundExtras(report session.RoundReport) {
	if report.LevelsGained > 0 {
		fmt.Println("Level up!")
	}
	for _, a := range report.UnlockedAchievement {
		fmt.Printf("ACHIEVEMENT UNLOCKED: %s (+$%s)\n", a.Name, format.Amount(a.Reward))
	}
	for _, c := range report.CompletedChallenges {
		fmt.Printf("Daily challenge complete: %s\n", c.Name)
	}
	if report.Saved {
		fmt.Println("(auto-saved)")
	}
}

func browseShop(sess *session.Session, in *bufio.Reader) {
	items, done := sess.VisitShop()
	for _, c := range done {
		fmt.Printf("Daily challenge complete: %s\n", c.Name)
	}
	fmt.Printf("\n=== SHOP === balance $%s\n", format.Amount(sess.Snapshot().Balance))
	for _, item := range items {
		fmt.Printf("%2d. %-20s $%s\n", item.ID, item.Name, format.Amount(item.Price))
	}
	id, ok := promptInt(in, "Buy which item (0 to leave)? ", 0, len(items))
	if !ok || id == 0 {
		return
	}
	item, err := sess.Purchase(id)
	if err != nil {
		fmt.Println("Purchase failed:", err)
		return
	}
	fmt.Printf("You bought %s. Balance: $%s\n", item.Name, format.Amount(sess.Snapshot().Balance))
}

func printStats(snap player.State) {
	fmt.Println("\n=== STATS ===")
	fmt.Printf("Balance:        $%s\n", format.Amount(snap.Balance))
	fmt.Printf("Level:          %s (xp %s/%s)\n", format.Amount(snap.Level),
		format.Amount(snap.XP), format.Amount(snap.XPToLevel))
	fmt.Printf("Games played:   %s\n", format.Amount(snap.GamesPlayed))
	fmt.Printf("Total winnings: $%s\n", format.Amount(snap.TotalWinnings))
	fmt.Printf("Total losses:   $%s\n", format.Amount(snap.TotalLosses))
	fmt.Printf("Win streak:     %s (best %s)\n", format.Amount(snap.WinStreak),
		format.Amount(snap.MaxWinStreak))
	fmt.Printf("Jackpot pool:   $%s\n", format.Amount(snap.JackpotPool))
}

func printAchievements(sess *session.Session) {
	catalog, unlocked := sess.Achievements()
	fmt.Println("\n=== ACHIEVEMENTS ===")
	count := 0
	for _, a := range catalog {
		mark := " "
		if unlocked[a.ID] {
			mark = "x"
			count++
		}
		fmt.Printf("[%s] %-20s %s (reward $%s)\n", mark, a.Name, a.Description, format.Amount(a.Reward))
	}
	fmt.Printf("Unlocked %d of %d.\n", count, len(catalog))
}

func showChallenges(sess *session.Session, in *bufio.Reader) {
	fmt.Println("\n=== DAILY CHALLENGES ===")
	unclaimed := int64(0)
	for _, c := range sess.Challenges() {
		mark := " "
		if c.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %-30s reward $%s\n", mark, c.Name, format.Amount(c.Reward))
		if c.Completed && !c.Claimed {
			unclaimed += c.Reward
		}
	}
	if unclaimed == 0 {
		return
	}
	fmt.Printf("Unclaimed rewards: $%s\n", format.Amount(unclaimed))
	yes, ok := promptText(in, "Claim them now? (y/n): ")
	if ok && strings.EqualFold(yes, "y") {
		total := sess.ClaimChallengeRewards()
		fmt.Printf("Claimed $%s. Balance: $%s\n",
			format.Amount(total), format.Amount(sess.Snapshot().Balance))
	}
}

func editSettings(sess *session.Session, in *bufio.Reader, settingsPath string) {
	s := &sess.Settings
	fmt.Println("\n=== SETTINGS ===")
	fmt.Printf("1. Typewriter text:  %v\n", s.TypewriterEnabled)
	fmt.Printf("2. Auto-save:        %v\n", s.AutoSaveEnabled)
	fmt.Printf("3. Cloud sync:       %v\n", sess.State.CloudSyncEnabled)
	choice, ok := promptInt(in, "Toggle which (0 to leave)? ", 0, 3)
	if !ok || choice == 0 {
		return
	}
	switch choice {
	case 1:
		s.TypewriterEnabled = !s.TypewriterEnabled
	case 2:
		s.AutoSaveEnabled = !s.AutoSaveEnabled
	case 3:
		sess.State.CloudSyncEnabled = !sess.State.CloudSyncEnabled
		s.CloudSyncEnabled = sess.State.CloudSyncEnabled
	}
	if err := config.SaveSettings(settingsPath, *s); err != nil {
		fmt.Println("Could not write settings; changes apply to this session only.")
	}
}

// prompt helpers: every invalid entry re-prompts; EOF bails out.

func promptText(in *bufio.Reader, prompt string) (string, bool) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func promptInt(in *bufio.Reader, prompt string, lo, hi int) (int, bool) {
	for {
		text, ok := promptText(in, prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(text)
		if err != nil || v < lo || v > hi {
			fmt.Printf("Please enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return v, true
	}
}

func promptInt64(in *bufio.Reader, prompt string) (int64, bool) {
	for {
		text, ok := promptText(in, prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil || v <= 0 {
			fmt.Println("Please enter a positive number.")
			continue
		}
		return v, true
	}
}
