package session

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bondten/internal/gems"
	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/problemgen"
	sess "github.com/abhisek/bondten/internal/session"
	"github.com/abhisek/bondten/internal/strategy"
	"github.com/abhisek/bondten/internal/ui/components"
	"github.com/abhisek/bondten/internal/ui/theme"
)

// renderRound renders the active problem display.
func (s *SessionScreen) renderRound(width, height int) string {
	state := s.state
	if state == nil || state.CurrentProblem == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Building a problem...")
	}

	var b strings.Builder

	// Info line: level on the left, progress and timer on the right.
	levelName := fmt.Sprintf("Level %d", state.Level)
	if lvl, ok := levels.Get(state.Level); ok {
		levelName = fmt.Sprintf("Level %d · %s", lvl.Number, lvl.Name)
	}

	mins := int(state.Elapsed.Minutes())
	secs := int(state.Elapsed.Seconds()) % 60

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + levelName)

	infoRight := components.RoundPips(state.RoundsServed, state.Config.Rounds) +
		"  " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓") +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %d  ⏱ %d:%02d", state.CorrectRounds, mins, secs))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	p := state.CurrentProblem

	// Problem text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(p.Text()))
	b.WriteString("\n\n")

	// Input area.
	switch {
	case s.bondActive:
		b.WriteString(s.renderBondStage(width))
	case s.mcActive:
		b.WriteString(s.renderChoiceStage(width))
	default:
		b.WriteString(s.renderAnswerStage(width))
	}

	return b.String()
}

// renderBondStage renders the split prompt with the bond circles.
func (s *SessionScreen) renderBondStage(width int) string {
	state := s.state
	p := state.CurrentProblem

	var b strings.Builder

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(splitPrompt(p))
	b.WriteString(prompt)
	b.WriteString("\n\n")

	splitNum := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("%d", p.Operand2))
	bond := lipgloss.JoinVertical(lipgloss.Center, splitNum, s.bond.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bond))
	b.WriteString("\n")

	b.WriteString(s.renderRetryLine(width))
	return b.String()
}

// renderChoiceStage renders the option list for basic problems.
func (s *SessionScreen) renderChoiceStage(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick 1-4 or use arrows + Enter"))
	b.WriteString("\n")
	b.WriteString(s.renderRetryLine(width))
	return b.String()
}

// renderAnswerStage renders the numeric answer input after a split.
func (s *SessionScreen) renderAnswerStage(width int) string {
	state := s.state

	var b strings.Builder

	// Acknowledge the accepted split.
	if state.LastAnswerCorrect && state.LastMessage != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("✓ " + state.LastMessage))
		b.WriteString("\n\n")
	}

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
	b.WriteString(answerLine)
	b.WriteString("\n")
	b.WriteString(s.renderRetryLine(width))
	return b.String()
}

// renderRetryLine shows the hint and remaining tries after a wrong guess.
func (s *SessionScreen) renderRetryLine(width int) string {
	state := s.state
	if state.Round == nil || state.Round.WrongGuesses() == 0 || state.LastAnswerCorrect {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if state.LastMessage != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(state.LastMessage))
		b.WriteString("\n")
	}
	if state.LastHint != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Hint: " + state.LastHint))
		b.WriteString("\n")
	}

	tries := state.Round.TriesLeft()
	label := "tries"
	if tries == 1 {
		label = "try"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d %s left", tries, label)))

	return b.String()
}

// splitPrompt words the bond instruction for the problem's strategy.
func splitPrompt(p *problemgen.Problem) string {
	switch {
	case p.Strategy == strategy.StrategyMakeTen:
		return fmt.Sprintf("Split %d so one part makes ten with %d", p.Operand2, p.Operand1)
	case p.Operation == strategy.OpSubtraction:
		return fmt.Sprintf("Split %d to take away in two easy steps", p.Operand2)
	}
	return fmt.Sprintf("Split %d to bridge over ten", p.Operand2)
}

// renderFeedback renders the resolution overlay between rounds.
func (s *SessionScreen) renderFeedback(width, height int) string {
	state := s.state
	p := state.CurrentProblem

	var b strings.Builder
	b.WriteString("\n\n")

	if state.LastAnswerCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if p != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%d %s %d = %d", p.Operand1, p.Operation.Symbol(), p.Operand2, p.Answer)))
		}
	}

	b.WriteString("\n\n")

	// Revealed options for basic problems.
	if s.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
		b.WriteString("\n")
	}

	// Worked solution.
	if p != nil && p.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.Text)
		exp := expStyle.Render(p.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	// Ten-frame after a miss on a make-ten problem, so the gap to ten
	// is something to see, not just words.
	if p != nil && p.Strategy == strategy.StrategyMakeTen && !state.LastAnswerCorrect {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.TenFrame(p.Operand1)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d needs %d more to make 10", p.Operand1, 10-p.Operand1)))
		b.WriteString("\n\n")
	}

	// Gem award banner.
	if award := state.PendingGemAward; award != nil {
		gemStyle := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(rarityColor(award.Rarity)).
			Bold(true)
		b.WriteString(gemStyle.Render(fmt.Sprintf("%s %s gem earned!", award.Type.Icon(), award.Type.DisplayName())))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(award.Reason))
		b.WriteString("\n\n")
	}

	// Level change banner.
	if change := state.PendingLevelChange; change != nil {
		b.WriteString(renderLevelBanner(change, width))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderLevelBanner announces a promotion or demotion between rounds.
func renderLevelBanner(change *sess.LevelChange, width int) string {
	var b strings.Builder

	name := fmt.Sprintf("Level %d", change.To)
	if lvl, ok := levels.Get(change.To); ok {
		name = fmt.Sprintf("Level %d · %s", lvl.Number, lvl.Name)
	}

	if change.To > change.From {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render("⛰ Level up!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("Welcome to " + name))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render("Easing off a little"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("Back to " + name + " to warm up"))
	}

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Setting up your practice...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func rarityColor(r gems.Rarity) color.Color {
	switch r {
	case gems.RarityLegendary:
		return theme.ArcadeYellow
	case gems.RarityEpic:
		return theme.Primary
	case gems.RarityRare:
		return theme.Secondary
	default:
		return theme.TextDim
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
