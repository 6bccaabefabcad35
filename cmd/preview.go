package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/problemgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated problems for a level (no database)",
	Long: `Generate and interactively answer problems for a specific level.

This is a stateless developer tool — no database, no progress tracking, no
events. Useful for evaluating problem quality and tuning level profiles.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("level", 1, "Difficulty level to sample from")
	previewCmd.Flags().Int("count", 5, "Number of problems to generate")
	previewCmd.Flags().Uint64("seed", 0, "Random seed for reproducible output (0 = random)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	levelNum, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")

	lvl, ok := levels.Get(levelNum)
	if !ok {
		return fmt.Errorf("level %d out of range %d-%d", levelNum, levels.MinLevel, levels.MaxLevel)
	}

	gen := problemgen.New(problemgen.DefaultConfig())
	if seed != 0 {
		gen = problemgen.NewSeeded(problemgen.DefaultConfig(), seed)
	}
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Level %d: %s — %s\n", lvl.Number, lvl.Name, lvl.Tagline)
	fmt.Printf("Generating %d problems...\n\n", count)

	var correct, answered int
	var recent []string

	for i := 1; i <= count; i++ {
		p, err := gen.Generate(problemgen.GenerateInput{
			Level:  lvl.Number,
			Recent: recent,
		})
		if err != nil {
			fmt.Printf("Problem %d: generation failed: %v\n\n", i, err)
			continue
		}
		recent = append(recent, p.Key())

		fmt.Printf("── Problem %d/%d (%s) ──\n", i, count, p.Strategy.DisplayName())
		fmt.Println(p.Text())
		for j, opt := range p.Options {
			fmt.Printf("  %d) %d\n", j+1, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		answered++
		if n, err := strconv.Atoi(raw); err == nil && n == p.Answer {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %d\n", p.Answer)
		}

		if p.Explanation != "" {
			fmt.Printf("Hint: %s\n", p.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}
