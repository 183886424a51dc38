// Command regexrepl is a small REPL around the regex package: set a
// pattern, evaluate candidates against it via the NFA or the DFA, and see
// how long each evaluation took.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kanucool/Regex-Engine"
)

var (
	initialPattern string
	initialMode    string
)

var rootCmd = &cobra.Command{
	Use:   "regexrepl",
	Short: "Interactive REPL for the regex engine",
	RunE:  runRepl,
}

func init() {
	rootCmd.Flags().StringVar(&initialPattern, "pattern", "", "pattern to compile at startup")
	rootCmd.Flags().StringVar(&initialMode, "mode", "dfa-lazy", "DFA mode to pair with the pattern: dfa-eager or dfa-lazy")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session holds the REPL's current compiled pattern: an NFA-only Regex and
// a DFA Regex (eager or lazy, per the most recent "set regex" prompt), both
// always kept in sync with the same source pattern.
type session struct {
	pattern string
	dfaMode regex.Mode
	nfaRe   *regex.Regex
	dfaRe   *regex.Regex
}

func parseMode(s string) (regex.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfa-eager", "eager":
		return regex.DFAEager, nil
	case "dfa-lazy", "lazy":
		return regex.DFALazy, nil
	default:
		return 0, fmt.Errorf("unknown DFA mode %q (want dfa-eager or dfa-lazy)", s)
	}
}

func (s *session) setPattern(pattern string, dfaMode regex.Mode) error {
	nfaRe, err := regex.Compile([]byte(pattern), regex.NFAOnly)
	if err != nil {
		return err
	}
	dfaRe, err := regex.Compile([]byte(pattern), dfaMode)
	if err != nil {
		return err
	}
	s.pattern = pattern
	s.dfaMode = dfaMode
	s.nfaRe = nfaRe
	s.dfaRe = dfaRe
	return nil
}

func runRepl(cmd *cobra.Command, args []string) error {
	sess := &session{}

	if initialPattern != "" {
		mode, err := parseMode(initialMode)
		if err != nil {
			return err
		}
		if err := sess.setPattern(initialPattern, mode); err != nil {
			return fmt.Errorf("compiling --pattern: %w", err)
		}
	}

	rl, err := readline.New("regex> ")
	if err != nil {
		// readline needs a real terminal; fall back to a plain scanner so
		// the REPL still works when stdin is piped (e.g. in scripts/CI).
		return runPlain(sess, os.Stdin)
	}
	defer rl.Close()

	printMenu()
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}
		if shouldExit := handleChoice(sess, strings.TrimSpace(line), rl); shouldExit {
			return nil
		}
	}
}

// runPlain is the non-interactive fallback used when readline can't attach
// to a terminal.
func runPlain(sess *session, in io.Reader) error {
	printMenu()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if handleChoiceNoHistory(sess, strings.TrimSpace(scanner.Text()), scanner) {
			return nil
		}
	}
	return scanner.Err()
}

func printMenu() {
	fmt.Println("1) evaluate candidate via DFA")
	fmt.Println("2) evaluate candidate via NFA")
	fmt.Println("3) set regex")
	fmt.Println("4) exit")
}

func handleChoice(sess *session, choice string, rl *readline.Instance) bool {
	switch choice {
	case "1", "2":
		rl.SetPrompt("candidate> ")
		candidate, err := rl.Readline()
		rl.SetPrompt("regex> ")
		if err != nil {
			return false
		}
		evaluate(sess, choice, candidate)
	case "3":
		rl.SetPrompt("pattern> ")
		pattern, err := rl.Readline()
		if err != nil {
			rl.SetPrompt("regex> ")
			return false
		}
		rl.SetPrompt("mode (dfa-eager/dfa-lazy)> ")
		modeStr, err := rl.Readline()
		rl.SetPrompt("regex> ")
		if err != nil {
			return false
		}
		setRegex(sess, pattern, modeStr)
	case "4":
		return true
	default:
		color.Yellow("unrecognized option %q", choice)
		printMenu()
	}
	return false
}

// handleChoiceNoHistory drives the same menu without readline's line
// editing, prompting inline and reading follow-up lines from the same
// bufio.Scanner that supplied the menu choice.
func handleChoiceNoHistory(sess *session, choice string, scanner *bufio.Scanner) bool {
	readLine := func(prompt string) (string, bool) {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	switch choice {
	case "1", "2":
		candidate, ok := readLine("candidate> ")
		if !ok {
			return false
		}
		evaluate(sess, choice, candidate)
	case "3":
		pattern, ok := readLine("pattern> ")
		if !ok {
			return false
		}
		modeStr, ok := readLine("mode (dfa-eager/dfa-lazy)> ")
		if !ok {
			return false
		}
		setRegex(sess, pattern, modeStr)
	case "4":
		return true
	default:
		color.Yellow("unrecognized option %q", choice)
		printMenu()
	}
	return false
}

func setRegex(sess *session, pattern, modeStr string) {
	mode, err := parseMode(modeStr)
	if err != nil {
		color.Yellow("%v", err)
		return
	}
	start := time.Now()
	err = sess.setPattern(pattern, mode)
	elapsed := time.Since(start)
	if err != nil {
		color.Yellow("compile error: %v", err)
		return
	}
	fmt.Printf("compiled in %s\n", elapsed)
}

func evaluate(sess *session, choice, candidate string) {
	if sess.nfaRe == nil {
		color.Yellow("no pattern set yet; choose option 3 first")
		return
	}

	var (
		matched bool
		elapsed time.Duration
	)
	start := time.Now()
	if choice == "1" {
		matched = sess.dfaRe.MatchesString(candidate)
	} else {
		matched = sess.nfaRe.MatchesString(candidate)
	}
	elapsed = time.Since(start)

	fmt.Printf("(%s) ", elapsed)
	if matched {
		color.Green("match")
	} else {
		color.Red("no match")
	}
}
