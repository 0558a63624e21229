package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Prompter reads lines from the player and re-asks until the answer is
// valid. Validation itself is done by pure Parse* functions so it can be
// tested without a terminal.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// readLine - returns the next trimmed input line. A closed stream is the
// only unrecoverable input condition.
func (that *Prompter) readLine() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
		}

		return "", apperror.ErrInputClosed
	}

	return strings.TrimSpace(that.scanner.Text()), nil
}

// AskCell - asks for a board cell among the given free cells (1..9 as shown
// to the player) until a valid one is entered.
func (that *Prompter) AskCell(prompt string, available []int) (int, error) {
	for {
		fmt.Fprint(that.out, prompt)

		line, err := that.readLine()
		if err != nil {
			return -1, err
		}

		cell, err := ParseCell(line, available)
		if err != nil {
			fmt.Fprintln(that.out, "That's not a free square, try again.")
			continue
		}

		return cell, nil
	}
}

// AskYesNo - asks until the player answers y or n.
func (that *Prompter) AskYesNo(prompt string) (bool, error) {
	for {
		fmt.Fprint(that.out, prompt)

		line, err := that.readLine()
		if err != nil {
			return false, err
		}

		answer, err := ParseYesNo(line)
		if err != nil {
			fmt.Fprintln(that.out, "Please answer y or n.")
			continue
		}

		return answer, nil
	}
}

// AskChoice - asks until the player picks one of 1..max.
func (that *Prompter) AskChoice(prompt string, max int) (int, error) {
	for {
		fmt.Fprint(that.out, prompt)

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := ParseChoice(line, max)
		if err != nil {
			fmt.Fprintf(that.out, "Please pick a number between 1 and %d.\n", max)
			continue
		}

		return choice, nil
	}
}

// AskMark - asks for the human's mark until a valid one is entered. An empty
// answer keeps the default.
func (that *Prompter) AskMark(prompt, defaultMark, reservedMark string) (string, error) {
	for {
		fmt.Fprint(that.out, prompt)

		line, err := that.readLine()
		if err != nil {
			return "", err
		}

		if line == "" {
			return defaultMark, nil
		}

		mark, err := ParseMark(line, reservedMark)
		if err != nil {
			fmt.Fprintf(that.out, "Pick a single visible character, not a digit, %s or %s.\n", entity.TieMark, reservedMark)
			continue
		}

		return mark, nil
	}
}

// AskName - asks for a name; an empty answer keeps the default.
func (that *Prompter) AskName(prompt, defaultName string) (string, error) {
	fmt.Fprint(that.out, prompt)

	line, err := that.readLine()
	if err != nil {
		return "", err
	}

	if line == "" {
		return defaultName, nil
	}

	return line, nil
}

// ParseCell - validates a 1..9 square number against the free cells of the
// board (given as 0-based indexes) and returns the 0-based index.
func ParseCell(line string, available []int) (int, error) {
	square, err := strconv.Atoi(line)
	if err != nil {
		return -1, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, line)
	}

	cell := square - 1
	for _, idx := range available {
		if idx == cell {
			return cell, nil
		}
	}

	return -1, fmt.Errorf("%w: square %d is not free", apperror.ErrInvalidInput, square)
}

// ParseYesNo - accepts y/yes/n/no, case-insensitively.
func ParseYesNo(line string) (bool, error) {
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not y or n", apperror.ErrInvalidInput, line)
	}
}

// ParseChoice - accepts a menu item between 1 and max.
func ParseChoice(line string, max int) (int, error) {
	choice, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, line)
	}

	if choice < 1 || choice > max {
		return 0, fmt.Errorf("%w: %d is out of range", apperror.ErrInvalidInput, choice)
	}

	return choice, nil
}

// ParseMark - accepts a single printable character that differs from the
// reserved mark case-insensitively. The tie sentinel and digits are not
// playable: a "-" winner would be announced as a tie and digits collide
// with the free-square numbers on the board.
func ParseMark(line, reservedMark string) (string, error) {
	if utf8.RuneCountInString(line) != 1 {
		return "", fmt.Errorf("%w: mark must be a single character", apperror.ErrInvalidInput)
	}

	r, _ := utf8.DecodeRuneInString(line)
	if !unicode.IsGraphic(r) || unicode.IsSpace(r) {
		return "", fmt.Errorf("%w: mark must be visible", apperror.ErrInvalidInput)
	}

	if unicode.IsDigit(r) {
		return "", fmt.Errorf("%w: mark %q clashes with the square numbers", apperror.ErrInvalidInput, line)
	}

	if line == entity.TieMark {
		return "", fmt.Errorf("%w: mark %q is reserved", apperror.ErrInvalidInput, line)
	}

	if strings.EqualFold(line, reservedMark) {
		return "", fmt.Errorf("%w: mark %q is taken", apperror.ErrInvalidInput, line)
	}

	return line, nil
}
