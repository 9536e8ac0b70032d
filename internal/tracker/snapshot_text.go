package tracker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

// Text snapshot layout:
//
//	<monthly limit>
//	---
//	<Kind> | <category> | <amount> | <YYYY-MM-DD>
//	---
//	<goal name> | <target> | <YYYY-MM-DD> | <saved>
//
// Receipts are not part of the text format.

func (ft *FinanceTracker) BackupToText(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create text backup %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close text backup %s: %w", path, cerr)
		}
	}()

	return ft.WriteText(f)
}

func RestoreFromText(path string, opts ...Option) (*FinanceTracker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open text backup %s: %w", path, err)
	}
	defer f.Close()

	return ReadText(f, opts...)
}

func (ft *FinanceTracker) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, ft.budget.MonthlyLimit.String())
	fmt.Fprintln(bw, constants.TextSectionSeparator)

	for _, t := range ft.transactions {
		if err := checkTextField(t.Category(), false); err != nil {
			return err
		}
		fmt.Fprintln(bw, joinFields(t.Kind().String(), t.Category(), t.Amount().String(), model.FormatDate(t.Date())))
	}

	fmt.Fprintln(bw, constants.TextSectionSeparator)

	for _, g := range ft.savingGoals {
		if err := checkTextField(g.Name(), true); err != nil {
			return err
		}
		fmt.Fprintln(bw, joinFields(g.Name(), g.Target().String(), model.FormatDate(g.Deadline()), g.SavedAmount().String()))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write text snapshot: %w", err)
	}
	return nil
}

func joinFields(fields ...string) string {
	return strings.Join(fields, constants.TextFieldSeparator)
}

// checkTextField rejects values that would not read back unchanged. Lines are trimmed
// before splitting, so the first field of a line must not start or end with whitespace.
func checkTextField(s string, first bool) error {
	sep := constants.TextFieldSeparator
	switch {
	case s == "",
		strings.Contains(s, sep),
		strings.ContainsAny(s, "\r\n"),
		strings.HasPrefix(s, strings.TrimLeft(sep, " ")),
		strings.HasSuffix(s, strings.TrimRight(sep, " ")),
		first && strings.TrimSpace(s) != s:
		return fmt.Errorf("%w: %q", ErrUnencodableField, s)
	}
	return nil
}

const (
	sectionTransactions = iota
	sectionGoals
)

func ReadText(r io.Reader, opts ...Option) (*FinanceTracker, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(scanner.Text(), "\r"), true
	}

	line, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read text snapshot: %w", err)
		}
		return nil, fmt.Errorf("%w: empty file", ErrMalformedText)
	}
	limit, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		return nil, malformed(lineNo, "monthly limit %q", line)
	}
	ft := New(limit, opts...)

	line, ok = next()
	if !ok || strings.TrimSpace(line) != constants.TextSectionSeparator {
		return nil, malformed(lineNo, "expected %q after the monthly limit", constants.TextSectionSeparator)
	}

	section := sectionTransactions
	sawGoalSeparator := false
	for {
		line, ok = next()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == constants.TextSectionSeparator && section == sectionTransactions {
			section = sectionGoals
			sawGoalSeparator = true
			continue
		}

		parts := strings.Split(trimmed, constants.TextFieldSeparator)
		if len(parts) != constants.TextFieldCount {
			return nil, malformed(lineNo, "expected %d fields, got %d", constants.TextFieldCount, len(parts))
		}

		switch section {
		case sectionTransactions:
			if err := ft.parseTransactionLine(parts); err != nil {
				return nil, malformed(lineNo, "%v", err)
			}
		case sectionGoals:
			if err := ft.parseGoalLine(parts); err != nil {
				return nil, malformed(lineNo, "%v", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text snapshot: %w", err)
	}
	if !sawGoalSeparator {
		return nil, malformed(lineNo, "missing %q before the saving goals", constants.TextSectionSeparator)
	}

	return ft, nil
}

func (ft *FinanceTracker) parseTransactionLine(parts []string) error {
	kind, err := model.ParseKind(parts[0])
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(parts[2])
	if err != nil {
		return fmt.Errorf("invalid amount %q", parts[2])
	}
	_, err = ft.AddTransaction(kind, parts[1], amount, parts[3], "")
	return err
}

func (ft *FinanceTracker) parseGoalLine(parts []string) error {
	target, err := decimal.NewFromString(parts[1])
	if err != nil {
		return fmt.Errorf("invalid target amount %q", parts[1])
	}
	saved, err := decimal.NewFromString(parts[3])
	if err != nil {
		return fmt.Errorf("invalid saved amount %q", parts[3])
	}
	deadline, err := model.ParseDate(parts[2])
	if err != nil {
		return err
	}
	ft.AppendSavingGoal(model.RestoreSavingGoal(parts[0], target, deadline, saved))
	return nil
}

func malformed(line int, format string, a ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedText, line, fmt.Sprintf(format, a...))
}
