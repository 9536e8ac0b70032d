package tracker

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hance08/fintrack/internal/model"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/encoding/protowire"
)

// Binary snapshot layout: the magic bytes followed by one protobuf-wire Snapshot message.
//
//	Snapshot    {1: version, 2: monthly limit, 3: repeated Transaction, 4: repeated SavingGoal}
//	Transaction {1: kind, 2: category, 3: amount, 4: date, 5: receipt bytes (only when attached)}
//	SavingGoal  {1: name, 2: target, 3: deadline, 4: saved}
//
// Decimals and dates are stored as strings so values survive exactly.
const (
	binaryMagic   = "FTRK"
	binaryVersion = 1
)

const (
	snapVersion      protowire.Number = 1
	snapMonthlyLimit protowire.Number = 2
	snapTransaction  protowire.Number = 3
	snapSavingGoal   protowire.Number = 4

	txKind     protowire.Number = 1
	txCategory protowire.Number = 2
	txAmount   protowire.Number = 3
	txDate     protowire.Number = 4
	txReceipt  protowire.Number = 5

	goalName     protowire.Number = 1
	goalTarget   protowire.Number = 2
	goalDeadline protowire.Number = 3
	goalSaved    protowire.Number = 4
)

func (ft *FinanceTracker) BackupToBinary(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create binary backup %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close binary backup %s: %w", path, cerr)
		}
	}()

	return ft.WriteBinary(f)
}

func RestoreFromBinary(path string, opts ...Option) (*FinanceTracker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open binary backup %s: %w", path, err)
	}
	defer f.Close()

	return ReadBinary(f, opts...)
}

func (ft *FinanceTracker) WriteBinary(w io.Writer) error {
	buf := []byte(binaryMagic)
	buf = protowire.AppendTag(buf, snapVersion, protowire.VarintType)
	buf = protowire.AppendVarint(buf, binaryVersion)
	buf = protowire.AppendTag(buf, snapMonthlyLimit, protowire.BytesType)
	buf = protowire.AppendString(buf, ft.budget.MonthlyLimit.String())

	for _, t := range ft.transactions {
		buf = protowire.AppendTag(buf, snapTransaction, protowire.BytesType)
		buf = protowire.AppendBytes(buf, encodeTransaction(t))
	}
	for _, g := range ft.savingGoals {
		buf = protowire.AppendTag(buf, snapSavingGoal, protowire.BytesType)
		buf = protowire.AppendBytes(buf, encodeSavingGoal(g))
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write binary snapshot: %w", err)
	}
	return nil
}

func encodeTransaction(t *model.Transaction) []byte {
	var b []byte
	b = protowire.AppendTag(b, txKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(t.Kind()))
	b = protowire.AppendTag(b, txCategory, protowire.BytesType)
	b = protowire.AppendString(b, t.Category())
	b = protowire.AppendTag(b, txAmount, protowire.BytesType)
	b = protowire.AppendString(b, t.Amount().String())
	b = protowire.AppendTag(b, txDate, protowire.BytesType)
	b = protowire.AppendString(b, model.FormatDate(t.Date()))
	if r := t.Receipt(); r != nil {
		b = protowire.AppendTag(b, txReceipt, protowire.BytesType)
		b = protowire.AppendBytes(b, r.Bytes())
	}
	return b
}

func encodeSavingGoal(g *model.SavingGoal) []byte {
	var b []byte
	b = protowire.AppendTag(b, goalName, protowire.BytesType)
	b = protowire.AppendString(b, g.Name())
	b = protowire.AppendTag(b, goalTarget, protowire.BytesType)
	b = protowire.AppendString(b, g.Target().String())
	b = protowire.AppendTag(b, goalDeadline, protowire.BytesType)
	b = protowire.AppendString(b, model.FormatDate(g.Deadline()))
	b = protowire.AppendTag(b, goalSaved, protowire.BytesType)
	b = protowire.AppendString(b, g.SavedAmount().String())
	return b
}

func ReadBinary(r io.Reader, opts ...Option) (*FinanceTracker, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read binary snapshot: %w", err)
	}
	if !bytes.HasPrefix(data, []byte(binaryMagic)) {
		return nil, fmt.Errorf("%w: missing header", ErrCorruptSnapshot)
	}

	var (
		version    uint64
		hasVersion bool
		limit      decimal.Decimal
		txs        []*model.Transaction
		goals      []*model.SavingGoal
	)

	err = walkFields(data[len(binaryMagic):], func(num protowire.Number, v fieldValue) error {
		switch num {
		case snapVersion:
			version, hasVersion = v.varint, true
			if version != binaryVersion {
				return fmt.Errorf("%w: %d (supported is %d)", ErrUnsupportedVersion, version, binaryVersion)
			}
		case snapMonthlyLimit:
			d, err := decimal.NewFromString(string(v.bytes))
			if err != nil {
				return fmt.Errorf("%w: monthly limit: %v", ErrCorruptSnapshot, err)
			}
			limit = d
		case snapTransaction:
			tx, err := decodeTransaction(v.bytes)
			if err != nil {
				return err
			}
			txs = append(txs, tx)
		case snapSavingGoal:
			goal, err := decodeSavingGoal(v.bytes)
			if err != nil {
				return err
			}
			goals = append(goals, goal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !hasVersion {
		return nil, fmt.Errorf("%w: missing format version", ErrCorruptSnapshot)
	}

	ft := New(limit, opts...)
	ft.transactions = txs
	ft.savingGoals = goals
	return ft, nil
}

func decodeTransaction(b []byte) (*model.Transaction, error) {
	var (
		kind     model.Kind
		category string
		amount   = decimal.Zero
		date     string
		receipt  *model.Receipt
	)

	err := walkFields(b, func(num protowire.Number, v fieldValue) error {
		switch num {
		case txKind:
			kind = model.Kind(v.varint)
		case txCategory:
			category = string(v.bytes)
		case txAmount:
			d, err := decimal.NewFromString(string(v.bytes))
			if err != nil {
				return fmt.Errorf("%w: transaction amount: %v", ErrCorruptSnapshot, err)
			}
			amount = d
		case txDate:
			date = string(v.bytes)
		case txReceipt:
			receipt = model.NewReceipt(v.bytes)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d, err := model.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction date: %v", ErrCorruptSnapshot, err)
	}
	tx, err := model.RestoreTransaction(kind, category, amount, d, receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return tx, nil
}

func decodeSavingGoal(b []byte) (*model.SavingGoal, error) {
	var (
		name     string
		target   = decimal.Zero
		saved    = decimal.Zero
		deadline string
	)

	err := walkFields(b, func(num protowire.Number, v fieldValue) error {
		var err error
		switch num {
		case goalName:
			name = string(v.bytes)
		case goalTarget:
			target, err = decimal.NewFromString(string(v.bytes))
		case goalDeadline:
			deadline = string(v.bytes)
		case goalSaved:
			saved, err = decimal.NewFromString(string(v.bytes))
		}
		if err != nil {
			return fmt.Errorf("%w: saving goal amount: %v", ErrCorruptSnapshot, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d, err := model.ParseDate(deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: saving goal deadline: %v", ErrCorruptSnapshot, err)
	}
	return model.RestoreSavingGoal(name, target, d, saved), nil
}

type fieldValue struct {
	varint uint64
	bytes  []byte
}

// walkFields calls fn for every varint and length-delimited field in b. Fields of other
// wire types are skipped so newer writers can add them.
func walkFields(b []byte, fn func(protowire.Number, fieldValue) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrCorruptSnapshot, protowire.ParseError(n))
		}
		b = b[n:]

		var v fieldValue
		switch typ {
		case protowire.VarintType:
			v.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			v.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: %v", ErrCorruptSnapshot, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrCorruptSnapshot, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(num, v); err != nil {
			return err
		}
	}
	return nil
}
