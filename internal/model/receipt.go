package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Receipt is an opaque binary attachment, usually a scanned image.
type Receipt struct {
	data []byte
}

func NewReceipt(data []byte) *Receipt {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Receipt{data: buf}
}

// LoadReceipt reads the whole file at path. Any content is accepted.
func LoadReceipt(path string) (*Receipt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, path)
		}
		return nil, fmt.Errorf("failed to read receipt %s: %w", path, err)
	}
	return &Receipt{data: data}, nil
}

// Bytes returns a copy of the receipt content.
func (r *Receipt) Bytes() []byte {
	buf := make([]byte, len(r.data))
	copy(buf, r.data)
	return buf
}

func (r *Receipt) Size() int {
	return len(r.data)
}

// Save writes the receipt verbatim to path, replacing any existing file.
func (r *Receipt) Save(path string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create receipt file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close receipt file %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(r.data); err != nil {
		return fmt.Errorf("failed to write receipt file %s: %w", path, err)
	}
	return nil
}
