package shopkeeper

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the inventory and the ledger.
type Store interface {
	// LoadInventory fails with ErrMissingDataFile if there is no inventory yet.
	LoadInventory() (*Inventory, error)
	// LoadLedger returns an empty ledger if there is none yet.
	LoadLedger() (*Ledger, error)
	// SaveInventory rewrites the full inventory.
	SaveInventory(*Inventory) error
	// Commit persists both tables as one unit: either both are written or none.
	Commit(*Inventory, *Ledger) error
}

// FileStore stores the tables as CSV files.
//
// Every save rewrites the whole file. There is no locking: two processes
// writing the same files concurrently can lose updates.
type FileStore struct {
	InventoryPath string
	LedgerPath    string
	Currency      string
}

// NewFileStore returns a store for inventory.csv and orders.csv in dir.
func NewFileStore(dir, currency string) *FileStore {
	return &FileStore{
		InventoryPath: filepath.Join(dir, "inventory.csv"),
		LedgerPath:    filepath.Join(dir, "orders.csv"),
		Currency:      currency,
	}
}

func (s *FileStore) LoadInventory() (*Inventory, error) {
	f, err := os.Open(s.InventoryPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: inventory file %q", ErrMissingDataFile, s.InventoryPath)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", s.InventoryPath, err)
	}
	defer f.Close()

	inv, err := DecodeInventory(f, s.Currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", s.InventoryPath, err)
	}
	return inv, nil
}

func (s *FileStore) LoadLedger() (*Ledger, error) {
	f, err := os.Open(s.LedgerPath)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.LedgerPath, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f, s.Currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.LedgerPath, err)
	}
	return ledger, nil
}

func (s *FileStore) SaveInventory(inv *Inventory) error {
	var buf bytes.Buffer
	if err := EncodeInventory(&buf, inv); err != nil {
		return fmt.Errorf("%w: encoding inventory: %v", ErrPersistence, err)
	}
	tmp, err := writeTemp(s.InventoryPath, buf.Bytes())
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.InventoryPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// SaveLedger rewrites the full ledger.
func (s *FileStore) SaveLedger(ledger *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		return fmt.Errorf("%w: encoding ledger: %v", ErrPersistence, err)
	}
	tmp, err := writeTemp(s.LedgerPath, buf.Bytes())
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.LedgerPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Commit writes both tables to temporary files, then moves them in place.
// If the ledger cannot be moved in place, the previous inventory is moved
// back in place from a copy staged before the first rename.
func (s *FileStore) Commit(inv *Inventory, ledger *Ledger) error {
	var invBuf, ledgerBuf bytes.Buffer
	if err := EncodeInventory(&invBuf, inv); err != nil {
		return fmt.Errorf("%w: encoding inventory: %v", ErrPersistence, err)
	}
	if err := EncodeLedger(&ledgerBuf, ledger); err != nil {
		return fmt.Errorf("%w: encoding ledger: %v", ErrPersistence, err)
	}

	invTmp, err := writeTemp(s.InventoryPath, invBuf.Bytes())
	if err != nil {
		return err
	}
	ledgerTmp, err := writeTemp(s.LedgerPath, ledgerBuf.Bytes())
	if err != nil {
		os.Remove(invTmp)
		return err
	}

	// The previous inventory is staged too, so that restoring it is a rename.
	restoreTmp := ""
	previous, err := os.ReadFile(s.InventoryPath)
	switch {
	case err == nil:
		restoreTmp, err = writeTemp(s.InventoryPath, previous)
	case errors.Is(err, fs.ErrNotExist):
		err = nil
	default:
		err = fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err != nil {
		os.Remove(invTmp)
		os.Remove(ledgerTmp)
		return err
	}
	discard := func() {
		if restoreTmp != "" {
			os.Remove(restoreTmp)
		}
	}

	if err := os.Rename(invTmp, s.InventoryPath); err != nil {
		os.Remove(invTmp)
		os.Remove(ledgerTmp)
		discard()
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := os.Rename(ledgerTmp, s.LedgerPath); err != nil {
		os.Remove(ledgerTmp)
		var rerr error
		if restoreTmp != "" {
			rerr = os.Rename(restoreTmp, s.InventoryPath)
		} else {
			rerr = os.Remove(s.InventoryPath)
		}
		if rerr != nil {
			discard()
			return fmt.Errorf("%w: %v (inventory could not be restored: %v)", ErrPersistence, err, rerr)
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	discard()
	return nil
}

// writeTemp writes content to a new temporary file next to path, so that it
// can be renamed over path.
func writeTemp(path string, content []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: could not create directory %q: %v", ErrPersistence, dir, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	_, err = f.Write(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(f.Name(), 0644)
	}
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: writing %q: %v", ErrPersistence, path, err)
	}
	return f.Name(), nil
}
