package shopkeeper

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/shopkeeper/date"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options configures the variant of the shop.
type Options struct {
	// Currency of all prices and totals. Items priced in another currency are rejected.
	Currency string
	// TaxRate is added on top of the subtotal of each order, e.g. 0.13. Zero disables tax.
	TaxRate decimal.Decimal
	// RequireCustomer makes customer name and email mandatory, as needed for invoicing.
	RequireCustomer bool
}

// Shop holds the inventory and the ledger and applies operations on them.
//
// Operations are staged on copies of the tables, persisted through the Store,
// and only then made visible. A Shop is meant for a single operator: it is
// not safe for concurrent use.
type Shop struct {
	store     Store
	opts      Options
	inventory *Inventory
	ledger    *Ledger
	ids       InvoiceIDs
	now       func() time.Time
	log       *zap.Logger
}

// Open loads the inventory and the ledger from store.
// It fails with ErrMissingDataFile if the store has no inventory.
func Open(store Store, opts Options, log *zap.Logger) (*Shop, error) {
	inv, err := store.LoadInventory()
	if err != nil {
		return nil, err
	}
	ledger, err := store.LoadLedger()
	if err != nil {
		return nil, err
	}
	return New(store, inv, ledger, opts, log)
}

// New creates a shop on already loaded tables.
// It fails with ErrInvalidItem if an item is not priced in the shop currency.
func New(store Store, inv *Inventory, ledger *Ledger, opts Options, log *zap.Logger) (*Shop, error) {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if log == nil {
		log = zap.NewNop()
	}
	for it := range inv.Items() {
		if err := checkCurrency(it, opts.Currency); err != nil {
			return nil, err
		}
	}
	return &Shop{
		store:     store,
		opts:      opts,
		inventory: inv,
		ledger:    ledger,
		now:       time.Now,
		log:       log,
	}, nil
}

func checkCurrency(it Item, currency string) error {
	if it.Price.Currency() != currency {
		return fmt.Errorf("%w: %q is priced in %s, the shop currency is %s", ErrInvalidItem, it.Name, it.Price.Currency(), currency)
	}
	return nil
}

// SetClock replaces the time source used to date orders and generate invoice ids.
func (s *Shop) SetClock(now func() time.Time) { s.now = now }

func (s *Shop) Inventory() *Inventory { return s.inventory }
func (s *Shop) Ledger() *Ledger       { return s.ledger }

// PlaceOrder sells req.Quantity of req.Item.
//
// Validation happens in this order: customer info (when required), item,
// quantity, stock. A failed validation changes nothing. On success the stock
// is decremented and the order is appended to the ledger, both tables being
// committed to the store before the order is returned. If the commit fails
// the error wraps ErrPersistence and the shop state is unchanged.
func (s *Shop) PlaceOrder(req OrderRequest) (Order, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	if s.opts.RequireCustomer && (req.CustomerName == "" || req.CustomerEmail == "") {
		return Order{}, ErrMissingCustomerInfo
	}
	it, ok := s.inventory.Item(req.Item)
	if !ok {
		return Order{}, fmt.Errorf("%w: %q", ErrUnknownItem, req.Item)
	}
	if req.Quantity < 1 {
		return Order{}, fmt.Errorf("%w: %d, want at least 1", ErrInvalidQuantity, req.Quantity)
	}
	if req.Quantity > it.Stock {
		return Order{}, fmt.Errorf("%w: %d %s requested, %d available", ErrInsufficientStock, req.Quantity, it.Name, it.Stock)
	}

	at := s.now()
	subtotal := it.Price.Mul(req.Quantity)
	tax := M(0, s.opts.Currency)
	if !s.opts.TaxRate.IsZero() {
		tax = subtotal.MulRate(s.opts.TaxRate).Round()
	}
	order := Order{
		Invoice:       s.nextInvoice(at),
		Date:          date.Of(at),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Item:          it.Name,
		Quantity:      req.Quantity,
		UnitPrice:     it.Price,
		Tax:           tax,
		Total:         subtotal.Add(tax),
	}

	inv, ledger := s.inventory.clone(), s.ledger.clone()
	inv.setStock(it.Name, it.Stock-req.Quantity)
	ledger.Append(order)

	if err := s.store.Commit(inv, ledger); err != nil {
		s.log.Error("order not committed", zap.String("invoice", order.Invoice), zap.String("item", it.Name), zap.Error(err))
		return Order{}, fmt.Errorf("order %s not confirmed: %w", order.Invoice, err)
	}
	s.inventory, s.ledger = inv, ledger
	s.log.Info("order placed",
		zap.String("invoice", order.Invoice),
		zap.String("item", order.Item),
		zap.Int("quantity", order.Quantity),
		zap.String("total", order.Total.Amount()),
		zap.Int("stock", it.Stock-req.Quantity),
	)
	return order, nil
}

// nextInvoice returns an id unique in this process and in the ledger.
func (s *Shop) nextInvoice(at time.Time) string {
	id := s.ids.Next(at)
	for s.ledger.Has(id) {
		id = s.ids.Next(at)
	}
	return id
}

// Restock adds quantity units to the stock of item.
//
// A zero quantity succeeds without writing anything. If the inventory cannot
// be saved the error wraps ErrPersistence and the stock is unchanged.
func (s *Shop) Restock(item string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d, want at least 0", ErrInvalidQuantity, quantity)
	}
	it, ok := s.inventory.Item(item)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	if quantity == 0 {
		return nil
	}

	inv := s.inventory.clone()
	inv.setStock(it.Name, it.Stock+quantity)
	if err := s.store.SaveInventory(inv); err != nil {
		s.log.Error("restock not saved", zap.String("item", it.Name), zap.Error(err))
		return fmt.Errorf("restock of %s not confirmed: %w", it.Name, err)
	}
	s.inventory = inv
	s.log.Info("restocked", zap.String("item", it.Name), zap.Int("added", quantity), zap.Int("stock", it.Stock+quantity))
	return nil
}

// AddItem creates a new item in the inventory and saves it.
func (s *Shop) AddItem(name string, stock int, price Money) error {
	it := Item{Name: strings.TrimSpace(name), Stock: stock, Price: price}
	if err := checkCurrency(it, s.opts.Currency); err != nil {
		return err
	}
	inv := s.inventory.clone()
	if err := inv.Add(it); err != nil {
		return err
	}
	if err := s.store.SaveInventory(inv); err != nil {
		s.log.Error("item not saved", zap.String("item", it.Name), zap.Error(err))
		return fmt.Errorf("item %s not confirmed: %w", it.Name, err)
	}
	s.inventory = inv
	s.log.Info("item added", zap.String("item", it.Name), zap.Int("stock", stock), zap.String("price", price.Amount()))
	return nil
}
