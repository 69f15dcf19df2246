package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KayisiMuhendisi/Adisyon/internal/models"
	"github.com/KayisiMuhendisi/Adisyon/internal/repositories"
)

// Custom Errors for session operations.
var (
	ErrNoActiveTable        = errors.New("no table is currently selected")
	ErrTableNotFound        = errors.New("table not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// --- DTOs ---

// AddOrderRequest places one unit of a product on the active table. The
// price is supplied by the caller and captured on the order line.
type AddOrderRequest struct {
	Product string  `json:"product" binding:"required"`
	Price   float64 `json:"price" binding:"gte=0"`
}

// ApplyDiscountRequest rewrites the active table's line prices by factor.
type ApplyDiscountRequest struct {
	Factor float64 `json:"factor" binding:"required"`
}

// CloseTableRequest settles the active table.
type CloseTableRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
}

// CurrentTableResponse is the active-table detail for the order panel.
type CurrentTableResponse struct {
	Name       string                    `json:"name"`
	IsVIP      bool                      `json:"is_vip"`
	ServiceFee float64                   `json:"service_fee"`
	Lines      []models.GroupedOrderLine `json:"lines"`
	Total      float64                   `json:"total"`
}

// --- SessionService Interface ---

// SessionService owns the tables, the single active selection and the
// daily cash/card totals of one in-memory session. Every method runs
// under one mutex so that closing a table is atomic with respect to the
// daily totals.
type SessionService interface {
	OpenTable(name string) (*CurrentTableResponse, error)
	CurrentTable() (*CurrentTableResponse, error)
	ListTables() []models.TableSummary
	AddProductToCurrentTable(req AddOrderRequest) (*CurrentTableResponse, error)
	RemoveItemFromCurrentTable(product string) (*CurrentTableResponse, error)
	ApplyDiscountToCurrentTable(factor float64) (*CurrentTableResponse, error)
	CloseTable(method models.PaymentMethod) (*models.Settlement, error)
	DailyReport() models.DailyReport
	Settlements() []models.Settlement
}

// --- sessionService Implementation ---

type sessionService struct {
	mu sync.Mutex

	tableRepo      repositories.TableRepository
	catalogService CatalogService

	current        *models.Table
	dailyCashTotal float64
	dailyCardTotal float64
	settlements    []models.Settlement
}

// NewSessionService creates a session over pre-allocated tables. The
// catalog service gates ordering through its stock ledger.
func NewSessionService(tr repositories.TableRepository, cs CatalogService) SessionService {
	return &sessionService{tableRepo: tr, catalogService: cs}
}

// OpenTable selects an existing table as the active one. It never creates
// or destroys tables; the set is fixed at session construction.
func (s *sessionService) OpenTable(name string) (*CurrentTableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.tableRepo.Get(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
		}
		return nil, fmt.Errorf("failed to open table %s: %w", name, err)
	}
	s.current = table
	return currentResponse(table), nil
}

func (s *sessionService) CurrentTable() (*CurrentTableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoActiveTable
	}
	return currentResponse(s.current), nil
}

func (s *sessionService) ListTables() []models.TableSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.tableRepo.List()
	out := make([]models.TableSummary, 0, len(tables))
	for _, table := range tables {
		summary := models.TableSummary{
			Name:       table.Name,
			IsVIP:      table.IsVIP,
			Occupied:   table.Occupied(),
			OrderCount: len(table.Orders),
		}
		if summary.Occupied {
			summary.Total = table.Total()
		}
		out = append(out, summary)
	}
	return out
}

// AddProductToCurrentTable places one unit of product on the active table
// at the given price. The stock decrement gates the order: when it fails
// the table is left untouched.
func (s *sessionService) AddProductToCurrentTable(req AddOrderRequest) (*CurrentTableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoActiveTable
	}
	if req.Product == "" {
		return nil, fmt.Errorf("%w: product must not be empty", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	if err := s.catalogService.ReduceStock(req.Product); err != nil {
		return nil, err
	}
	s.current.AddOrder(req.Product, req.Price)
	return currentResponse(s.current), nil
}

// RemoveItemFromCurrentTable drops the first order line matching product.
// Stock is not restored on removal.
func (s *sessionService) RemoveItemFromCurrentTable(product string) (*CurrentTableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoActiveTable
	}
	s.current.RemoveOrder(product)
	return currentResponse(s.current), nil
}

func (s *sessionService) ApplyDiscountToCurrentTable(factor float64) (*CurrentTableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoActiveTable
	}
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("%w: discount factor must be in (0, 1]", ErrValidation)
	}
	s.current.ApplyDiscount(factor)
	return currentResponse(s.current), nil
}

// CloseTable settles the active table: its total is routed into the daily
// cash or card running total, a settlement is recorded, the table is
// cleared and the selection is unset. This is the only path that mutates
// the daily totals.
func (s *sessionService) CloseTable(method models.PaymentMethod) (*models.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoActiveTable
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, method)
	}

	total := s.current.Total()
	switch method {
	case models.PaymentCash:
		s.dailyCashTotal += total
	case models.PaymentCard:
		s.dailyCardTotal += total
	}

	settlement := models.Settlement{
		ID:            uuid.NewString(),
		TableName:     s.current.Name,
		Amount:        total,
		PaymentMethod: method,
		ClosedAt:      time.Now(),
	}
	s.settlements = append(s.settlements, settlement)

	s.current.Clear()
	s.current = nil
	return &settlement, nil
}

func (s *sessionService) DailyReport() models.DailyReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.DailyReport{
		CashTotal:  s.dailyCashTotal,
		CardTotal:  s.dailyCardTotal,
		GrandTotal: s.dailyCashTotal + s.dailyCardTotal,
	}
}

// Settlements returns the session's settlement history, oldest first.
func (s *sessionService) Settlements() []models.Settlement {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Settlement, len(s.settlements))
	copy(out, s.settlements)
	return out
}

func currentResponse(table *models.Table) *CurrentTableResponse {
	return &CurrentTableResponse{
		Name:       table.Name,
		IsVIP:      table.IsVIP,
		ServiceFee: table.ServiceFee,
		Lines:      table.GroupedLines(),
		Total:      table.Total(),
	}
}
