package repositories

import (
	"fmt"

	"github.com/KayisiMuhendisi/Adisyon/internal/models"
)

// TableRepository holds the pre-allocated tables of one session. Tables
// are created once at construction and never added or removed afterwards;
// order state on the returned *Table values is guarded by the session
// service, not by the repository.
type TableRepository interface {
	Get(name string) (*models.Table, error)
	List() []*models.Table
}

type inMemoryTableRepository struct {
	names  []string
	tables map[string]*models.Table
}

// NewTableRepository pre-allocates count regular tables ("Masa 1"..) and
// vipCount VIP tables ("VIP Masa 1"..) carrying the given flat service fee.
func NewTableRepository(count, vipCount int, serviceFee float64) TableRepository {
	r := &inMemoryTableRepository{
		tables: make(map[string]*models.Table, count+vipCount),
	}
	for i := 1; i <= count; i++ {
		r.add(&models.Table{Name: fmt.Sprintf("Masa %d", i)})
	}
	for i := 1; i <= vipCount; i++ {
		r.add(&models.Table{Name: fmt.Sprintf("VIP Masa %d", i), IsVIP: true, ServiceFee: serviceFee})
	}
	return r
}

func (r *inMemoryTableRepository) add(table *models.Table) {
	r.names = append(r.names, table.Name)
	r.tables[table.Name] = table
}

func (r *inMemoryTableRepository) Get(name string) (*models.Table, error) {
	table, ok := r.tables[name]
	if !ok {
		return nil, ErrNotFound
	}
	return table, nil
}

// List returns every table in allocation order, regular tables first.
func (r *inMemoryTableRepository) List() []*models.Table {
	out := make([]*models.Table, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.tables[name])
	}
	return out
}
