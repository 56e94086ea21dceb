package facturacion_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tallerpro/taller-api/internal/application/facturacion"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria para los tests de casos de uso. El TxRunner
// fake invoca el callback directamente con estos repos: la atomicidad real la
// cubren los adaptadores de PostgreSQL; aquí se verifica la lógica de negocio.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	// mu protege los mapas; txMu serializa transacciones completas igual que
	// el SELECT ... FOR UPDATE sobre la fila del CAI.
	mu   sync.Mutex
	txMu sync.Mutex

	cais       map[string]*entity.CAI
	docs       map[string]*entity.Document
	lines      map[string][]*entity.DocumentLine
	products   map[string]*entity.Product
	services   map[string]*entity.ServiceItem
	quotations map[string]*entity.Quotation
	qLines     map[string][]*entity.QuotationLine
	movements  []*entity.InventoryMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cais:       make(map[string]*entity.CAI),
		docs:       make(map[string]*entity.Document),
		lines:      make(map[string][]*entity.DocumentLine),
		products:   make(map[string]*entity.Product),
		services:   make(map[string]*entity.ServiceItem),
		quotations: make(map[string]*entity.Quotation),
		qLines:     make(map[string][]*entity.QuotationLine),
	}
}

// ── CAIRepository ─────────────────────────────────────────────────────────────

type fakeCAIRepo struct{ s *fakeStore }

var _ repository.CAIRepository = (*fakeCAIRepo)(nil)

func (r *fakeCAIRepo) Create(_ context.Context, c *entity.CAI) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.cais[c.ID] = c
	return nil
}

func (r *fakeCAIRepo) GetByID(_ context.Context, id string) (*entity.CAI, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.cais[id], nil
}

func (r *fakeCAIRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.CAI, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeCAIRepo) List(_ context.Context) ([]*entity.CAI, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.CAI, 0, len(r.s.cais))
	for _, c := range r.s.cais {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCAIRepo) UpdateEstado(_ context.Context, id, estado string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.cais[id]; ok {
		c.Estado = estado
	}
	return nil
}

// ── DocumentRepository ────────────────────────────────────────────────────────

type fakeDocRepo struct{ s *fakeStore }

var _ repository.DocumentRepository = (*fakeDocRepo)(nil)

func (r *fakeDocRepo) Create(_ context.Context, d *entity.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.docs[d.ID] = d
	return nil
}

func (r *fakeDocRepo) CreateLine(_ context.Context, l *entity.DocumentLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lines[l.DocumentID] = append(r.s.lines[l.DocumentID], l)
	return nil
}

func (r *fakeDocRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.docs[id], nil
}

func (r *fakeDocRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Document, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeDocRepo) GetLinesByDocumentID(_ context.Context, documentID string) ([]*entity.DocumentLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.lines[documentID], nil
}

func (r *fakeDocRepo) List(_ context.Context, limit, offset int) ([]*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Document, 0, len(r.s.docs))
	for _, d := range r.s.docs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Secuencia > out[j].Secuencia })
	return out, nil
}

func (r *fakeDocRepo) MaxSequence(_ context.Context, caiID string) (int64, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var max int64
	found := false
	for _, d := range r.s.docs {
		if d.CAIID == caiID && (!found || d.Secuencia > max) {
			max = d.Secuencia
			found = true
		}
	}
	return max, found, nil
}

func (r *fakeDocRepo) UpdateEstado(_ context.Context, id, estado string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d, ok := r.s.docs[id]; ok {
		d.Estado = estado
	}
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}

func (r *fakeProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, stock decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

// ── ServiceItemRepository ─────────────────────────────────────────────────────

type fakeServiceRepo struct{ s *fakeStore }

var _ repository.ServiceItemRepository = (*fakeServiceRepo)(nil)

func (r *fakeServiceRepo) Create(_ context.Context, s *entity.ServiceItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.services[s.ID] = s
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*entity.ServiceItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.services[id], nil
}

func (r *fakeServiceRepo) List(_ context.Context) ([]*entity.ServiceItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.ServiceItem, 0, len(r.s.services))
	for _, s := range r.s.services {
		out = append(out, s)
	}
	return out, nil
}

// ── QuotationRepository ───────────────────────────────────────────────────────

type fakeQuotationRepo struct{ s *fakeStore }

var _ repository.QuotationRepository = (*fakeQuotationRepo)(nil)

func (r *fakeQuotationRepo) Create(_ context.Context, q *entity.Quotation, lineas []*entity.QuotationLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.quotations[q.ID] = q
	r.s.qLines[q.ID] = lineas
	return nil
}

func (r *fakeQuotationRepo) GetByID(_ context.Context, id string) (*entity.Quotation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.quotations[id], nil
}

func (r *fakeQuotationRepo) GetLines(_ context.Context, quotationID string) ([]*entity.QuotationLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.qLines[quotationID], nil
}

func (r *fakeQuotationRepo) List(_ context.Context, limit, offset int) ([]*entity.Quotation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Quotation, 0, len(r.s.quotations))
	for _, q := range r.s.quotations {
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeQuotationRepo) MarkConverted(_ context.Context, id, documentID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.quotations[id]
	if !ok || q.DocumentID != "" {
		return false, nil
	}
	q.DocumentID = documentID
	q.Estado = entity.QuotationStatusConvertida
	return true, nil
}

// ── InventoryMovementRepository ───────────────────────────────────────────────

type fakeMovRepo struct{ s *fakeStore }

var _ repository.InventoryMovementRepository = (*fakeMovRepo)(nil)

func (r *fakeMovRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *fakeMovRepo) ListByDocument(_ context.Context, documentID string) ([]*entity.InventoryMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.InventoryMovement
	for _, m := range r.s.movements {
		if m.DocumentID == documentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.InventoryMovement
	for _, m := range r.s.movements {
		if f.ProductoID != "" && m.ProductoID != f.ProductoID {
			continue
		}
		if f.DocumentID != "" && m.DocumentID != f.DocumentID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directamente contra los repos en memoria,
// sosteniendo txMu durante todo el callback: el equivalente en memoria del
// bloqueo de fila del CAI que serializa las emisiones concurrentes. Sin
// rollback: los tests que esperan error verifican explícitamente que no
// quedaron efectos observables relevantes.
type fakeTxRunner struct{ s *fakeStore }

var _ facturacion.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunFacturacion(ctx context.Context, fn func(
	caiRepo repository.CAIRepository,
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	quotationRepo repository.QuotationRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	return fn(
		&fakeCAIRepo{s: r.s},
		&fakeDocRepo{s: r.s},
		&fakeProductRepo{s: r.s},
		&fakeMovRepo{s: r.s},
		&fakeQuotationRepo{s: r.s},
	)
}
