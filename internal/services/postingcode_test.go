package services

import (
	"context"
	"testing"
	"time"

	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

type fakeProductStore struct {
	byCode map[string]models.Product
}

func (f *fakeProductStore) List(ctx context.Context) ([]models.Product, error) { return nil, nil }
func (f *fakeProductStore) GetByID(ctx context.Context, id gocql.UUID) (models.Product, error) {
	return models.Product{}, store.ErrNotFound
}
func (f *fakeProductStore) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	return models.Product{}, store.ErrNotFound
}
func (f *fakeProductStore) GetByPostingCode(ctx context.Context, code string) (models.Product, error) {
	if p, ok := f.byCode[code]; ok {
		return p, nil
	}
	return models.Product{}, store.ErrNotFound
}
func (f *fakeProductStore) Create(ctx context.Context, p models.Product) error  { return nil }
func (f *fakeProductStore) Update(ctx context.Context, p models.Product) error  { return nil }
func (f *fakeProductStore) Delete(ctx context.Context, id gocql.UUID) error     { return nil }
func (f *fakeProductStore) IncrementViews(ctx context.Context, id gocql.UUID) error {
	return nil
}

func TestFormatPostingCode(t *testing.T) {
	now := time.UnixMilli(1712345678901)
	code := FormatPostingCode(now, 7)
	if len(code) != 8 {
		t.Fatalf("len = %d, esperado 8", len(code))
	}
	// 678901 são os 6 últimos dígitos do timestamp, 07 o aleatório.
	if code != "67890107" {
		t.Errorf("code = %q, esperado 67890107", code)
	}
}

func TestFormatPostingCodeZeroAEsquerda(t *testing.T) {
	now := time.UnixMilli(1700000000042)
	code := FormatPostingCode(now, 3)
	if code != "00004203" {
		t.Errorf("code = %q, esperado 00004203", code)
	}
}

func TestGenerateRegeneraEmColisao(t *testing.T) {
	now := time.UnixMilli(1712345678901)
	fake := &fakeProductStore{byCode: map[string]models.Product{
		"67890100": {Name: "já existe"},
	}}

	svc := NewPostingCodeService(fake)
	svc.now = func() time.Time { return now }
	calls := 0
	svc.randN = func(n int) int {
		calls++
		if calls == 1 {
			return 0 // colide
		}
		return 42
	}

	code, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if code != "67890142" {
		t.Errorf("code = %q, esperado o segundo candidato 67890142", code)
	}
	if calls != 2 {
		t.Errorf("tentativas = %d, esperado 2", calls)
	}
}
