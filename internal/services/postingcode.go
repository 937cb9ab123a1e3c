package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

// PostingCodeService gera códigos de postagem de 8 dígitos garantidamente
// únicos dentro do catálogo.
type PostingCodeService struct {
	products store.ProductStore
	now      func() time.Time
	randN    func(n int) int
}

func NewPostingCodeService(products store.ProductStore) *PostingCodeService {
	return &PostingCodeService{
		products: products,
		now:      time.Now,
		randN:    rand.Intn,
	}
}

// FormatPostingCode monta o código: os 6 últimos dígitos do timestamp em
// milissegundos seguidos de 2 dígitos aleatórios com zero à esquerda.
func FormatPostingCode(now time.Time, random int) string {
	return fmt.Sprintf("%06d%02d", now.UnixMilli()%1_000_000, random)
}

// Generate devolve um código livre de colisão. A cada candidato o catálogo
// é consultado; em colisão um novo candidato é gerado, sem limite de
// tentativas.
func (s *PostingCodeService) Generate(ctx context.Context) (string, error) {
	for {
		code := FormatPostingCode(s.now(), s.randN(100))
		_, err := s.products.GetByPostingCode(ctx, code)
		if errors.Is(err, store.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("erro na verificação de colisão do código: %w", err)
		}
	}
}
