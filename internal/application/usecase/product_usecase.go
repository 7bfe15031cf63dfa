package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dakny/ventafacil-api/internal/application/dto"
	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del editor de inventario. La cantidad
// disponible también se muta vía entradas de inventario y liquidaciones.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Código duplicado devuelve ErrDuplicate.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		Code:      in.Code,
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Upsert(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByCode obtiene un producto por código. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByCode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update edición manual de producto (nombre, precio, cantidad).
func (uc *ProductUseCase) Update(code string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo; search filtra por nombre o código sin distinguir
// mayúsculas ni tildes (búsqueda amigable para nombres en español).
func (uc *ProductUseCase) List(search string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	needle := foldForSearch(search)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if needle != "" &&
			!strings.Contains(foldForSearch(p.Name), needle) &&
			!strings.Contains(foldForSearch(p.Code), needle) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un producto por código.
func (uc *ProductUseCase) Delete(code string) error {
	return uc.repo.Delete(code)
}

// foldForSearch normaliza a minúsculas y remueve marcas diacríticas
// (NFD + remoción de Mn + NFC), de modo que "limón" empareje con "limon".
func foldForSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		Code:      p.Code,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
