package receipt

import (
	"context"

	"github.com/dakny/ventafacil-api/internal/domain/entity"
)

// PDFGenerator genera la versión imprimible del recibo.
type PDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, r *entity.Receipt) ([]byte, error)
}
