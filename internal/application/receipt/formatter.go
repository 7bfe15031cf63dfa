// Package receipt produce representaciones legibles del recibo de una
// liquidación. Solo consume el Receipt que arma el motor de liquidación;
// no tiene acceso de escritura a ningún almacén.
package receipt

import (
	"fmt"
	"strings"

	"github.com/dakny/ventafacil-api/internal/domain/entity"
)

const lineWidth = 42

// FormatText genera el recibo en texto plano, al estilo tirilla de punto de
// venta. Es una función pura: misma entrada, misma salida.
func FormatText(r *entity.Receipt) string {
	var b strings.Builder

	sep := strings.Repeat("-", lineWidth)
	center(&b, "VentaFacil")
	center(&b, "Recibo de venta")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "Pedido:  %s\n", r.OrderID)
	fmt.Fprintf(&b, "Cliente: %s\n", r.CustomerName)
	if r.CustomerPhone != "" {
		fmt.Fprintf(&b, "Tel:     %s\n", r.CustomerPhone)
	}
	fmt.Fprintf(&b, "Fecha:   %s\n", r.SettledAt.Format("02/01/2006 15:04"))
	if r.SettledBy != "" {
		fmt.Fprintf(&b, "Atendió: %s\n", r.SettledBy)
	}
	b.WriteString(sep + "\n")

	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%s\n", l.ProductName)
		detail := fmt.Sprintf("  %d x %s", l.Quantity, l.UnitPrice.StringFixed(2))
		total := "$" + l.LineTotal.StringFixed(2)
		fmt.Fprintf(&b, "%s%s%s\n", detail, pad(detail, total), total)
	}

	b.WriteString(sep + "\n")
	label := "TOTAL"
	total := "$" + r.GrandTotal.StringFixed(2)
	fmt.Fprintf(&b, "%s%s%s\n", label, pad(label, total), total)
	b.WriteString(sep + "\n")
	center(&b, "¡Gracias por su compra!")

	return b.String()
}

// center escribe s centrado en el ancho de la tirilla.
func center(b *strings.Builder, s string) {
	margin := (lineWidth - len([]rune(s))) / 2
	if margin < 0 {
		margin = 0
	}
	b.WriteString(strings.Repeat(" ", margin) + s + "\n")
}

// pad devuelve los espacios para alinear right a la derecha de left.
func pad(left, right string) string {
	n := lineWidth - len([]rune(left)) - len([]rune(right))
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}
