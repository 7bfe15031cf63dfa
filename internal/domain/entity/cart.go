package entity

import "github.com/shopspring/decimal"

// CartLine es una línea del carrito: el precio unitario se congela al
// momento de agregar el producto y no se revalida contra el inventario
// (un cambio de precio a mitad de carrito no altera un carrito abierto).
type CartLine struct {
	ProductCode string          `json:"codigo_producto"`
	ProductName string          `json:"nombre_producto"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Quantity    int64           `json:"cantidad"`
}

// LineTotal devuelve precio unitario * cantidad.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart es una secuencia ordenada de líneas, única por código de producto:
// agregar un producto existente incrementa su cantidad en vez de duplicar la línea.
type Cart struct {
	Lines []CartLine
}

// Find devuelve el índice de la línea con ese código, o -1 si no existe.
func (c *Cart) Find(productCode string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductCode == productCode {
			return i
		}
	}
	return -1
}

// Merge agrega una línea; si ya existe una con el mismo código suma la cantidad
// conservando el precio capturado originalmente.
func (c *Cart) Merge(line CartLine) {
	if i := c.Find(line.ProductCode); i >= 0 {
		c.Lines[i].Quantity += line.Quantity
		return
	}
	c.Lines = append(c.Lines, line)
}

// Remove elimina la línea con ese código; no-op si no existe.
func (c *Cart) Remove(productCode string) {
	if i := c.Find(productCode); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// Total devuelve la suma de precio*cantidad de todas las líneas.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// Snapshot devuelve una copia congelada de las líneas (para submit).
func (c *Cart) Snapshot() []CartLine {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}
