// Package localstore persiste el estado de la aplicación como documentos
// JSON por clave en un directorio local, espejo de las tres claves que la
// aplicación siempre ha usado: products, pedidos y movements.
//
// Cada repositorio mantiene su estado en memoria (autoritativo) y lo vuelca
// completo al documento de su clave tras cada mutación (write-through). Un
// documento ausente o corrupto se trata como "almacén vacío" al cargar,
// nunca como un error fatal.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Claves de almacenamiento durable.
const (
	KeyProducts  = "products"
	KeyPedidos   = "pedidos"
	KeyMovements = "movements"
)

// Store lee y escribe documentos JSON por clave en el directorio de datos.
//
// gate coordina las operaciones sueltas de los repositorios con las unidades
// de trabajo del TxRunner: cada operación suelta lo toma en modo lectura y la
// unidad en modo exclusivo, de modo que nada puede intercalarse entre el
// snapshot de una unidad y su eventual rollback.
type Store struct {
	dir  string
	gate sync.RWMutex
}

// Open prepara el directorio de datos y devuelve el Store.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir devuelve el directorio de datos.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read deserializa el documento de la clave en v. Devuelve false si el
// archivo no existe o su contenido no es JSON válido: en ambos casos el
// almacén se considera vacío y v queda sin tocar.
func (s *Store) Read(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("localstore: leer %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Documento corrupto: se trata como vacío (no se propaga como crash).
		return false, nil
	}
	return true, nil
}

// Write serializa v y lo escribe de forma atómica (archivo temporal + rename)
// para no dejar nunca un documento a medias en disco.
func (s *Store) Write(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: serializar %s: %w", key, err)
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("localstore: archivo temporal para %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("localstore: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: publicar %s: %w", key, err)
	}
	return nil
}
