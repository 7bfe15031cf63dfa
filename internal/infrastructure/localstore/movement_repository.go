package localstore

import (
	"fmt"
	"sync"

	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del log de movimientos sobre el documento
// "movements" (arreglo JSON append-only, en orden de inserción).
//
// Las operaciones exportadas toman el gate del Store en modo lectura para no
// intercalarse con una unidad de trabajo en curso (ver tx_runner.go).
type MovementRepo struct {
	store *Store

	mu        sync.Mutex
	movements []*entity.Movement
}

// NewMovementRepository carga el log desde el documento "movements".
func NewMovementRepository(store *Store) (*MovementRepo, error) {
	r := &MovementRepo{store: store}
	var movements []*entity.Movement
	if _, err := store.Read(KeyMovements, &movements); err != nil {
		return nil, err
	}
	r.movements = movements
	return r, nil
}

// Append agrega un movimiento al final del log y persiste el documento.
func (r *MovementRepo) Append(movement *entity.Movement) error {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.appendOne(movement)
}

func (r *MovementRepo) appendOne(movement *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *movement
	r.movements = append(r.movements, &cp)
	return r.save()
}

// List devuelve el log completo en orden de inserción.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.list()
}

func (r *MovementRepo) list() ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Movement, len(r.movements))
	for i, m := range r.movements {
		cp := *m
		out[i] = &cp
	}
	return out, nil
}

// save vuelca el log al documento "movements". Requiere r.mu tomado.
func (r *MovementRepo) save() error {
	if err := r.store.Write(KeyMovements, r.movements); err != nil {
		return fmt.Errorf("persistir movimientos: %w", err)
	}
	return nil
}

// snapshot devuelve el largo actual del log: por ser append-only basta con
// recordar hasta dónde llegaba para poder recortarlo en un rollback.
func (r *MovementRepo) snapshot() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.movements)
}

// restore recorta el log al largo del snapshot y re-persiste (best-effort).
// No-op si nada se agregó desde el snapshot.
func (r *MovementRepo) restore(length int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if length < len(r.movements) {
		r.movements = r.movements[:length]
		_ = r.save()
	}
}
