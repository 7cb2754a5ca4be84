package repository

import "github.com/jhoicas/Chatarreria-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia del log de
// transacciones (append-only: nunca se actualiza ni se borra una fila).
type TransactionRepository interface {
	// Append agrega las filas al final del log en el orden dado. No hay commit
	// atómico multi-fila: si falla a mitad del lote, las filas ya escritas
	// permanecen y el error se reporta al llamador.
	Append(records []entity.TransactionRecord) error
	// List devuelve todas las filas del log en su orden natural de inserción.
	List() ([]entity.TransactionRecord, error)
}
