package repository

import "github.com/jhoicas/Chatarreria-api/internal/domain/entity"

// PriceCatalogRepository define el puerto de persistencia para el catálogo de
// precios (DIP). El único dueño durable del catálogo es el almacenamiento
// externo; la aplicación solo mantiene copias transitorias por petición.
type PriceCatalogRepository interface {
	// GetAll devuelve el catálogo completo material → precio.
	GetAll() (entity.Catalog, error)
	// ReplaceAll sobrescribe la tabla de precios con exactamente las entradas
	// dadas (reemplazo total, sin merge: lo ausente se elimina).
	ReplaceAll(catalog entity.Catalog) error
}
