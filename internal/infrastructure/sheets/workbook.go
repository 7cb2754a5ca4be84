// Package sheets implementa el almacenamiento de la aplicación sobre un libro
// de cálculo .xlsx (excelize). El libro es el único dueño durable del estado:
// una tabla de precios y un log de transacciones, cada una en su propia hoja
// con la primera fila como encabezado.
package sheets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Nombres de las tablas (hojas) del libro.
const (
	TablePrices       = "Precios"
	TableTransactions = "Transacciones"
)

// Encabezados de cada tabla.
var (
	HeaderPrices       = []string{"Material", "Precio"}
	HeaderTransactions = []string{"TransaccionID", "Fecha", "Empleado", "Material", "Peso", "Precio", "Monto"}
)

// Workbook es el cliente del libro de cálculo. Cada operación reabre el archivo,
// de modo que ediciones externas (el administrador abriendo el libro a mano) se
// ven en la siguiente lectura. El mutex serializa las operaciones para que un
// guardado no se cruce con otro; el orden de escritura entre peticiones
// concurrentes es el natural de llegada, sin detección de conflictos.
type Workbook struct {
	path string
	mu   sync.Mutex
}

// NewWorkbook abre el libro en path, creándolo con las dos tablas vacías (solo
// encabezados) si no existe.
func NewWorkbook(path string) (*Workbook, error) {
	w := &Workbook{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := w.create(); err != nil {
			return nil, fmt.Errorf("sheets: crear libro %s: %w", path, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("sheets: inspeccionar %s: %w", path, err)
	}
	return w, nil
}

func (w *Workbook) create() error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TablePrices); err != nil {
		return err
	}
	if _, err := f.NewSheet(TableTransactions); err != nil {
		return err
	}
	if err := writeRow(f, TablePrices, 1, HeaderPrices); err != nil {
		return err
	}
	if err := writeRow(f, TableTransactions, 1, HeaderTransactions); err != nil {
		return err
	}
	return f.SaveAs(w.path)
}

// ReadTable devuelve todas las filas de la tabla, encabezado incluido.
func (w *Workbook) ReadTable(table string) ([][]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("sheets: abrir %s: %w", w.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(table)
	if err != nil {
		return nil, fmt.Errorf("sheets: leer tabla %s: %w", table, err)
	}
	return rows, nil
}

// OverwriteTable reemplaza el contenido completo de la tabla: borra la hoja y
// la reescribe con el encabezado y las filas dadas. Operación destructiva, sin
// deshacer.
func (w *Workbook) OverwriteTable(table string, header []string, rows [][]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("sheets: abrir %s: %w", w.path, err)
	}
	defer f.Close()

	if err := f.DeleteSheet(table); err != nil {
		return fmt.Errorf("sheets: limpiar tabla %s: %w", table, err)
	}
	if _, err := f.NewSheet(table); err != nil {
		return fmt.Errorf("sheets: recrear tabla %s: %w", table, err)
	}
	if err := writeRow(f, table, 1, header); err != nil {
		return fmt.Errorf("sheets: escribir encabezado de %s: %w", table, err)
	}
	for i, row := range rows {
		if err := writeRow(f, table, i+2, row); err != nil {
			return fmt.Errorf("sheets: escribir fila %d de %s: %w", i+2, table, err)
		}
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("sheets: guardar %s: %w", w.path, err)
	}
	return nil
}

// AppendRow agrega una fila al final de la tabla.
func (w *Workbook) AppendRow(table string, row []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("sheets: abrir %s: %w", w.path, err)
	}
	defer f.Close()

	existing, err := f.GetRows(table)
	if err != nil {
		return fmt.Errorf("sheets: leer tabla %s: %w", table, err)
	}
	if err := writeRow(f, table, len(existing)+1, row); err != nil {
		return fmt.Errorf("sheets: agregar fila a %s: %w", table, err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("sheets: guardar %s: %w", w.path, err)
	}
	return nil
}

// writeRow escribe los valores de una fila, celda por celda (fila 1-indexada).
func writeRow(f *excelize.File, sheet string, rowIdx int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
