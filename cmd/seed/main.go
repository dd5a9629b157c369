// seed genera un script SQL con datos de demostración (bodega, usuario admin
// y catálogo de productos) a partir de un CSV de catálogo de proveedor.
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Los catálogos de proveedores chilenos suelen venir en ISO-8859-1.
// Escribe: internal/infrastructure/postgres/migrations/900_seed_demo.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type producto struct {
	sku         string
	nombre      string
	descripcion string
	precio      string
	unidad      string
	stock       string
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 6
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var productos []producto
	for i, rec := range records {
		// Primera fila: encabezado sku;nombre;descripcion;precio;unidad;stock
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "sku") {
			continue
		}
		p := producto{
			sku:         strings.TrimSpace(rec[0]),
			nombre:      strings.TrimSpace(rec[1]),
			descripcion: strings.TrimSpace(rec[2]),
			precio:      strings.TrimSpace(rec[3]),
			unidad:      strings.TrimSpace(rec[4]),
			stock:       strings.TrimSpace(rec[5]),
		}
		if p.sku == "" || p.nombre == "" || p.precio == "" {
			continue
		}
		if p.unidad == "" {
			p.unidad = "unidad"
		}
		if p.stock == "" {
			p.stock = "0"
		}
		productos = append(productos, p)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	warehouseID := uuid.NewString()
	adminID := uuid.NewString()

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "900_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración: bodega, usuario admin y catálogo de productos\n")
	fmt.Fprintf(out, "-- Generado desde %s\n\n", filepath.Base(csvPath))

	out.WriteString("-- 1. Bodega principal\n")
	fmt.Fprintf(out, "INSERT INTO warehouses (id, name, address, is_main, active)\nVALUES ('%s', 'Bodega Principal', 'Av. Demo 123, Santiago', TRUE, TRUE)\nON CONFLICT (id) DO NOTHING;\n\n", warehouseID)

	out.WriteString("-- 2. Usuario admin (password: demo1234)\n")
	fmt.Fprintf(out, "INSERT INTO users (id, warehouse_id, email, password_hash, full_name, phone, roles, status)\nVALUES ('%s', '%s', 'admin@demo.cl', '%s', 'Administrador Demo', '', ARRAY['admin'], 'active')\nON CONFLICT (email) DO NOTHING;\n\n", adminID, warehouseID, escapeSQL(string(hash)))

	out.WriteString("-- 3. Identidad de empresa\n")
	fmt.Fprintf(out, "INSERT INTO company_settings (id, warehouse_id, company_name, rut, address, phone, email, activity, logo_url)\nVALUES (gen_random_uuid(), '%s', 'Comercial Demo SpA', '76.543.210-K', 'Av. Demo 123, Santiago', '+56 9 1234 5678', 'contacto@demo.cl', 'Venta al por menor de materiales', '')\nON CONFLICT (warehouse_id) DO NOTHING;\n\n", warehouseID)

	out.WriteString("-- 4. Catálogo de productos\n")
	for _, p := range productos {
		fmt.Fprintf(out, "WITH prod AS (\n")
		fmt.Fprintf(out, "  INSERT INTO products (id, warehouse_id, sku, name, description, price, cost_price, unit, min_stock_alert, active)\n")
		fmt.Fprintf(out, "  VALUES (gen_random_uuid(), '%s', '%s', '%s', '%s', %s, 0, '%s', 0, TRUE)\n",
			warehouseID, escapeSQL(p.sku), escapeSQL(p.nombre), escapeSQL(p.descripcion), p.precio, escapeSQL(p.unidad))
		fmt.Fprintf(out, "  ON CONFLICT (warehouse_id, sku) DO NOTHING\n  RETURNING id\n)\n")
		fmt.Fprintf(out, "INSERT INTO product_stock (id, product_id, warehouse_id, quantity)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid(), id, '%s', %s FROM prod\n", warehouseID, p.stock)
		out.WriteString("ON CONFLICT (product_id, warehouse_id) DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d productos\n", outPath, len(productos))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
