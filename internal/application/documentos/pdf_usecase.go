package documentos

import (
	"context"
	"fmt"

	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/documento"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// PDFUseCase emite los documentos imprimibles del sistema: boletas, facturas,
// cotizaciones y liquidaciones de sueldo. Cada invocación arma snapshots
// frescos, genera el binario y lo descarta; no hay estado entre llamadas.
type PDFUseCase struct {
	saleRepo     repository.SaleRepository
	settingsRepo repository.CompanySettingsRepository
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	payrollRepo  repository.PayrollRepository
	generador    GeneradorPDF
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	settingsRepo repository.CompanySettingsRepository,
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	payrollRepo repository.PayrollRepository,
	generador GeneradorPDF,
) *PDFUseCase {
	return &PDFUseCase{
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
		generador:    generador,
	}
}

// DescargarDocumentoVenta genera el PDF de una venta o cotización.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
//   - domain.ErrForbidden       si la venta no pertenece a la bodega del token.
//   - domain.ErrInvalidInput    si faltan los campos numéricos del layout.
func (uc *PDFUseCase) DescargarDocumentoVenta(
	ctx context.Context,
	warehouseID, saleID string,
) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	if sale.WarehouseID != warehouseID {
		return nil, "", domain.ErrForbidden
	}

	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener detalle: %w", err)
	}

	venta := &documento.Venta{
		Tipo:        documento.Tipo(sale.Type),
		Folio:       sale.ReceiptNumber,
		FolioManual: sale.QuoteNumberManual,
		Fecha:       sale.CreatedAt,
		Total:       sale.TotalAmount,
		Cliente:     toClienteSnapshot(sale.ClientSnapshot),
	}
	if err := venta.Validar(); err != nil {
		return nil, "", err
	}

	lineas := make([]documento.Linea, 0, len(items))
	for _, it := range items {
		lineas = append(lineas, documento.Linea{
			Descripcion:    it.ProductName,
			Cantidad:       it.Quantity,
			PrecioUnitario: it.UnitPrice,
		})
	}

	emisor := uc.emisor(warehouseID)
	pdfBytes, err = uc.generador.GenerarVenta(ctx, venta, emisor, lineas)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	folio := documento.Folio(venta.Tipo, venta.Folio, venta.FolioManual)
	return pdfBytes, documento.NombreArchivo(venta.Tipo, folio), nil
}

// DescargarLiquidacion genera el PDF de una liquidación de sueldo.
// El líquido a pagar se recalcula siempre en el render; el total almacenado
// en la liquidación es solo referencia histórica.
func (uc *PDFUseCase) DescargarLiquidacion(
	ctx context.Context,
	warehouseID, payrollID string,
) (pdfBytes []byte, filename string, err error) {
	payroll, err := uc.payrollRepo.GetByID(payrollID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener liquidación: %w", err)
	}
	if payroll == nil {
		return nil, "", domain.ErrNotFound
	}

	worker, err := uc.userRepo.GetByID(payroll.EmployeeID)
	if err != nil || worker == nil {
		return nil, "", fmt.Errorf("pdf: obtener trabajador: %w", domain.ErrNotFound)
	}
	if worker.WarehouseID != warehouseID {
		return nil, "", domain.ErrForbidden
	}

	// La ficha laboral puede no existir todavía; los placeholders del
	// documento cubren los campos ausentes.
	details, err := uc.employeeRepo.GetDetails(worker.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener ficha: %w", err)
	}

	empleado := documento.EmpleadoSnapshot{NombreCompleto: worker.FullName}
	if details != nil {
		empleado.RUT = details.RUT
		empleado.Cargo = details.JobTitle
	}

	liq := &documento.Liquidacion{
		Periodo:    payroll.PeriodDate,
		SueldoBase: payroll.BaseSalary,
		Bonos:      toItems(payroll.Bonuses),
		Descuentos: toItems(payroll.Deductions),
	}

	pdfBytes, err = uc.generador.GenerarLiquidacion(ctx, liq, empleado, uc.emisor(warehouseID))
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, documento.NombreArchivoLiquidacion(worker.FullName, payroll.PeriodDate), nil
}

// emisor arma la identidad de la empresa; si no hay configuración guardada
// el documento sale con los placeholders del dominio.
func (uc *PDFUseCase) emisor(warehouseID string) documento.Emisor {
	settings, err := uc.settingsRepo.GetByWarehouse(warehouseID)
	if err != nil || settings == nil {
		return documento.Emisor{}
	}
	return documento.Emisor{
		Nombre:    settings.CompanyName,
		RUT:       settings.RUT,
		Direccion: settings.Address,
		Telefono:  settings.Phone,
		Email:     settings.Email,
		Giro:      settings.Activity,
		LogoURL:   settings.LogoURL,
	}
}

func toClienteSnapshot(s *entity.ClientSnapshot) *documento.ClienteSnapshot {
	if s == nil {
		return nil
	}
	return &documento.ClienteSnapshot{
		Nombre:    s.Name,
		RUT:       s.TaxID,
		Direccion: s.Address,
		Telefono:  s.Phone,
	}
}

func toItems(in []entity.PayrollItem) []documento.ItemLiquidacion {
	out := make([]documento.ItemLiquidacion, 0, len(in))
	for _, it := range in {
		out = append(out, documento.ItemLiquidacion{Concepto: it.Concept, Monto: it.Amount})
	}
	return out
}
