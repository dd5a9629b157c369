package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/documento"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// CreateSaleUseCase procesa el checkout: arma las líneas desde productos y
// servicios, congela el snapshot del cliente, asigna folio y descuenta stock
// en una sola transacción.
type CreateSaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	clientRepo  repository.ClientRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	clientRepo repository.ClientRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		clientRepo:  clientRepo,
	}
}

// lineaResuelta línea del carrito con precio y nombre ya congelados.
type lineaResuelta struct {
	productID *string
	serviceID *string
	name      string
	quantity  decimal.Decimal
	unitPrice decimal.Decimal
}

// CreateSale crea una venta o cotización.
//
// Reglas:
//   - factura exige cliente registrado (el RUT va en el documento tributario).
//   - cotización no descuenta stock; boleta y factura sí, de forma atómica.
//   - el folio manual solo aplica a cotizaciones; los demás tipos usan el
//     correlativo de la bodega.
//   - para factura el total se desglosa en neto + IVA; boleta y cotización
//     guardan el total directo.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, warehouseID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	tipo := documento.Tipo(in.Type)
	if !tipo.Valido() || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if tipo == documento.TipoFactura && in.ClientID == nil {
		return nil, domain.ErrInvalidInput
	}

	// Cliente y snapshot congelado (fuera de la tx, solo lectura)
	var clientSnapshot *entity.ClientSnapshot
	if in.ClientID != nil {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil || client == nil {
			return nil, domain.ErrNotFound
		}
		if client.WarehouseID != warehouseID {
			return nil, domain.ErrForbidden
		}
		clientSnapshot = &entity.ClientSnapshot{
			Name:    client.Name,
			TaxID:   client.TaxID,
			Address: client.Address,
			Phone:   client.Phone,
		}
	}

	// Resolver líneas: precio y nombre se congelan al momento del checkout
	lineas := make([]lineaResuelta, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		switch {
		case item.ProductID != nil && item.ServiceID == nil:
			p, err := uc.productRepo.GetByID(*item.ProductID)
			if err != nil || p == nil || !p.Active {
				return nil, domain.ErrNotFound
			}
			if p.WarehouseID != warehouseID {
				return nil, domain.ErrForbidden
			}
			lineas = append(lineas, lineaResuelta{
				productID: item.ProductID,
				name:      p.Name,
				quantity:  item.Quantity,
				unitPrice: p.Price,
			})
			total = total.Add(item.Quantity.Mul(p.Price))
		case item.ServiceID != nil && item.ProductID == nil:
			s, err := uc.serviceRepo.GetByID(*item.ServiceID)
			if err != nil || s == nil || !s.Active {
				return nil, domain.ErrNotFound
			}
			if s.WarehouseID != warehouseID {
				return nil, domain.ErrForbidden
			}
			lineas = append(lineas, lineaResuelta{
				serviceID: item.ServiceID,
				name:      s.Name,
				quantity:  item.Quantity,
				unitPrice: s.Price,
			})
			total = total.Add(item.Quantity.Mul(s.Price))
		default:
			return nil, domain.ErrInvalidInput
		}
	}

	// Desglose tributario: la factura declara neto + IVA; boleta y cotización
	// registran el total directo.
	var net, tax decimal.Decimal
	if tipo == documento.TipoFactura {
		net, tax = documento.DesglosarIVA(total)
	} else {
		net = total
		tax = decimal.Zero
	}

	quoteManual := ""
	if tipo == documento.TipoCotizacion {
		quoteManual = in.QuoteNumberManual
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:                uuid.New().String(),
		WarehouseID:       warehouseID,
		UserID:            userID,
		ClientID:          in.ClientID,
		ClientSnapshot:    clientSnapshot,
		Type:              string(tipo),
		QuoteNumberManual: quoteManual,
		NetAmount:         net,
		TaxAmount:         tax,
		TotalAmount:       total,
		Status:            entity.SaleStatusCompletada,
		CreatedAt:         now,
	}

	err := uc.txRunner.RunVenta(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error {
		folio, err := saleRepo.NextReceiptNumber(warehouseID)
		if err != nil {
			return err
		}
		sale.ReceiptNumber = folio

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, l := range lineas {
			item := &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   l.productID,
				ServiceID:   l.serviceID,
				ProductName: l.name,
				Quantity:    l.quantity,
				UnitPrice:   l.unitPrice,
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			// La cotización es una promesa, no un movimiento: el stock se
			// descuenta solo en boletas y facturas, y solo para productos.
			if tipo != documento.TipoCotizacion && l.productID != nil {
				if err := stockRepo.Decrement(*l.productID, warehouseID, l.quantity); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale)
	for _, l := range lineas {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductName: l.name,
			Quantity:    l.quantity,
			UnitPrice:   l.unitPrice,
		})
	}
	return resp, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:                s.ID,
		Type:              s.Type,
		ReceiptNumber:     s.ReceiptNumber,
		QuoteNumberManual: s.QuoteNumberManual,
		NetAmount:         s.NetAmount,
		TaxAmount:         s.TaxAmount,
		TotalAmount:       s.TotalAmount,
		Status:            s.Status,
		CreatedAt:         s.CreatedAt,
	}
	if s.ClientSnapshot != nil {
		resp.ClientName = s.ClientSnapshot.Name
	}
	return resp
}
