package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// OrderUseCase alta y consulta de pedidos.
type OrderUseCase struct {
	repo repository.OrderRepository
	tx   TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, tx TxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, tx: tx}
}

// Create crea el pedido en una sola transacción. Orden de verificación: lista de productos
// vacía, cliente inexistente, productos inexistentes. El total se calcula al construir la orden.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	productIDs := uniqueIDs(in.ProductIDs)
	if len(productIDs) == 0 {
		return nil, domain.NewIntegrityError(domain.MsgEmptyProducts)
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var orderDate time.Time
	if in.OrderDate != nil {
		orderDate = in.OrderDate.UTC()
	}

	var created *entity.Order
	err := uc.tx.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		customer, err := customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.NewNotFoundError(domain.MsgCustomerNotFound)
		}

		found, err := productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return err
		}
		byID := make(map[string]entity.Product, len(found))
		for _, p := range found {
			byID[p.ID] = *p
		}
		products := make([]entity.Product, 0, len(productIDs))
		var missing []string
		for _, id := range productIDs {
			p, ok := byID[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			products = append(products, p)
		}
		if len(missing) > 0 {
			return domain.NewIntegrityError("%s: %s", domain.MsgProductsNotFound, strings.Join(missing, ", "))
		}

		order, err := entity.NewOrder(uuid.New().String(), *customer, products, orderDate, time.Now().UTC())
		if err != nil {
			return domain.NewIntegrityError(domain.MsgEmptyProducts)
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// GetByID NotFoundError si el id no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NewNotFoundError(domain.MsgOrderNotFound)
	}
	return toOrderResponse(o), nil
}

// List aplica el filtro; un orderBy desconocido es ValidationError.
func (uc *OrderUseCase) List(ctx context.Context, f filter.OrderFilter) ([]dto.OrderResponse, error) {
	if _, err := f.Ordering(); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(list), nil
}

// Count total de pedidos.
func (uc *OrderUseCase) Count(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx)
}

// SumRevenue suma de los totales; cero si no hay pedidos.
func (uc *OrderUseCase) SumRevenue(ctx context.Context) (decimal.Decimal, error) {
	return uc.repo.SumRevenue(ctx)
}

// uniqueIDs quita vacíos y repetidos conservando el orden.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
