package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// CustomerUseCase alta y consulta de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx}
}

// Create valida y crea un cliente. Email repetido → ConflictError.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := createCustomer(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// BulkCreate crea varios clientes en un solo lote. Los ítems inválidos o con email repetido
// no detienen el lote: se reportan como "<nombre>: <motivo>" y el resto se confirma.
func (uc *CustomerUseCase) BulkCreate(ctx context.Context, items []dto.CreateCustomerRequest) (*dto.BulkCreateCustomersPayload, error) {
	created := make([]*entity.Customer, len(items))
	itemErrs, err := uc.tx.RunBatch(ctx, len(items), func(i int, repo repository.CustomerRepository) error {
		c, err := createCustomer(ctx, repo, items[i])
		if err != nil {
			return err
		}
		created[i] = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &dto.BulkCreateCustomersPayload{
		Customers: make([]dto.CustomerResponse, 0, len(items)),
		Errors:    []string{},
	}
	for i, itemErr := range itemErrs {
		if itemErr != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %s", itemLabel(i, items[i].Name), itemErr.Error()))
			continue
		}
		out.Customers = append(out.Customers, *toCustomerResponse(created[i]))
	}
	return out, nil
}

// GetByID NotFoundError si el id no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFoundError(domain.MsgCustomerNotFound)
	}
	return toCustomerResponse(c), nil
}

// List aplica el filtro; un orderBy desconocido es ValidationError.
func (uc *CustomerUseCase) List(ctx context.Context, f filter.CustomerFilter) ([]dto.CustomerResponse, error) {
	if _, err := f.Ordering(); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Count total de clientes.
func (uc *CustomerUseCase) Count(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx)
}

// createCustomer reglas de alta compartidas por Create y BulkCreate.
func createCustomer(ctx context.Context, repo repository.CustomerRepository, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	exists, err := repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflictError(domain.MsgEmailExists)
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func itemLabel(i int, name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fmt.Sprintf("item %d", i+1)
}
