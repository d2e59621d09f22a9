package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lanchonete/backend/internal/domain/catalog"
	"github.com/lanchonete/backend/internal/domain/shared"
	"github.com/lanchonete/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations. It resolves
// receipt item ingredient references through the ingredient repository before
// handing them to the domain.
type ProductService struct {
	productRepo    catalog.ProductRepository
	ingredientRepo catalog.IngredientRepository
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	ingredientRepo catalog.IngredientRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		ingredientRepo: ingredientRepo,
		validate:       validator.New(),
		logger:         logger,
	}
}

// Create creates a new product, enforcing SKU uniqueness and ingredient
// compatibility
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	s.logger.Info("creating product",
		zap.String("name", req.Name),
		zap.String("sku", req.SKU))

	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewValidationError("request", err.Error())
	}

	price, err := valueobject.NewMoneyFromString(req.Price)
	if err != nil {
		return nil, err
	}
	category, err := catalog.ParseProductCategory(req.Category)
	if err != nil {
		return nil, err
	}
	items, err := s.resolveReceiptItems(ctx, req.ReceiptItems)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, price, category, req.SKU, items, true)
	if err != nil {
		return nil, err
	}

	exists, err := s.productRepo.ExistsBySKU(ctx, product.SKU.Value(), false)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("product creation failed, sku already exists",
			zap.String("sku", product.SKU.Value()))
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Product with SKU %s already exists", product.SKU.Value()))
	}

	saved, err := s.productRepo.Save(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.Int64p("product_id", saved.InternalID),
		zap.String("sku", saved.SKU.Value()))

	response := ToProductResponse(saved)
	return &response, nil
}

// Get retrieves a product by internal id
func (s *ProductService) Get(ctx context.Context, id int64, includeInactive bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id, includeInactive)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Product with internal_id %d not found", id))
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetBySKU retrieves a product by its SKU code
func (s *ProductService) GetBySKU(ctx context.Context, sku string, includeInactive bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, sku, includeInactive)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Product with SKU %s not found", sku))
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Update replaces a product's fields, enforcing existence and SKU uniqueness
// against other products
func (s *ProductService) Update(ctx context.Context, req UpdateProductRequest) (*ProductResponse, error) {
	s.logger.Info("updating product", zap.Int64("product_id", req.InternalID))

	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewValidationError("request", err.Error())
	}

	product, err := s.productRepo.FindByID(ctx, req.InternalID, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Product with internal_id %d not found", req.InternalID))
	}

	price, err := valueobject.NewMoneyFromString(req.Price)
	if err != nil {
		return nil, err
	}
	category, err := catalog.ParseProductCategory(req.Category)
	if err != nil {
		return nil, err
	}
	items, err := s.resolveReceiptItems(ctx, req.ReceiptItems)
	if err != nil {
		return nil, err
	}

	sku, err := valueobject.NewSKU(req.SKU)
	if err != nil {
		return nil, err
	}
	other, err := s.productRepo.FindBySKU(ctx, sku.Value(), true)
	if err != nil {
		return nil, err
	}
	if other != nil && other.InternalID != nil && *other.InternalID != req.InternalID {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Product with SKU %s already exists", sku.Value()))
	}

	if err := product.Update(req.Name, price, category, req.SKU, items); err != nil {
		return nil, err
	}

	saved, err := s.productRepo.Save(ctx, product)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(saved)
	return &response, nil
}

// Delete soft-deletes a product through the repository
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	s.logger.Info("deleting product", zap.Int64("product_id", id))

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Product with internal_id %d not found", id))
	}
	return nil
}

// List returns all products
func (s *ProductService) List(ctx context.Context, includeInactive bool) (*ProductListResponse, error) {
	products, err := s.productRepo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	response := ToProductListResponse(products)
	return &response, nil
}

// ListByCategory returns all products of the given category
func (s *ProductService) ListByCategory(ctx context.Context, category string, includeInactive bool) (*ProductListResponse, error) {
	parsed, err := catalog.ParseProductCategory(category)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByCategory(ctx, parsed, includeInactive)
	if err != nil {
		return nil, err
	}

	response := ToProductListResponse(products)
	return &response, nil
}

// resolveReceiptItems loads each referenced ingredient and builds domain
// receipt items. Unknown or inactive ingredients are rejected.
func (s *ProductService) resolveReceiptItems(ctx context.Context, reqs []ReceiptItemRequest) ([]catalog.ReceiptItem, error) {
	items := make([]catalog.ReceiptItem, 0, len(reqs))
	for _, req := range reqs {
		ingredient, err := s.ingredientRepo.FindByID(ctx, req.IngredientID, false)
		if err != nil {
			return nil, err
		}
		if ingredient == nil {
			return nil, shared.NewDomainError("NOT_FOUND",
				fmt.Sprintf("Ingredient with internal_id %d not found", req.IngredientID))
		}
		item, err := catalog.NewReceiptItem(ingredient, req.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
