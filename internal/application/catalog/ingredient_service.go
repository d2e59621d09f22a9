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

// IngredientService handles ingredient-related business operations
type IngredientService struct {
	ingredientRepo catalog.IngredientRepository
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewIngredientService creates a new IngredientService
func NewIngredientService(ingredientRepo catalog.IngredientRepository, logger *zap.Logger) *IngredientService {
	return &IngredientService{
		ingredientRepo: ingredientRepo,
		validate:       validator.New(),
		logger:         logger,
	}
}

// Create creates a new ingredient, enforcing name uniqueness
func (s *IngredientService) Create(ctx context.Context, req CreateIngredientRequest) (*IngredientResponse, error) {
	s.logger.Info("creating ingredient",
		zap.String("name", req.Name),
		zap.String("type", req.Type))

	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewValidationError("request", err.Error())
	}

	price, err := valueobject.NewMoneyFromString(req.Price)
	if err != nil {
		return nil, err
	}

	ingredient, err := catalog.NewIngredient(req.Name, price, catalog.IngredientType(req.Type), true,
		req.AppliesToBurger, req.AppliesToSide, req.AppliesToDrink, req.AppliesToDessert)
	if err != nil {
		return nil, err
	}

	exists, err := s.ingredientRepo.ExistsByName(ctx, ingredient.Name.Value(), false)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("ingredient creation failed, name already exists",
			zap.String("name", ingredient.Name.Value()))
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Ingredient with name %s already exists", ingredient.Name.Value()))
	}

	saved, err := s.ingredientRepo.Save(ctx, ingredient)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ingredient created",
		zap.Int64p("ingredient_id", saved.InternalID),
		zap.String("name", saved.Name.Value()))

	response := ToIngredientResponse(saved)
	return &response, nil
}

// Get retrieves an ingredient by internal id
func (s *IngredientService) Get(ctx context.Context, id int64, includeInactive bool) (*IngredientResponse, error) {
	ingredient, err := s.ingredientRepo.FindByID(ctx, id, includeInactive)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Ingredient with internal_id %d not found", id))
	}

	response := ToIngredientResponse(ingredient)
	return &response, nil
}

// Update replaces an ingredient's fields, enforcing existence and name
// uniqueness against other ingredients
func (s *IngredientService) Update(ctx context.Context, req UpdateIngredientRequest) (*IngredientResponse, error) {
	s.logger.Info("updating ingredient", zap.Int64("ingredient_id", req.InternalID))

	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewValidationError("request", err.Error())
	}

	ingredient, err := s.ingredientRepo.FindByID(ctx, req.InternalID, true)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Ingredient with internal_id %d not found", req.InternalID))
	}

	price, err := valueobject.NewMoneyFromString(req.Price)
	if err != nil {
		return nil, err
	}

	name, err := valueobject.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	other, err := s.ingredientRepo.FindByName(ctx, name.Value(), true)
	if err != nil {
		return nil, err
	}
	if other != nil && other.InternalID != nil && *other.InternalID != req.InternalID {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Ingredient with name %s already exists", name.Value()))
	}

	if err := ingredient.Update(req.Name, price, catalog.IngredientType(req.Type),
		req.AppliesToBurger, req.AppliesToSide, req.AppliesToDrink, req.AppliesToDessert); err != nil {
		return nil, err
	}

	saved, err := s.ingredientRepo.Save(ctx, ingredient)
	if err != nil {
		return nil, err
	}

	response := ToIngredientResponse(saved)
	return &response, nil
}

// Delete soft-deletes an ingredient through the repository
func (s *IngredientService) Delete(ctx context.Context, id int64) error {
	s.logger.Info("deleting ingredient", zap.Int64("ingredient_id", id))

	deleted, err := s.ingredientRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Ingredient with internal_id %d not found", id))
	}
	return nil
}

// List returns all ingredients
func (s *IngredientService) List(ctx context.Context, includeInactive bool) (*IngredientListResponse, error) {
	ingredients, err := s.ingredientRepo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	response := ToIngredientListResponse(ingredients)
	return &response, nil
}

// ListByType returns all ingredients of the given type
func (s *IngredientService) ListByType(ctx context.Context, ingredientType string, includeInactive bool) (*IngredientListResponse, error) {
	ingredients, err := s.ingredientRepo.FindByType(ctx, catalog.IngredientType(ingredientType), includeInactive)
	if err != nil {
		return nil, err
	}

	response := ToIngredientListResponse(ingredients)
	return &response, nil
}

// ListByAppliesTo returns all ingredients flagged for the given product
// category
func (s *IngredientService) ListByAppliesTo(ctx context.Context, category string, includeInactive bool) (*IngredientListResponse, error) {
	parsed, err := catalog.ParseProductCategory(category)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.ingredientRepo.FindByAppliesTo(ctx, parsed, includeInactive)
	if err != nil {
		return nil, err
	}

	response := ToIngredientListResponse(ingredients)
	return &response, nil
}
