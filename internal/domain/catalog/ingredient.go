package catalog

import (
	"fmt"
	"time"

	"github.com/lanchonete/backend/internal/domain/shared"
	"github.com/lanchonete/backend/internal/domain/shared/valueobject"
)

// IngredientType classifies what an ingredient is made of
type IngredientType string

const (
	IngredientTypeBread     IngredientType = "BREAD"
	IngredientTypeMeat      IngredientType = "MEAT"
	IngredientTypeCheese    IngredientType = "CHEESE"
	IngredientTypeVegetable IngredientType = "VEGETABLE"
	IngredientTypeSalad     IngredientType = "SALAD"
	IngredientTypeSauce     IngredientType = "SAUCE"
	IngredientTypeIce       IngredientType = "ICE"
	IngredientTypeMilk      IngredientType = "MILK"
	IngredientTypeTopping   IngredientType = "TOPPING"
)

// IngredientTypes lists every valid ingredient type
func IngredientTypes() []IngredientType {
	return []IngredientType{
		IngredientTypeBread,
		IngredientTypeMeat,
		IngredientTypeCheese,
		IngredientTypeVegetable,
		IngredientTypeSalad,
		IngredientTypeSauce,
		IngredientTypeIce,
		IngredientTypeMilk,
		IngredientTypeTopping,
	}
}

// typeCompatibility maps each ingredient type to the product categories its
// applies-to flags may target. Solid burger components double as side
// components; only ice and milk go into drinks; only toppings go into
// desserts.
var typeCompatibility = map[IngredientType]map[ProductCategory]bool{
	IngredientTypeBread:     {ProductCategoryBurger: true, ProductCategorySide: true},
	IngredientTypeMeat:      {ProductCategoryBurger: true, ProductCategorySide: true},
	IngredientTypeCheese:    {ProductCategoryBurger: true, ProductCategorySide: true},
	IngredientTypeVegetable: {ProductCategoryBurger: true, ProductCategorySide: true},
	IngredientTypeSalad:     {ProductCategoryBurger: true, ProductCategorySide: true},
	IngredientTypeSauce:     {ProductCategoryBurger: true, ProductCategorySide: true},
	IngredientTypeIce:       {ProductCategoryDrink: true},
	IngredientTypeMilk:      {ProductCategoryDrink: true},
	IngredientTypeTopping:   {ProductCategoryDessert: true},
}

// TypeAllowsCategory reports whether an ingredient type may be flagged for the
// given product category
func TypeAllowsCategory(t IngredientType, category ProductCategory) bool {
	return typeCompatibility[t][category]
}

// Ingredient is the aggregate root for catalog ingredients. The applies-to
// flags declare which product categories the ingredient may compose; each set
// flag must be compatible with the ingredient type.
type Ingredient struct {
	shared.BaseAggregateRoot
	Name             valueobject.Name
	Price            valueobject.Money
	Type             IngredientType
	IsActive         bool
	AppliesToBurger  bool
	AppliesToSide    bool
	AppliesToDrink   bool
	AppliesToDessert bool
}

// NewIngredient creates a validated ingredient from raw input
func NewIngredient(
	name string,
	price valueobject.Money,
	ingredientType IngredientType,
	isActive bool,
	appliesToBurger, appliesToSide, appliesToDrink, appliesToDessert bool,
) (*Ingredient, error) {
	ingredientName, err := valueobject.NewName(name)
	if err != nil {
		return nil, err
	}
	if err := validateIngredientType(ingredientType); err != nil {
		return nil, err
	}

	ingredient := &Ingredient{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              ingredientName,
		Price:             price,
		Type:              ingredientType,
		IsActive:          isActive,
		AppliesToBurger:   appliesToBurger,
		AppliesToSide:     appliesToSide,
		AppliesToDrink:    appliesToDrink,
		AppliesToDessert:  appliesToDessert,
	}

	if err := ingredient.validateAppliesTo(); err != nil {
		return nil, err
	}

	ingredient.AddDomainEvent(NewIngredientCreatedEvent(ingredient))

	return ingredient, nil
}

// ReconstructIngredient rebuilds an ingredient from storage without
// re-validating. Storage data is trusted; externally-supplied input must go
// through NewIngredient instead.
func ReconstructIngredient(
	internalID int64,
	name string,
	price valueobject.Money,
	ingredientType IngredientType,
	isActive bool,
	appliesToBurger, appliesToSide, appliesToDrink, appliesToDessert bool,
	createdAt time.Time,
) *Ingredient {
	ingredient := &Ingredient{
		Name:             valueobject.NameFromTrusted(name),
		Price:            price,
		Type:             ingredientType,
		IsActive:         isActive,
		AppliesToBurger:  appliesToBurger,
		AppliesToSide:    appliesToSide,
		AppliesToDrink:   appliesToDrink,
		AppliesToDessert: appliesToDessert,
	}
	ingredient.SetInternalID(internalID)
	ingredient.CreatedAt = createdAt
	return ingredient
}

// Update re-validates the full new field set before committing the mutation
func (i *Ingredient) Update(
	name string,
	price valueobject.Money,
	ingredientType IngredientType,
	appliesToBurger, appliesToSide, appliesToDrink, appliesToDessert bool,
) error {
	updated, err := NewIngredient(name, price, ingredientType, i.IsActive,
		appliesToBurger, appliesToSide, appliesToDrink, appliesToDessert)
	if err != nil {
		return err
	}

	i.Name = updated.Name
	i.Price = updated.Price
	i.Type = updated.Type
	i.AppliesToBurger = updated.AppliesToBurger
	i.AppliesToSide = updated.AppliesToSide
	i.AppliesToDrink = updated.AppliesToDrink
	i.AppliesToDessert = updated.AppliesToDessert

	i.AddDomainEvent(NewIngredientUpdatedEvent(i))

	return nil
}

// AppliesTo reports whether the ingredient is flagged for the given product
// category. This is the one-way compatibility check Product validation calls.
func (i *Ingredient) AppliesTo(category ProductCategory) bool {
	switch category {
	case ProductCategoryBurger:
		return i.AppliesToBurger
	case ProductCategorySide:
		return i.AppliesToSide
	case ProductCategoryDrink:
		return i.AppliesToDrink
	case ProductCategoryDessert:
		return i.AppliesToDessert
	default:
		return false
	}
}

// Deactivate marks the ingredient inactive. There is no reactivation path.
func (i *Ingredient) Deactivate() error {
	if !i.IsActive {
		return shared.NewBusinessRuleError("deactivate", "Ingredient is already inactive")
	}
	i.IsActive = false
	i.AddDomainEvent(NewIngredientDeletedEvent(i))
	return nil
}

// validateAppliesTo enforces the two cross-field rules: at least one flag must
// be set, and every set flag must be compatible with the ingredient type.
func (i *Ingredient) validateAppliesTo() error {
	if !i.AppliesToBurger && !i.AppliesToSide && !i.AppliesToDrink && !i.AppliesToDessert {
		return shared.NewBusinessRuleError("ingredient_applies_to",
			"Ingredient must apply to at least one product category")
	}

	flags := []struct {
		set      bool
		category ProductCategory
	}{
		{i.AppliesToBurger, ProductCategoryBurger},
		{i.AppliesToSide, ProductCategorySide},
		{i.AppliesToDrink, ProductCategoryDrink},
		{i.AppliesToDessert, ProductCategoryDessert},
	}
	for _, flag := range flags {
		if flag.set && !TypeAllowsCategory(i.Type, flag.category) {
			return shared.NewBusinessRuleError("ingredient_compatibility",
				fmt.Sprintf("Ingredient of type %s cannot apply to %s", i.Type, flag.category))
		}
	}
	return nil
}

func validateIngredientType(t IngredientType) error {
	for _, valid := range IngredientTypes() {
		if t == valid {
			return nil
		}
	}
	return shared.NewValidationError("type", fmt.Sprintf("Invalid ingredient type: %s", t))
}

// String returns a short description for logging
func (i *Ingredient) String() string {
	return fmt.Sprintf("Ingredient(%s, %s)", i.Name.Value(), i.Type)
}
