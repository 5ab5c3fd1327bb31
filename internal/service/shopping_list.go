package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ShoppingListService aggregates the ingredients of every recipe in a
// user's shopping cart
type ShoppingListService struct {
	cart repository.MembershipRepositoryInterface
	rows repository.ShoppingListRepositoryInterface
}

// Ensure ShoppingListService implements ShoppingListServiceInterface
var _ ShoppingListServiceInterface = (*ShoppingListService)(nil)

// NewShoppingListService creates a new ShoppingListService
func NewShoppingListService(cart repository.MembershipRepositoryInterface, rows repository.ShoppingListRepositoryInterface) *ShoppingListService {
	return &ShoppingListService{
		cart: cart,
		rows: rows,
	}
}

// LineItem is one aggregated ingredient of a shopping list
type LineItem struct {
	IngredientName string `json:"ingredient_name" example:"flour"`
	TotalAmount    int    `json:"total_amount" example:"500"`
	UnitName       string `json:"unit_name" example:"g"`
}

// String renders the item as "{name} - {total} {unit}"
func (l LineItem) String() string {
	return fmt.Sprintf("%s - %d %s", l.IngredientName, l.TotalAmount, l.UnitName)
}

type lineKey struct {
	name string
	unit string
}

// BuildShoppingList sums ingredient amounts across the user's cart, grouped
// by ingredient name and unit and ordered by name. Ingredients that share a
// name and unit are merged even if they are distinct catalog entries.
func (s *ShoppingListService) BuildShoppingList(ctx context.Context, userID uint) ([]LineItem, error) {
	ctx, span := tracer.Start(ctx, "ShoppingListService.BuildShoppingList")
	defer span.End()

	recipeIDs, err := s.cart.ListTargets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping cart: %w", err)
	}
	items := []LineItem{}
	if len(recipeIDs) == 0 {
		return items, nil
	}

	rows, err := s.rows.GetIngredientRows(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping list ingredients: %w", err)
	}

	index := map[lineKey]int{}
	for _, row := range rows {
		key := lineKey{name: row.IngredientName, unit: row.UnitName}
		if i, ok := index[key]; ok {
			items[i].TotalAmount += row.Amount
			continue
		}
		index[key] = len(items)
		items = append(items, LineItem{
			IngredientName: row.IngredientName,
			TotalAmount:    row.Amount,
			UnitName:       row.UnitName,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].IngredientName != items[j].IngredientName {
			return items[i].IngredientName < items[j].IngredientName
		}
		return items[i].UnitName < items[j].UnitName
	})

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("shopping_list.recipes", len(recipeIDs)),
		attribute.Int("shopping_list.items", len(items)),
	)
	return items, nil
}

// ExportShoppingList renders the shopping list as plain text, one line per item
func (s *ShoppingListService) ExportShoppingList(ctx context.Context, userID uint) (string, error) {
	items, err := s.BuildShoppingList(ctx, userID)
	if err != nil {
		return "", err
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = item.String()
	}

	logger.WithContext(ctx).WithField("items", len(items)).Info("Shopping list exported")
	return strings.Join(lines, "\n"), nil
}
