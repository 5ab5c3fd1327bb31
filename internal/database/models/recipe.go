package models

// Recipe is owned by its author. Its ingredient and tag rows are owned by the
// recipe and are replaced wholesale on every update.
type Recipe struct {
	BaseModel
	AuthorID    uint   `json:"author_id" gorm:"uniqueIndex:idx_recipes_author_name;not null"`
	Name        string `json:"name" gorm:"uniqueIndex:idx_recipes_author_name;not null;size:200"`
	Image       string `json:"image" gorm:"not null;size:500"`
	Text        string `json:"text" gorm:"type:text;not null"`
	CookingTime int    `json:"cooking_time" gorm:"not null;check:chk_recipes_cooking_time,cooking_time >= 1"`

	// Relationships
	Author      User               `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `json:"ingredients" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	TagLinks    []RecipeTag        `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// Tags returns the tags attached through TagLinks, in link order.
func (r *Recipe) Tags() []Tag {
	tags := make([]Tag, 0, len(r.TagLinks))
	for _, link := range r.TagLinks {
		tags = append(tags, link.Tag)
	}
	return tags
}

// RecipeIngredient records that a recipe uses an ingredient at some amount.
type RecipeIngredient struct {
	ID           uint `json:"id" gorm:"primaryKey;autoIncrement"`
	RecipeID     uint `json:"recipe_id" gorm:"uniqueIndex:idx_recipe_ingredients_recipe_ingredient;not null"`
	IngredientID uint `json:"ingredient_id" gorm:"uniqueIndex:idx_recipe_ingredients_recipe_ingredient;not null;index"`
	Amount       int  `json:"amount" gorm:"not null;check:chk_recipe_ingredients_amount,amount >= 1"`

	// Relationships
	Ingredient Ingredient `json:"ingredient" gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for RecipeIngredient
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// RecipeTag links a recipe to a tag.
type RecipeTag struct {
	RecipeID uint `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	TagID    uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false;index"`

	// Relationships
	Tag Tag `json:"tag" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RecipeTag
func (RecipeTag) TableName() string {
	return "recipe_tags"
}
