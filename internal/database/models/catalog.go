package models

// MeasurementUnit is a unit ingredients are measured in ("g", "pcs", "tbsp").
type MeasurementUnit struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex:idx_measurement_units_name;not null;size:50" validate:"required,min=1,max=50"`
}

// TableName returns the table name for MeasurementUnit
func (MeasurementUnit) TableName() string {
	return "measurement_units"
}

// Ingredient is catalog reference data. A name is unique per unit.
type Ingredient struct {
	ID                uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string `json:"name" gorm:"uniqueIndex:idx_ingredients_name_unit;not null;size:200;index" validate:"required,min=1,max=200"`
	MeasurementUnitID uint   `json:"measurement_unit_id" gorm:"uniqueIndex:idx_ingredients_name_unit;not null" validate:"required"`

	// Relationships
	MeasurementUnit MeasurementUnit `json:"measurement_unit" gorm:"foreignKey:MeasurementUnitID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}

// Tag labels recipes ("breakfast", "dinner").
type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"uniqueIndex:idx_tags_name;not null;size:50" validate:"required,min=1,max=50"`
	Color string `json:"color" gorm:"uniqueIndex:idx_tags_color;not null;size:7;default:'#CCCCCC'" validate:"required,hexcolor"`
	Slug  string `json:"slug" gorm:"uniqueIndex:idx_tags_slug;not null;size:50" validate:"required,max=50"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
