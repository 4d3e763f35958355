package model

// Product maps the catalog table. Column names follow the existing
// Spanish schema so the bot can read a catalog it does not own.
type Product struct {
	Id          uint    `gorm:"primaryKey;autoIncrement"`
	Codigo      string  `gorm:"column:codigo;type:varchar(50);not null;uniqueIndex"`
	Nombre      string  `gorm:"column:nombre;type:varchar(255);not null"`
	Descripcion *string `gorm:"column:descripcion;type:text"`
	Precio      float64 `gorm:"column:precio;type:numeric(12,2);not null;index"`
	Stock       int     `gorm:"column:stock;not null;default:0"`
	Categoria   string  `gorm:"column:categoria;type:varchar(100);not null;index"`
	ImagenURL   *string `gorm:"column:imagen_url;type:text"`
}

func (Product) TableName() string {
	return "productos"
}
