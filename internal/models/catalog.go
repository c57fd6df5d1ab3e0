package models

// Planet is a catalog entry users can favorite.
// Population stays a string because source data uses values like "unknown".
type Planet struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:120;not null;index" json:"name"`
	Climate    string `gorm:"size:100;not null" json:"climate"`
	Terrain    string `gorm:"size:100;not null" json:"terrain"`
	Population string `gorm:"size:100;not null" json:"population"`
}

// TableName specifies the table name
func (Planet) TableName() string {
	return "planets"
}

// Character is a catalog entry users can favorite.
// Height and Mass are strings for the same reason as Planet.Population.
type Character struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:120;not null;index" json:"name"`
	Gender string `gorm:"size:100;not null" json:"gender"`
	Height string `gorm:"size:100;not null" json:"height"`
	Mass   string `gorm:"size:100;not null" json:"mass"`
}

// TableName specifies the table name
func (Character) TableName() string {
	return "characters"
}
