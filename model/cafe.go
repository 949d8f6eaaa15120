package model

// Cafe is one venue in the directory. Every field except CoffeePrice is
// required; CoffeePrice stays nullable so venues without pricing render as
// JSON null rather than an empty string.
type Cafe struct {
	ID           uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"column:name;size:250;uniqueIndex;not null" json:"name"`
	MapURL       string  `gorm:"column:map_url;size:500;not null" json:"map_url"`
	ImgURL       string  `gorm:"column:img_url;size:500;not null" json:"img_url"`
	Location     string  `gorm:"column:location;size:250;not null" json:"location"`
	Seats        string  `gorm:"column:seats;size:250;not null" json:"seats"`
	HasToilet    bool    `gorm:"column:has_toilet;not null" json:"has_toilet"`
	HasWifi      bool    `gorm:"column:has_wifi;not null" json:"has_wifi"`
	HasSockets   bool    `gorm:"column:has_sockets;not null" json:"has_sockets"`
	CanTakeCalls bool    `gorm:"column:can_take_calls;not null" json:"can_take_calls"`
	CoffeePrice  *string `gorm:"column:coffee_price;size:250" json:"coffee_price"`
}

func (Cafe) TableName() string { return "cafes" }
