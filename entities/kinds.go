package entities

type CropType string

const (
	CropWheat     CropType = "wheat"
	CropCorn      CropType = "corn"
	CropBarley    CropType = "barley"
	CropSunflower CropType = "sunflower"
	CropPotato    CropType = "potato"
	CropSugarBeet CropType = "sugar_beet"
)

// CropTypes lists every accepted crop in display order.
var CropTypes = []CropType{CropWheat, CropCorn, CropBarley, CropSunflower, CropPotato, CropSugarBeet}

func (c CropType) IsValid() bool {
	for _, v := range CropTypes {
		if v == c {
			return true
		}
	}
	return false
}

type LivestockType string

const (
	DairyCattle LivestockType = "dairy_cattle"
	BeefCattle  LivestockType = "beef_cattle"
	Sheep       LivestockType = "sheep"
	Goats       LivestockType = "goats"
	Horses      LivestockType = "horses"
	Pigs        LivestockType = "pigs"
	Chickens    LivestockType = "chickens"
)

// LivestockTypes lists every accepted animal type in display order.
var LivestockTypes = []LivestockType{DairyCattle, BeefCattle, Sheep, Goats, Horses, Pigs, Chickens}

func (t LivestockType) IsValid() bool {
	for _, v := range LivestockTypes {
		if v == t {
			return true
		}
	}
	return false
}
