package entity

import "catalog-be/internal/apperror"

type CategoryType string

const (
	CategoryTypeTelephonie     CategoryType = "TELEPHONIE"
	CategoryTypeTV             CategoryType = "TV"
	CategoryTypeSon            CategoryType = "SON"
	CategoryTypeInformatique   CategoryType = "INFORMATIQUE"
	CategoryTypePhoto          CategoryType = "PHOTO"
	CategoryTypeJeuxVideo      CategoryType = "JEUX_VIDEO"
	CategoryTypeJouets         CategoryType = "JOUETS"
	CategoryTypeElectromenager CategoryType = "ELCETROMENAGER" // stored spelling, do not fix
	CategoryTypeMeublesDeco    CategoryType = "MEUBLES_DECO"
	CategoryTypeLiterie        CategoryType = "LITERIE"
)

var categoryTypes = []CategoryType{
	CategoryTypeTelephonie,
	CategoryTypeTV,
	CategoryTypeSon,
	CategoryTypeInformatique,
	CategoryTypePhoto,
	CategoryTypeJeuxVideo,
	CategoryTypeJouets,
	CategoryTypeElectromenager,
	CategoryTypeMeublesDeco,
	CategoryTypeLiterie,
}

// CategoryTypes returns the declared variants in declaration order.
func CategoryTypes() []CategoryType {
	out := make([]CategoryType, len(categoryTypes))
	copy(out, categoryTypes)
	return out
}

// ParseCategoryType matches s against the declared spellings exactly.
func ParseCategoryType(s string) (CategoryType, error) {
	for _, t := range categoryTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &apperror.UnrecognizedEnumValue{Enum: "CategoryType", Value: s}
}

func (t CategoryType) String() string {
	return string(t)
}
