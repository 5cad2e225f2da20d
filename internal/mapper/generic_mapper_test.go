package mapper

import (
	"errors"
	"testing"

	"catalog-be/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name string
}

type widgetDTO struct {
	Name string
}

func widgetMapper() *GenericObjectMapper[widget, widgetDTO] {
	return NewGenericObjectMapper(
		func(d *widgetDTO) (*widget, error) {
			switch d.Name {
			case "skip":
				return nil, nil
			case "broken":
				return nil, errors.New("broken widget")
			}
			return &widget{Name: d.Name}, nil
		},
		func(w *widget) (*widgetDTO, error) {
			return &widgetDTO{Name: w.Name}, nil
		},
	)
}

func TestGenericMapperNilInput(t *testing.T) {
	m := widgetMapper()

	s, err := m.ToSourceObject(nil)
	assert.NoError(t, err)
	assert.Nil(t, s)

	d, err := m.ToDestObject(nil)
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestGenericMapperListDropsNil(t *testing.T) {
	m := widgetMapper()

	out, err := m.ToSourceObjectList([]*widgetDTO{{Name: "a"}, nil, {Name: "skip"}, {Name: "b"}})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", out[1].Name)
}

func TestGenericMapperEmptyList(t *testing.T) {
	m := widgetMapper()

	out, err := m.ToDestObjectList(nil)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestGenericMapperWrapsForeignErrors(t *testing.T) {
	m := widgetMapper()

	_, err := m.ToSourceObjectList([]*widgetDTO{{Name: "a"}, {Name: "broken"}})
	require.Error(t, err)

	var mappingErr *apperror.MappingError
	require.True(t, errors.As(err, &mappingErr))
	assert.Equal(t, "mapper.widgetDTO", mappingErr.From)
	assert.Equal(t, "mapper.widget", mappingErr.To)
	assert.EqualError(t, mappingErr.Err, "broken widget")
}
