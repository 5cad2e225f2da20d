package dto

import (
	"time"

	"catalog-be/internal/pkg/serverutils"
)

type CategoryDTO struct {
	Id          *int64        `json:"id,omitempty"`
	Name        string        `json:"name" validate:"required,max=80"`
	Description string        `json:"description" validate:"required,max=255"`
	Enabled     *bool         `json:"enabled" validate:"required"`
	Type        string        `json:"type" validate:"required,oneof=TELEPHONIE TV SON INFORMATIQUE PHOTO JEUX_VIDEO JOUETS ELCETROMENAGER MEUBLES_DECO LITERIE"`
	Products    []*ProductDTO `json:"products,omitempty" validate:"omitempty,dive"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

func (d *CategoryDTO) Validate() error {
	return serverutils.ValidateRequest(d)
}

type CategoryDTOBuilder struct {
	dto CategoryDTO
}

func NewCategoryDTOBuilder() *CategoryDTOBuilder {
	return &CategoryDTOBuilder{}
}

func (b *CategoryDTOBuilder) Id(id *int64) *CategoryDTOBuilder {
	b.dto.Id = id
	return b
}

func (b *CategoryDTOBuilder) Name(name string) *CategoryDTOBuilder {
	b.dto.Name = name
	return b
}

func (b *CategoryDTOBuilder) Description(description string) *CategoryDTOBuilder {
	b.dto.Description = description
	return b
}

func (b *CategoryDTOBuilder) Enabled(enabled bool) *CategoryDTOBuilder {
	b.dto.Enabled = &enabled
	return b
}

func (b *CategoryDTOBuilder) Type(categoryType string) *CategoryDTOBuilder {
	b.dto.Type = categoryType
	return b
}

func (b *CategoryDTOBuilder) Products(products []*ProductDTO) *CategoryDTOBuilder {
	b.dto.Products = products
	return b
}

func (b *CategoryDTOBuilder) Timestamps(createdAt time.Time, updatedAt *time.Time) *CategoryDTOBuilder {
	if !createdAt.IsZero() {
		b.dto.CreatedAt = &createdAt
	}
	b.dto.UpdatedAt = updatedAt
	return b
}

func (b *CategoryDTOBuilder) Build() *CategoryDTO {
	out := b.dto
	if b.dto.Products != nil {
		out.Products = append([]*ProductDTO(nil), b.dto.Products...)
	}
	return &out
}

func (b *CategoryDTOBuilder) BuildValid() (*CategoryDTO, error) {
	out := b.Build()
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
